// seehuhn.de/go/paintpick - source rectangles for image paints
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines a single drag or clamp scenario.
type TestCase struct {
	Name   string    // lowercase a-z, digits and _ only
	Rect   Rect      // source rect before the operation
	Width  int       // viewport width in pixels
	Height int       // viewport height in pixels
	Op     Operation // move, resize or clamp
	Policy string    // overflow policy name, e.g. "either"
	Want   Rect      // expected source rect
}

// Rect is a source rect in unit coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Operation is the operation applied to the source rect.
type Operation interface {
	isOperation()
}

// Move drags the rect by a translation in viewport pixels.
type Move struct {
	By vec.Vec2
}

func (Move) isOperation() {}

// Resize drags the resize handle by a translation in viewport pixels.
type Resize struct {
	By         vec.Vec2
	LockAspect bool
}

func (Resize) isOperation() {}

// Clamp applies the overflow policy to the rect without dragging.
type Clamp struct{}

func (Clamp) isOperation() {}

// px is a helper to create a pixel translation.
func px(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
