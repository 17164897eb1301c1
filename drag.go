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

package paintpick

import (
	"errors"

	"seehuhn.de/go/geom/vec"
)

// MinSize is the smallest width or height a resize can produce.
const MinSize = 1e-9

// ErrEmptyViewport is returned when a drag is resolved against a viewport
// without positive width and height.
var ErrEmptyViewport = errors.New("viewport has zero area")

// Options control how a drag translation is turned into a source rect.
type Options struct {
	// Resize selects the resize handle.  If false, the drag moves the rect
	// without changing its size.
	Resize bool

	// LockAspectRatio forces resized rects to be square in unit space.
	// The height is authoritative.  Ignored for moves.
	LockAspectRatio bool

	// Policy is the overflow policy used to clamp the result.
	Policy OverflowPolicy
}

// Resolve computes the source rect resulting from dragging original by
// translation, given in viewport pixels.  The viewport is the on-screen
// area corresponding to the unit square.
//
// Both moves and resizes translate the origin.  A resize additionally
// shrinks the size by the same amount, so that the handle drags the
// top-left corner while the bottom-right corner stays put until the size
// reaches its limits of [MinSize] and 1.
//
// If the viewport is empty, original is returned together with
// [ErrEmptyViewport].
func Resolve(translation vec.Vec2, viewport Size, original NormalizedRect, opt Options) (NormalizedRect, error) {
	if viewport.IsEmpty() {
		return original, ErrEmptyViewport
	}
	unit := vec.Vec2{
		X: translation.X / viewport.Width,
		Y: translation.Y / viewport.Height,
	}

	size := original.Size
	if opt.Resize {
		size.Width = max(MinSize, min(1, size.Width-unit.X))
		size.Height = max(MinSize, min(1, size.Height-unit.Y))
		if opt.LockAspectRatio {
			size.Width = size.Height
		}
	}

	proposed := NormalizedRect{
		Origin: original.Origin.Add(unit),
		Size:   size,
	}
	return Clamp(proposed, opt.Policy), nil
}
