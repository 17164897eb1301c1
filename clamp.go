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

import "fmt"

// MaxOffset is the largest origin coordinate a clamped rect may have.  Near
// the lower edge the far side of the rect is kept at 1-MaxOffset or more,
// so that a sliver of at least 1e-6 always stays inside the unit square.
const MaxOffset = 0.999999

// Clamp moves r so that it satisfies the overflow policy p and overlaps the
// unit square.  The size of r is never changed.
//
// The rect must be expressed relative to the unit rect, i.e. (0,0,1,1)
// denotes the full image.  Clamp panics if p is not a valid policy.
//
// The horizontal axis is clamped first.  If r still overflows horizontally
// afterwards, vertical overflow is removed unless p is [OverflowBoth].
func Clamp(r NormalizedRect, p OverflowPolicy) NormalizedRect {
	if !p.Valid() {
		panic(fmt.Sprintf("invalid OverflowPolicy %d", int(p)))
	}

	// horizontal
	if r.Origin.X > MaxOffset {
		r.Origin.X = MaxOffset
	}
	if r.MaxX() < 0 {
		r.Origin.X = -r.Size.Width + 1 - MaxOffset
	}
	if !p.AllowsHorizontal() {
		if r.MaxX() > 1 {
			r.Origin.X = 1 - r.Size.Width
		}
		if r.Origin.X < 0 {
			r.Origin.X = 0
		}
	}

	// vertical
	if r.Origin.Y > MaxOffset {
		r.Origin.Y = MaxOffset
	}
	if r.MaxY() < 0 {
		r.Origin.Y = -r.Size.Height + 1 - MaxOffset
	}
	if !p.AllowsVertical(r.overflowsHorizontally()) {
		if r.MaxY() > 1 {
			r.Origin.Y = 1 - r.Size.Height
		}
		if r.Origin.Y < 0 {
			r.Origin.Y = 0
		}
	}

	return r
}
