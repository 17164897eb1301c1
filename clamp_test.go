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

import "testing"

// testRects returns a grid of rects around the unit square.  All values
// are dyadic fractions, so that rect arithmetic is exact.
func testRects() []NormalizedRect {
	coords := []float64{-3, -1.5, -0.75, -0.25, 0, 0.125, 0.5, 0.875, 1, 1.25, 2}
	sizes := []float64{1.0 / 1024, 0.125, 0.25, 0.5, 1}
	var rects []NormalizedRect
	for _, x := range coords {
		for _, y := range coords {
			for _, w := range sizes {
				for _, h := range sizes {
					rects = append(rects, Rect(x, y, w, h))
				}
			}
		}
	}
	return rects
}

func TestClampIdempotent(t *testing.T) {
	for _, p := range allPolicies {
		for _, r := range testRects() {
			once := Clamp(r, p)
			twice := Clamp(once, p)
			if !twice.Equal(once, 1e-12) {
				t.Errorf("%s %v: %v then %v", p, r, once, twice)
			}
		}
	}
}

func TestClampKeepsOverlap(t *testing.T) {
	for _, p := range allPolicies {
		for _, r := range testRects() {
			c := Clamp(r, p)
			if !(c.MaxX() > 0 && c.Origin.X < 1 && c.MaxY() > 0 && c.Origin.Y < 1) {
				t.Errorf("%s %v: clamped rect %v leaves the unit square", p, r, c)
			}
		}
	}
}

func TestClampKeepsSize(t *testing.T) {
	for _, p := range allPolicies {
		for _, r := range testRects() {
			if c := Clamp(r, p); c.Size != r.Size {
				t.Errorf("%s %v: size changed to %v", p, r, c.Size)
			}
		}
	}
}

func TestClampContainment(t *testing.T) {
	// which overflow states each policy may produce
	allowed := map[OverflowPolicy][]OverflowPolicy{
		OverflowNone:       {OverflowNone},
		OverflowHorizontal: {OverflowNone, OverflowHorizontal},
		OverflowVertical:   {OverflowNone, OverflowVertical},
		OverflowEither:     {OverflowNone, OverflowHorizontal, OverflowVertical},
		OverflowBoth:       {OverflowNone, OverflowHorizontal, OverflowVertical, OverflowBoth},
	}
	for _, p := range allPolicies {
		for _, r := range testRects() {
			got := Clamp(r, p).Overflow()
			ok := false
			for _, a := range allowed[p] {
				if got == a {
					ok = true
				}
			}
			if !ok {
				t.Errorf("%s %v: clamped rect overflows %s", p, r, got)
			}
		}
	}
}

func TestClampHorizontalOverflowAllowed(t *testing.T) {
	r := Rect(0.9, 0, 0.5, 0.5)
	if got := Clamp(r, OverflowHorizontal); got != r {
		t.Errorf("got %v, want %v", got, r)
	}
	if got := Clamp(r, OverflowNone); !got.Equal(Rect(0.5, 0, 0.5, 0.5), 1e-12) {
		t.Errorf("none: got %v", got)
	}
}

func TestClampHorizontalTakesPriority(t *testing.T) {
	r := Rect(-0.5, 0, 0.3, 0.3)
	moved, err := Resolve(vecXY(0, -60), Size{400, 300}, r, Options{Policy: OverflowEither})
	if err != nil {
		t.Fatal(err)
	}
	if moved.Origin.Y != 0 {
		t.Errorf("vertical overflow kept: y = %g", moved.Origin.Y)
	}
	if moved.Origin.X >= 0 {
		t.Errorf("horizontal overflow lost: x = %g", moved.Origin.X)
	}

	// with both axes allowed, the vertical overflow stays
	moved, err = Resolve(vecXY(0, -60), Size{400, 300}, r, Options{Policy: OverflowBoth})
	if err != nil {
		t.Fatal(err)
	}
	if moved.Origin.Y >= 0 {
		t.Errorf("both: vertical overflow lost: y = %g", moved.Origin.Y)
	}
}

func TestClampFarOutside(t *testing.T) {
	cases := []struct {
		r    NormalizedRect
		want NormalizedRect
	}{
		{Rect(5, 0, 0.5, 0.5), Rect(MaxOffset, 0, 0.5, 0.5)},
		{Rect(0, 5, 0.5, 0.5), Rect(0, MaxOffset, 0.5, 0.5)},
		{Rect(-5, 0, 0.5, 0.5), Rect(-0.5+1-MaxOffset, 0, 0.5, 0.5)},
		{Rect(0, -5, 0.5, 0.5), Rect(0, -0.5+1-MaxOffset, 0.5, 0.5)},
	}
	for _, c := range cases {
		if got := Clamp(c.r, OverflowBoth); !got.Equal(c.want, 1e-12) {
			t.Errorf("%v: got %v, want %v", c.r, got, c.want)
		}
	}
}

func TestClampInvalidPolicy(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Clamp did not panic")
		}
	}()
	Clamp(UnitRect, OverflowPolicy(-1))
}
