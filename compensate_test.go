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
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func testPaint() PaintParameters {
	orig := image.NewRGBA(image.Rect(0, 0, 200, 100))
	flipped := image.NewRGBA(image.Rect(0, 0, 200, 100))
	return PaintParameters{
		Image: SizedImage{
			Original: orig,
			Flipped:  flipped,
			Size:     Size{Width: 200, Height: 100},
		},
		SourceRect: Rect(0.25, 0.125, 0.5, 0.25),
		Scale:      0.5,
	}
}

func TestMirrorVertical(t *testing.T) {
	r := Rect(0.25, 0.125, 0.5, 0.25)
	want := Rect(0.25, 0.625, 0.5, 0.25)
	if got := MirrorVertical(r); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, r := range testRects() {
		back := MirrorVertical(MirrorVertical(r))
		if !back.Equal(r, 1e-12) {
			t.Errorf("%v: mirrored twice gives %v", r, back)
		}
	}
}

func TestMirrorVerticalKeepsSize(t *testing.T) {
	rects := []NormalizedRect{
		Rect(0.1, 0.2, 0.3, 0.4),
		Rect(0.3, 0.6121259597223839, 0.7, 0.8218426415757945),
		Rect(-0.37, 1.1, 0.33, 0.17),
		Rect(0.5, 0, -0.25, 1),
		Rect(0.5, 0.25, 0.25, -0.125),
	}
	for _, r := range rects {
		m := MirrorVertical(r)
		if m.Size != r.Size {
			t.Errorf("%v: size changed to %v", r, m.Size)
		}
		if m.Origin.X != r.Origin.X {
			t.Errorf("%v: x changed to %g", r, m.Origin.X)
		}
		if want := 1 - r.Origin.Y - r.Size.Height; m.Origin.Y != want {
			t.Errorf("%v: y = %g, want %g", r, m.Origin.Y, want)
		}

		p := PaintParameters{SourceRect: r, Scale: 1}
		c := CompensatedSourceRect(p, CompensationFlags{SourceRectCompensation: true})
		if c != m {
			t.Errorf("%v: compensated %v, mirrored %v", r, c, m)
		}
	}
}

func TestCompensatedSourceRect(t *testing.T) {
	p := testPaint()
	if got := CompensatedSourceRect(p, CompensationFlags{}); got != p.SourceRect {
		t.Errorf("disabled: got %v, want %v", got, p.SourceRect)
	}
	flags := CompensationFlags{SourceRectCompensation: true}
	got := CompensatedSourceRect(p, flags)
	if want := 1 - p.SourceRect.Origin.Y - p.SourceRect.Size.Height; got.Origin.Y != want {
		t.Errorf("y: got %g, want %g", got.Origin.Y, want)
	}
	if got.Origin.X != p.SourceRect.Origin.X || got.Size != p.SourceRect.Size {
		t.Errorf("x or size changed: %v", got)
	}
}

func TestCompensatedScale(t *testing.T) {
	p := testPaint()
	cases := []struct {
		axis ScaleAxis
		want Scale
	}{
		{ScaleNone, Scale{X: 0.5, Y: 0.5}},
		{ScaleHorizontal, Scale{X: 0.5, Y: 0.25}},
		{ScaleVertical, Scale{X: 1, Y: 0.5}},
	}
	for _, c := range cases {
		got := CompensatedScale(p, CompensationFlags{ScaleAxis: c.axis})
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%s (-want +got):\n%s", c.axis, d)
		}
	}

	p.Image.Size = Size{}
	for _, axis := range []ScaleAxis{ScaleNone, ScaleHorizontal, ScaleVertical} {
		if got := CompensatedScale(p, CompensationFlags{ScaleAxis: axis}); got != Uniform(0.5) {
			t.Errorf("empty image, %s: got %v", axis, got)
		}
	}
}

func TestCompensatedImage(t *testing.T) {
	p := testPaint()
	if got := CompensatedImage(p, CompensationFlags{}); got != p.Image.Original {
		t.Error("expected the original image")
	}
	if got := CompensatedImage(p, CompensationFlags{FlipCompensation: true}); got != p.Image.Flipped {
		t.Error("expected the flipped image")
	}
}

func TestRenderPaint(t *testing.T) {
	p := testPaint()
	before := p.SourceRect
	flags := CompensationFlags{
		FlipCompensation:       true,
		SourceRectCompensation: true,
		ScaleAxis:              ScaleHorizontal,
	}

	paint := RenderPaint(p, flags, 4)
	if paint.Image != p.Image.Flipped {
		t.Error("wrong image variant")
	}
	if want := MirrorVertical(before); paint.SourceRect != want {
		t.Errorf("source rect: got %v, want %v", paint.SourceRect, want)
	}
	if want := (Scale{X: 2, Y: 1}); paint.Scale != want {
		t.Errorf("scale: got %v, want %v", paint.Scale, want)
	}

	if p.SourceRect != before || p.Scale != 0.5 {
		t.Errorf("stored parameters modified: %v, %g", p.SourceRect, p.Scale)
	}

	plain := RenderPaint(p, CompensationFlags{}, 1)
	if plain.Image != p.Image.Original || plain.SourceRect != before || plain.Scale != Uniform(0.5) {
		t.Errorf("uncompensated paint: %v %v", plain.SourceRect, plain.Scale)
	}
}

func TestReadouts(t *testing.T) {
	p := testPaint()
	flags := CompensationFlags{SourceRectCompensation: true, ScaleAxis: ScaleVertical}
	raw, comp := Readouts(p, flags, 2)

	wantRaw := Readout{SourceRect: p.SourceRect, Scale: Uniform(1)}
	if d := cmp.Diff(wantRaw, raw); d != "" {
		t.Errorf("raw (-want +got):\n%s", d)
	}
	wantComp := Readout{SourceRect: MirrorVertical(p.SourceRect), Scale: Scale{X: 2, Y: 1}}
	if d := cmp.Diff(wantComp, comp); d != "" {
		t.Errorf("compensated (-want +got):\n%s", d)
	}
}

func TestParseScaleAxis(t *testing.T) {
	for _, a := range []ScaleAxis{ScaleNone, ScaleHorizontal, ScaleVertical} {
		got, err := ParseScaleAxis(a.String())
		if err != nil || got != a {
			t.Errorf("%s: got %s, %v", a, got, err)
		}
	}
	if _, err := ParseScaleAxis("diagonal"); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("got %v, want ErrUnknownAxis", err)
	}
}

func TestCompensatedScaleInvalidAxis(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CompensatedScale did not panic")
		}
	}()
	CompensatedScale(testPaint(), CompensationFlags{ScaleAxis: ScaleAxis(9)})
}
