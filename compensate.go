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
	"fmt"
	"image"
	"strings"
)

// ScaleAxis selects the axis whose scale is taken as given when the image
// is laid out in a container sized along one axis only.  The scale of the
// other axis is derived from the aspect ratio of the image.
type ScaleAxis int

const (
	// ScaleNone applies the scale uniformly.
	ScaleNone ScaleAxis = iota

	// ScaleHorizontal keeps the scale for the x axis and derives the y
	// scale.
	ScaleHorizontal

	// ScaleVertical keeps the scale for the y axis and derives the x
	// scale.
	ScaleVertical
)

// ErrUnknownAxis is returned by [ParseScaleAxis] for unrecognised names.
var ErrUnknownAxis = errors.New("unknown scale axis")

func (a ScaleAxis) String() string {
	switch a {
	case ScaleNone:
		return "none"
	case ScaleHorizontal:
		return "horizontal"
	case ScaleVertical:
		return "vertical"
	default:
		panic(fmt.Sprintf("invalid ScaleAxis %d", int(a)))
	}
}

// ParseScaleAxis converts the output of [ScaleAxis.String] back into an
// axis.
func ParseScaleAxis(s string) (ScaleAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ScaleNone, nil
	case "horizontal":
		return ScaleHorizontal, nil
	case "vertical":
		return ScaleVertical, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAxis)
}

// CompensationFlags select the render-time corrections applied to stored
// paint parameters.
type CompensationFlags struct {
	// FlipCompensation selects the mirrored image variant.
	FlipCompensation bool

	// SourceRectCompensation mirrors the source rect about the horizontal
	// midline of the unit square.
	SourceRectCompensation bool

	// ScaleAxis selects the scale compensation.
	ScaleAxis ScaleAxis
}

// Scale holds separate scale factors for the two axes.
type Scale struct {
	X, Y float64
}

// Uniform returns the scale s on both axes.
func Uniform(s float64) Scale {
	return Scale{X: s, Y: s}
}

// Mul multiplies both factors by f.
func (s Scale) Mul(f float64) Scale {
	return Scale{X: s.X * f, Y: s.Y * f}
}

// MirrorVertical reflects r about the line y = 1/2.  Only the y coordinate
// of the origin changes; the size and the horizontal position are kept as
// they are, even for rects with negative size.  Applying MirrorVertical
// twice gives back r, up to rounding of the origin.
func MirrorVertical(r NormalizedRect) NormalizedRect {
	r.Origin.Y = 1 - r.Origin.Y - r.Size.Height
	return r
}

// CompensatedSourceRect returns the source rect to use for rendering p.
func CompensatedSourceRect(p PaintParameters, flags CompensationFlags) NormalizedRect {
	if !flags.SourceRectCompensation {
		return p.SourceRect
	}
	return MirrorVertical(p.SourceRect)
}

// CompensatedScale returns the per-axis scale to use for rendering p.
// If the image has no area, the scale is applied uniformly.
// CompensatedScale panics if flags.ScaleAxis is invalid.
func CompensatedScale(p PaintParameters, flags CompensationFlags) Scale {
	s := p.Scale
	w, h := p.Image.Size.Width, p.Image.Size.Height
	switch flags.ScaleAxis {
	case ScaleNone:
		return Uniform(s)
	case ScaleHorizontal:
		if p.Image.Size.IsEmpty() {
			return Uniform(s)
		}
		return Scale{X: s, Y: s * h / w}
	case ScaleVertical:
		if p.Image.Size.IsEmpty() {
			return Uniform(s)
		}
		return Scale{X: s * w / h, Y: s}
	default:
		panic(fmt.Sprintf("invalid ScaleAxis %d", int(flags.ScaleAxis)))
	}
}

// CompensatedImage returns the image variant to use for rendering p.
func CompensatedImage(p PaintParameters, flags CompensationFlags) image.Image {
	if flags.FlipCompensation {
		return p.Image.Flipped
	}
	return p.Image.Original
}

// Paint is a render-ready image paint: tile Image at Scale and show the
// part named by SourceRect.
type Paint struct {
	Image      image.Image
	SourceRect NormalizedRect
	Scale      Scale
}

// RenderPaint applies all compensations to p and multiplies the scale by
// additionalScale.  The stored parameters are not modified.
func RenderPaint(p PaintParameters, flags CompensationFlags, additionalScale float64) Paint {
	return Paint{
		Image:      CompensatedImage(p, flags),
		SourceRect: CompensatedSourceRect(p, flags),
		Scale:      CompensatedScale(p, flags).Mul(additionalScale),
	}
}

// Readout is the pair of values shown to the user for one set of paint
// parameters.
type Readout struct {
	SourceRect NormalizedRect
	Scale      Scale
}

// Readouts returns the stored and the compensated source rect and scale
// of p, both including additionalScale.
func Readouts(p PaintParameters, flags CompensationFlags, additionalScale float64) (raw, compensated Readout) {
	raw = Readout{
		SourceRect: p.SourceRect,
		Scale:      Uniform(p.Scale * additionalScale),
	}
	compensated = Readout{
		SourceRect: CompensatedSourceRect(p, flags),
		Scale:      CompensatedScale(p, flags).Mul(additionalScale),
	}
	return raw, compensated
}
