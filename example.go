// Package paintpick computes source rectangles for image paints.
//
// A source rect selects part of an image in unit coordinates, where the
// whole image is (0,0,1,1).  The package turns drag gestures into new
// source rects ([Resolve], [Gesture]), keeps source rects on screen
// according to an overflow policy ([Clamp]), and derives render-ready
// paints from stored parameters ([RenderPaint]).  All functions are pure;
// the caller owns the [PaintParameters].
package paintpick

//go:generate go run ./testcases/export

import (
	"fmt"

	"seehuhn.de/go/paintpick/testcases"
)

// RunExample applies the operation of a test case to its source rect.
func RunExample(tc testcases.TestCase) (NormalizedRect, error) {
	policy, err := ParseOverflowPolicy(tc.Policy)
	if err != nil {
		return NormalizedRect{}, err
	}
	r := FromCase(tc.Rect)
	viewport := Size{Width: float64(tc.Width), Height: float64(tc.Height)}

	switch op := tc.Op.(type) {
	case testcases.Move:
		return Resolve(op.By, viewport, r, Options{Policy: policy})
	case testcases.Resize:
		opt := Options{
			Resize:          true,
			LockAspectRatio: op.LockAspect,
			Policy:          policy,
		}
		return Resolve(op.By, viewport, r, opt)
	case testcases.Clamp:
		return Clamp(r, policy), nil
	default:
		return NormalizedRect{}, fmt.Errorf("unsupported operation %T", tc.Op)
	}
}

// FromCase converts a test case rect.
func FromCase(r testcases.Rect) NormalizedRect {
	return Rect(r.X, r.Y, r.W, r.H)
}
