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

	"seehuhn.de/go/geom/vec"
)

// GestureState is the state of a [Gesture].
type GestureState int

const (
	// StateIdle is the state between drags.
	StateIdle GestureState = iota
	// StateDragging is reported while a drag is in progress.
	StateDragging
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	default:
		panic(fmt.Sprintf("invalid GestureState %d", int(s)))
	}
}

var (
	// ErrGestureActive is returned by [Gesture.Begin] during a drag.
	ErrGestureActive = errors.New("gesture already in progress")

	// ErrNoGesture is returned by [Gesture.Update] outside a drag.
	ErrNoGesture = errors.New("no gesture in progress")

	// ErrNoPaint is returned when a [Gesture] has no paint parameters.
	ErrNoPaint = errors.New("gesture has no paint parameters")
)

// DragState holds the rects of one drag.  Original is the source rect at
// the start of the drag, Proposed the most recent resolved rect.
type DragState struct {
	Original NormalizedRect
	Proposed NormalizedRect
}

// Gesture turns drag events into source rect updates of a
// [PaintParameters] value.  Every update is committed immediately.
//
// A Gesture is not safe for concurrent use.  Updates must be delivered
// in the order in which the input source emits them.
type Gesture struct {
	// Paint receives the resolved source rects.  It must be set before
	// [Gesture.Begin]; otherwise Begin and Update fail with [ErrNoPaint].
	Paint *PaintParameters

	// LockAspectRatio keeps resized rects square.
	LockAspectRatio bool

	// AllowOverflowOnBothAxes selects [OverflowBoth].  Otherwise the
	// policy is derived from the current source rect via [PolicyFor].
	AllowOverflowOnBothAxes bool

	state  GestureState
	resize bool
	drag   DragState
}

// State reports whether a drag is in progress.
func (g *Gesture) State() GestureState {
	return g.state
}

// Drag returns the rects of the current or most recent drag.
func (g *Gesture) Drag() DragState {
	return g.drag
}

// Begin starts a drag of the source rect, or of the resize handle if
// resize is set.
func (g *Gesture) Begin(resize bool) error {
	if g.Paint == nil {
		return ErrNoPaint
	}
	if g.state == StateDragging {
		return ErrGestureActive
	}
	g.state = StateDragging
	g.resize = resize
	g.drag = DragState{
		Original: g.Paint.SourceRect,
		Proposed: g.Paint.SourceRect,
	}
	return nil
}

// Update resolves the total drag translation since [Gesture.Begin] and
// stores the result in the paint parameters.  On error the paint
// parameters are left unchanged.
func (g *Gesture) Update(translation vec.Vec2, viewport Size) (NormalizedRect, error) {
	if g.Paint == nil {
		return NormalizedRect{}, ErrNoPaint
	}
	if g.state != StateDragging {
		return g.Paint.SourceRect, ErrNoGesture
	}
	opt := Options{
		Resize:          g.resize,
		LockAspectRatio: g.LockAspectRatio,
		Policy:          PolicyFor(g.AllowOverflowOnBothAxes, g.Paint.SourceRect),
	}
	r, err := Resolve(translation, viewport, g.drag.Original, opt)
	if err != nil {
		return g.Paint.SourceRect, err
	}
	g.drag.Proposed = r
	g.Paint.SourceRect = r
	return r, nil
}

// End finishes the drag, keeping the last committed rect.
func (g *Gesture) End() {
	g.state = StateIdle
}

// Cancel finishes the drag and restores the source rect from before the
// drag.  Outside a drag, Cancel does nothing.
func (g *Gesture) Cancel() {
	if g.state != StateDragging || g.Paint == nil {
		return
	}
	g.Paint.SourceRect = g.drag.Original
	g.drag.Proposed = g.drag.Original
	g.state = StateIdle
}
