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
	"strings"
)

// OverflowPolicy describes on which axes a source rect may extend beyond
// the unit square.
type OverflowPolicy int

const (
	// OverflowNone keeps the rect inside the unit square on both axes.
	OverflowNone OverflowPolicy = iota

	// OverflowHorizontal permits overflow on the x axis only.
	OverflowHorizontal

	// OverflowVertical permits overflow on the y axis only.
	OverflowVertical

	// OverflowEither permits overflow on one axis at a time.  If the rect
	// overflows horizontally, vertical overflow is removed.
	OverflowEither

	// OverflowBoth permits simultaneous overflow on both axes.
	OverflowBoth
)

// ErrUnknownPolicy is returned by [ParseOverflowPolicy] for names which do
// not denote an overflow policy.
var ErrUnknownPolicy = errors.New("unknown overflow policy")

var policyNames = [...]string{
	OverflowNone:       "none",
	OverflowHorizontal: "horizontal",
	OverflowVertical:   "vertical",
	OverflowEither:     "either",
	OverflowBoth:       "both",
}

// Valid reports whether p is one of the declared policies.
func (p OverflowPolicy) Valid() bool {
	return p >= OverflowNone && p <= OverflowBoth
}

func (p OverflowPolicy) String() string {
	if !p.Valid() {
		panic(fmt.Sprintf("invalid OverflowPolicy %d", int(p)))
	}
	return policyNames[p]
}

// policyAliases holds the alternative names accepted by
// [ParseOverflowPolicy], in lower case.
var policyAliases = map[string]OverflowPolicy{
	"horizontalonly": OverflowHorizontal,
	"verticalonly":   OverflowVertical,
}

// ParseOverflowPolicy converts the output of [OverflowPolicy.String] back
// into a policy.  The names "horizontalOnly" and "verticalOnly" are
// accepted as well.  Matching ignores case and surrounding white space.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := policyAliases[name]; ok {
		return p, nil
	}
	for p, n := range policyNames {
		if n == name {
			return OverflowPolicy(p), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}

// AllowsHorizontal reports whether a rect clamped under p may keep
// extending beyond the unit square on the x axis.
func (p OverflowPolicy) AllowsHorizontal() bool {
	switch p {
	case OverflowHorizontal, OverflowEither, OverflowBoth:
		return true
	case OverflowNone, OverflowVertical:
		return false
	default:
		panic(fmt.Sprintf("invalid OverflowPolicy %d", int(p)))
	}
}

// AllowsVertical reports whether a rect clamped under p may keep extending
// beyond the unit square on the y axis, given whether the rect still
// overflows horizontally.  Horizontal overflow takes priority: only
// [OverflowBoth] permits vertical overflow on top of it.
func (p OverflowPolicy) AllowsVertical(hasHorizontalOverflow bool) bool {
	switch p {
	case OverflowBoth:
		return true
	case OverflowVertical, OverflowEither:
		return !hasHorizontalOverflow
	case OverflowNone, OverflowHorizontal:
		return false
	default:
		panic(fmt.Sprintf("invalid OverflowPolicy %d", int(p)))
	}
}

// PolicyFor returns the policy to apply while dragging the rect current.
// If allowBothAxes is set, this is [OverflowBoth].  Otherwise the rect may
// keep the overflow it already has; a rect without overflow may start
// overflowing on either axis.
func PolicyFor(allowBothAxes bool, current NormalizedRect) OverflowPolicy {
	if allowBothAxes {
		return OverflowBoth
	}
	if p := current.Overflow(); p != OverflowNone {
		return p
	}
	return OverflowEither
}
