package testcases

var clampCases = []TestCase{
	{
		Name:   "right_overflow_allowed",
		Rect:   Rect{0.875, 0, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "horizontal",
		Want:   Rect{0.875, 0, 0.5, 0.5},
	},
	{
		Name:   "right_overflow_refused",
		Rect:   Rect{0.875, 0, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "none",
		Want:   Rect{0.5, 0, 0.5, 0.5},
	},
	{
		Name:   "left_of_square",
		Rect:   Rect{-2, 0.25, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "both",
		Want:   Rect{-0.5 + 1 - 0.999999, 0.25, 0.5, 0.5},
	},
	{
		Name:   "above_square",
		Rect:   Rect{0.25, -2, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "both",
		Want:   Rect{0.25, -0.5 + 1 - 0.999999, 0.5, 0.5},
	},
	{
		Name:   "either_prefers_horizontal",
		Rect:   Rect{-0.25, -0.25, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "either",
		Want:   Rect{-0.25, 0, 0.5, 0.5},
	},
	{
		Name:   "either_vertical",
		Rect:   Rect{0.25, -0.25, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "either",
		Want:   Rect{0.25, -0.25, 0.5, 0.5},
	},
	{
		Name:   "both_keeps_both",
		Rect:   Rect{-0.25, -0.25, 0.5, 0.5},
		Op:     Clamp{},
		Policy: "both",
		Want:   Rect{-0.25, -0.25, 0.5, 0.5},
	},
	{
		Name:   "wider_than_square",
		Rect:   Rect{0.25, 0, 1.5, 0.5},
		Op:     Clamp{},
		Policy: "none",
		Want:   Rect{0, 0, 1.5, 0.5},
	},
}
