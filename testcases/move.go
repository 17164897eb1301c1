package testcases

// All move cases use a 400×300 viewport, so 100px horizontally and 75px
// vertically correspond to a quarter of the unit square.
var moveCases = []TestCase{
	{
		Name:   "quarter_right",
		Rect:   Rect{0, 0, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(100, 0)},
		Policy: "none",
		Want:   Rect{0.25, 0, 0.5, 0.5},
	},
	{
		Name:   "snap_right_edge",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(200, 0)},
		Policy: "none",
		Want:   Rect{0.5, 0.25, 0.5, 0.5},
	},
	{
		Name:   "overflow_left",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(-200, 0)},
		Policy: "either",
		Want:   Rect{-0.25, 0.25, 0.5, 0.5},
	},
	{
		Name:   "overflow_down",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(0, 150)},
		Policy: "either",
		Want:   Rect{0.25, 0.75, 0.5, 0.5},
	},
	{
		Name:   "horizontal_wins",
		Rect:   Rect{-0.125, 0, 0.25, 0.25},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(0, -75)},
		Policy: "either",
		Want:   Rect{-0.125, 0, 0.25, 0.25},
	},
	{
		Name:   "fully_left",
		Rect:   Rect{-0.5, 0, 0.25, 0.25},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(-100, -75)},
		Policy: "either",
		Want:   Rect{-0.25 + 1 - 0.999999, 0, 0.25, 0.25},
	},
	{
		Name:   "both_axes",
		Rect:   Rect{0.5, 0.5, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(100, 75)},
		Policy: "both",
		Want:   Rect{0.75, 0.75, 0.5, 0.5},
	},
	{
		Name:   "past_right",
		Rect:   Rect{0.5, 0, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(400, 0)},
		Policy: "both",
		Want:   Rect{0.999999, 0, 0.5, 0.5},
	},
	{
		Name:   "past_bottom_none",
		Rect:   Rect{0, 0.5, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(0, 300)},
		Policy: "none",
		Want:   Rect{0, 0.5, 0.5, 0.5},
	},
	{
		Name:   "vertical_only",
		Rect:   Rect{0, 0, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(-100, -75)},
		Policy: "vertical",
		Want:   Rect{0, -0.25, 0.5, 0.5},
	},
	{
		Name:   "horizontal_only",
		Rect:   Rect{0, 0, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Move{By: px(-100, -75)},
		Policy: "horizontal",
		Want:   Rect{-0.25, 0, 0.5, 0.5},
	},
}
