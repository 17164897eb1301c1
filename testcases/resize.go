package testcases

var resizeCases = []TestCase{
	{
		Name:   "collapse_locked",
		Rect:   Rect{0, 0, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Resize{By: px(240, 180), LockAspect: true},
		Policy: "none",
		Want:   Rect{0.6, 0.6, 1e-9, 1e-9},
	},
	{
		Name:   "shrink",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Resize{By: px(50, 37.5)},
		Policy: "none",
		Want:   Rect{0.375, 0.375, 0.375, 0.375},
	},
	{
		Name:   "grow_to_limit",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Resize{By: px(-400, -300)},
		Policy: "both",
		Want:   Rect{-0.75, -0.75, 1, 1},
	},
	{
		Name:   "grow_to_limit_none",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Resize{By: px(-400, -300)},
		Policy: "none",
		Want:   Rect{0, 0, 1, 1},
	},
	{
		Name:   "height_wins",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Resize{By: px(50, -75), LockAspect: true},
		Policy: "none",
		Want:   Rect{0.25, 0, 0.75, 0.75},
	},
	{
		Name:   "unlocked",
		Rect:   Rect{0.25, 0.25, 0.5, 0.5},
		Width:  400,
		Height: 300,
		Op:     Resize{By: px(50, -75)},
		Policy: "none",
		Want:   Rect{0.375, 0, 0.375, 0.75},
	},
}
