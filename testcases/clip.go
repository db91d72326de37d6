package testcases

import "seehuhn.de/go/linedraw/clip"

var insideCases = []ClipCase{
	{
		Name:     "diagonal",
		Segment:  seg(1, 1, 9, 9),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Accept,
		Result:   seg(1, 1, 9, 9),
	},
	{
		Name:     "horizontal",
		Segment:  seg(2, 5, 8, 5),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Accept,
		Result:   seg(2, 5, 8, 5),
	},
	{
		Name:     "vertical_full_height",
		Segment:  seg(5, 0, 5, 10),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Accept,
		Result:   seg(5, 0, 5, 10),
	},
	{
		Name:     "corner_to_corner",
		Segment:  seg(0, 0, 10, 10),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Accept,
		Result:   seg(0, 0, 10, 10),
	},
	{
		Name:     "on_left_edge",
		Segment:  seg(0, 2, 0, 8),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Accept,
		Result:   seg(0, 2, 0, 8),
	},
	{
		Name:     "offset_viewport",
		Segment:  seg(150, 120, 280, 290),
		Viewport: vp(100, 100, 300, 300),
		Want:     clip.Accept,
		Result:   seg(150, 120, 280, 290),
	},
}

var outsideCases = []ClipCase{
	{
		Name:     "left",
		Segment:  seg(-5, 5, -1, 5),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
	{
		Name:     "right",
		Segment:  seg(11, 0, 15, 10),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
	{
		Name:     "below",
		Segment:  seg(0, -1, 10, -3),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
	{
		Name:     "above",
		Segment:  seg(2, 11, 8, 20),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
	{
		Name:     "parallel_above",
		Segment:  seg(-3, 11, 13, 11),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
	{
		// passes the top-left corner on the outside
		Name:     "corner_miss",
		Segment:  seg(-2, 9, 2, 13),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
}

var crossingCases = []ClipCase{
	{
		Name:     "diagonal_through",
		Segment:  seg(0, 0, 10, 10),
		Viewport: vp(2, 2, 8, 8),
		Want:     clip.Clip,
		Result:   seg(2, 2, 8, 8),
	},
	{
		Name:     "horizontal_through",
		Segment:  seg(-5, 5, 15, 5),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Clip,
		Result:   seg(0, 5, 10, 5),
	},
	{
		Name:     "vertical_through",
		Segment:  seg(3, -4, 3, 14),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Clip,
		Result:   seg(3, 0, 3, 10),
	},
	{
		Name:     "one_end_inside",
		Segment:  seg(5, 5, 15, 5),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Clip,
		Result:   seg(5, 5, 10, 5),
	},
	{
		Name:     "reversed",
		Segment:  seg(15, 5, 5, 5),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Clip,
		Result:   seg(10, 5, 5, 5),
	},
	{
		Name:     "steep",
		Segment:  seg(-2, -6, 12, 22),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Clip,
		Result:   seg(1, 0, 6, 10),
	},
}

var degenerateCases = []ClipCase{
	{
		Name:     "point_inside",
		Segment:  seg(3, 3, 3, 3),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Accept,
		Result:   seg(3, 3, 3, 3),
	},
	{
		Name:     "point_outside",
		Segment:  seg(12, 12, 12, 12),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Reject,
	},
	{
		// touches the viewport only in its top-left corner
		Name:     "touch_corner",
		Segment:  seg(-5, 5, 5, 15),
		Viewport: vp(0, 0, 10, 10),
		Want:     clip.Clip,
		Result:   seg(0, 10, 0, 10),
	},
	{
		Name:     "empty_viewport",
		Segment:  seg(-1, 4, 9, 4),
		Viewport: vp(4, 4, 4, 4),
		Want:     clip.Clip,
		Result:   seg(4, 4, 4, 4),
	},
}
