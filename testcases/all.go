package testcases

// Clip contains all clipping cases, grouped by category.
var Clip = map[string][]ClipCase{
	"inside":     insideCases,
	"outside":    outsideCases,
	"crossing":   crossingCases,
	"degenerate": degenerateCases,
}

// Lines contains all rasterisation cases, grouped by category.
// The category name is used as a prefix in output file names.
var Lines = map[string][]LineCase{
	"axis":      axisLines,
	"slope":     slopeLines,
	"offscreen": offscreenLines,
	"blend":     blendLines,
}
