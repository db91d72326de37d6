// Command export writes the clip and line test cases to JSON, so that they
// can be checked against other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/geometry"
	"seehuhn.de/go/linedraw/testcases"
)

func main() {
	var out struct {
		Clip  []jsonClipCase `json:"clip"`
		Lines []jsonLineCase `json:"lines"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Clip)) {
		for _, tc := range testcases.Clip[category] {
			out.Clip = append(out.Clip, clipToJSON(category, tc))
		}
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.Lines)) {
		for _, tc := range testcases.Lines[category] {
			out.Lines = append(out.Lines, lineToJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonClipCase struct {
	Name     string      `json:"name"`
	Segment  [4]float64  `json:"segment"`
	Viewport [4]float64  `json:"viewport"`
	Want     string      `json:"want"`
	Result   *[4]float64 `json:"result,omitempty"`
}

type jsonLineCase struct {
	Name       string     `json:"name"`
	Segment    [4]float64 `json:"segment"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Background string     `json:"background"`
	Color      string     `json:"color"`
	Pixels     [][2]int   `json:"pixels"`
}

func segmentToJSON(s geometry.Segment) [4]float64 {
	return [4]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y}
}

func clipToJSON(category string, tc testcases.ClipCase) jsonClipCase {
	vp := tc.Viewport
	jtc := jsonClipCase{
		Name:     category + "_" + tc.Name,
		Segment:  segmentToJSON(tc.Segment),
		Viewport: [4]float64{vp.LLx, vp.LLy, vp.URx, vp.URy},
		Want:     tc.Want.String(),
	}
	if tc.Want != clip.Reject {
		res := segmentToJSON(tc.Result)
		jtc.Result = &res
	}
	return jtc
}

func lineToJSON(category string, tc testcases.LineCase) jsonLineCase {
	jtc := jsonLineCase{
		Name:       category + "_" + tc.Name,
		Segment:    segmentToJSON(tc.Segment),
		Width:      tc.Width,
		Height:     tc.Height,
		Background: tc.Background.String(),
		Color:      tc.Color.String(),
		Pixels:     [][2]int{},
	}
	for _, p := range tc.Pixels {
		jtc.Pixels = append(jtc.Pixels, [2]int{p.X, p.Y})
	}
	return jtc
}
