package mandel

import "sort"

// Region is a named viewport preset.
type Region struct {
	Slug        string
	Name        string
	Description string
	Viewport    Viewport
}

// Classic landmarks in the Mandelbrot set, selectable by slug from the CLI
// instead of spelling out corner coordinates.
var builtinRegions = []Region{
	{
		Slug:        "overview",
		Name:        "Overview",
		Description: "The full set with some surrounding plane",
		Viewport:    Viewport{UpperLeft: complex(-2.5, 1.25), LowerRight: complex(1.0, -1.25)},
	},
	{
		Slug:        "seahorse-valley",
		Name:        "Seahorse Valley",
		Description: "Dense filaments and repeating seahorse curls",
		Viewport:    Viewport{UpperLeft: complex(-0.8, 0.15), LowerRight: complex(-0.7, 0.05)},
	},
	{
		Slug:        "elephant-valley",
		Name:        "Elephant Valley",
		Description: "Large bulb with trunk-like tendrils",
		Viewport:    Viewport{UpperLeft: complex(-1.85, -0.02), LowerRight: complex(-1.75, -0.10)},
	},
	{
		Slug:        "spiral-minibrot",
		Name:        "Spiral Minibrot",
		Description: "Small Mandelbrot copy with tight spiral arms",
		Viewport:    Viewport{UpperLeft: complex(-0.7435, 0.1325), LowerRight: complex(-0.7420, 0.1310)},
	},
	{
		Slug:        "triple-spiral",
		Name:        "Triple Spiral",
		Description: "Threefold symmetric spiral structure",
		Viewport:    Viewport{UpperLeft: complex(-0.7480, 0.0980), LowerRight: complex(-0.7450, 0.0950)},
	},
	{
		Slug:        "valley-of-the-dragon",
		Name:        "Valley of the Dragon",
		Description: "Deep, highly detailed spiral filaments",
		Viewport:    Viewport{UpperLeft: complex(-0.7400, 0.1850), LowerRight: complex(-0.7350, 0.1800)},
	},
	{
		Slug:        "minibrot-in-mini-spiral",
		Name:        "Minibrot in a Mini-Spiral",
		Description: "Self-similar Mandelbrot copy inside a spiral arm",
		Viewport:    Viewport{UpperLeft: complex(-1.7390, -0.0220), LowerRight: complex(-1.7375, -0.0235)},
	},
}

// Regions returns the built-in viewport presets sorted by slug.
func Regions() []Region {
	out := make([]Region, len(builtinRegions))
	copy(out, builtinRegions)
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// LookupRegion returns the built-in preset with the given slug.
func LookupRegion(slug string) (Region, bool) {
	for _, r := range builtinRegions {
		if r.Slug == slug {
			return r, true
		}
	}
	return Region{}, false
}
