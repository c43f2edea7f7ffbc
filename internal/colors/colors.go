// Package colors maps Tracy zone/message RGB colors onto the fixed named
// palette the Firefox Profiler UI understands.
package colors

import "math"

type entry struct {
	name    string
	r, g, b int
}

// palette is the fixed set of colors the profiler UI accepts for a marker's
// colorField. Order does not affect the result, only ties do, and no two
// entries are close enough to tie in practice.
var palette = []entry{
	{"blue", 0, 112, 243},
	{"green", 16, 185, 129},
	{"grey", 156, 163, 175},
	{"ink", 17, 24, 39},
	{"magenta", 236, 72, 153},
	{"orange", 249, 115, 22},
	{"purple", 168, 85, 247},
	{"red", 239, 68, 68},
	{"teal", 20, 184, 166},
	{"yellow", 234, 179, 8},
}

// FromRGB maps a packed 0xRRGGBB color to the nearest named palette entry.
// Pure white (0xFFFFFF) means "no color was set" and reports ok=false.
func FromRGB(rgb uint32) (name string, ok bool) {
	r := int((rgb >> 16) & 0xFF)
	g := int((rgb >> 8) & 0xFF)
	b := int(rgb & 0xFF)

	if r == 0xFF && g == 0xFF && b == 0xFF {
		return "", false
	}

	best := -1
	bestDist := math.MaxFloat64
	for i, c := range palette {
		dr := float64(r - c.r)
		dg := float64(g - c.g)
		db := float64(b - c.b)
		dist := math.Sqrt(dr*dr + dg*dg + db*db)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return palette[best].name, true
}
