package physical

import (
	"iter"
	"math"
)

// Bounds returns the smallest box containing every point in points. An empty
// sequence yields the zero box.
func Bounds(points iter.Seq[Pos]) ViewBox {
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		seen       bool
	)
	for p := range points {
		seen = true
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if !seen {
		return ViewBox{}
	}

	return ViewBox{
		Corner: Pos{X: minX, Y: minY},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
