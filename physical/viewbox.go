package physical

// ViewBox is an axis-aligned rectangle given by its top-left corner and
// extent.
type ViewBox struct {
	Corner Pos     `json:"corner"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenteredAt returns the width×height box centred on pos.
func CenteredAt(pos Pos, width, height float64) ViewBox {
	return ViewBox{
		Corner: Pos{X: pos.X - width/2, Y: pos.Y - height/2},
		Width:  width,
		Height: height,
	}
}

// Tuple returns the box as (x, y, width, height).
func (v ViewBox) Tuple() (float64, float64, float64, float64) {
	return v.Corner.X, v.Corner.Y, v.Width, v.Height
}

// Center returns the midpoint of the box.
func (v ViewBox) Center() Pos {
	return Pos{X: v.Corner.X + v.Width/2, Y: v.Corner.Y + v.Height/2}
}

// Expand grows the box by d on every side; a negative d contracts it.
func (v ViewBox) Expand(d float64) ViewBox {
	return ViewBox{
		Corner: Pos{X: v.Corner.X - d, Y: v.Corner.Y - d},
		Width:  v.Width + 2*d,
		Height: v.Height + 2*d,
	}
}

// Contains reports whether pos lies inside the box; edges count as inside.
func (v ViewBox) Contains(pos Pos) bool {
	return pos.X >= v.Corner.X && pos.Y >= v.Corner.Y &&
		pos.X <= v.Corner.X+v.Width && pos.Y <= v.Corner.Y+v.Height
}

// Scale returns the box with corner and extent scaled by f.
func (v ViewBox) Scale(f float64) ViewBox {
	return ViewBox{Corner: v.Corner.Scale(f), Width: v.Width * f, Height: v.Height * f}
}

// SplitVertical splits the box along the vertical line x=at and returns the
// left and right parts.
func (v ViewBox) SplitVertical(at float64) (ViewBox, ViewBox) {
	left := ViewBox{Corner: v.Corner, Width: at - v.Corner.X, Height: v.Height}
	right := ViewBox{
		Corner: Pos{X: at, Y: v.Corner.Y},
		Width:  v.Corner.X + v.Width - at,
		Height: v.Height,
	}

	return left, right
}

// SplitHorizontal splits the box along the horizontal line y=at and returns
// the top and bottom parts.
func (v ViewBox) SplitHorizontal(at float64) (ViewBox, ViewBox) {
	top := ViewBox{Corner: v.Corner, Width: v.Width, Height: at - v.Corner.Y}
	bottom := ViewBox{
		Corner: Pos{X: v.Corner.X, Y: at},
		Width:  v.Width,
		Height: v.Corner.Y + v.Height - at,
	}

	return top, bottom
}
