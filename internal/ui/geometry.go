package ui

import "math"

// Divider gutter sizes in cells. The horizontal divider consumes one row of
// the surface; the vertical divider consumes one column of the top band.
const (
	hGutter = 1
	vGutter = 1
)

// Rect is a rectangle in cell coordinates; X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Regions holds the computed geometry for the three content regions and the
// two divider hit targets, all relative to the surface origin.
//
// Top is the full-width band above the horizontal divider; it is the
// reference rectangle for vertical-divider drags. Surface is the reference
// rectangle for horizontal-divider drags.
type Regions struct {
	Surface  Rect
	Top      Rect
	TopLeft  Rect
	TopRight Rect
	Bottom   Rect
	HDivider Rect // spans the full width at the top/bottom boundary
	VDivider Rect // spans the top band at the left/right boundary
}

// ComputeRegions is a pure function from surface size and the two split
// ratios to region geometry. The top band takes topPct% of the height minus
// the one-row gutter; within it the left sub-region takes leftPct% of the
// width. Degenerate surfaces yield empty regions; callers treat those as
// unmeasurable and skip drag math.
func ComputeRegions(width, height int, topPct, leftPct float64) Regions {
	r := Regions{Surface: Rect{X: 0, Y: 0, W: width, H: height}}
	if width <= 0 || height <= 0 {
		return r
	}

	topH := int(math.Round(float64(height)*topPct/100)) - hGutter
	topH = clampInt(topH, 0, height-hGutter)
	bottomH := height - topH - hGutter

	leftW := int(math.Round(float64(width) * leftPct / 100))
	leftW = clampInt(leftW, 0, width-vGutter)
	rightW := width - leftW - vGutter

	r.Top = Rect{X: 0, Y: 0, W: width, H: topH}
	r.TopLeft = Rect{X: 0, Y: 0, W: leftW, H: topH}
	r.VDivider = Rect{X: leftW, Y: 0, W: vGutter, H: topH}
	r.TopRight = Rect{X: leftW + vGutter, Y: 0, W: rightW, H: topH}
	r.HDivider = Rect{X: 0, Y: topH, W: width, H: hGutter}
	r.Bottom = Rect{X: 0, Y: topH + hGutter, W: width, H: bottomH}
	return r
}

// clamp constrains v to [lo, hi]. This is the sole invariant-enforcement
// mechanism for split ratios: every mutation passes through it, and it is
// idempotent. A degenerate range (lo > hi) pins the result.
func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
