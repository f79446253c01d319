package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRegions_Totals(t *testing.T) {
	cases := []struct {
		width, height   int
		topPct, leftPct float64
	}{
		{80, 24, 65, 50},
		{80, 24, 20, 15},
		{80, 24, 80, 85},
		{120, 40, 66, 50},
		{200, 60, 33.3, 42.7},
		{3, 3, 50, 50},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d_%.1f_%.1f", tc.width, tc.height, tc.topPct, tc.leftPct), func(t *testing.T) {
			r := ComputeRegions(tc.width, tc.height, tc.topPct, tc.leftPct)

			assert.Equal(t, tc.height, r.Top.H+r.HDivider.H+r.Bottom.H, "heights + gutter")
			assert.Equal(t, tc.width, r.TopLeft.W+r.VDivider.W+r.TopRight.W, "widths + gutter")

			// No region may have negative size.
			for name, rect := range map[string]Rect{
				"top": r.Top, "topLeft": r.TopLeft, "topRight": r.TopRight,
				"bottom": r.Bottom, "hDivider": r.HDivider, "vDivider": r.VDivider,
			} {
				assert.GreaterOrEqual(t, rect.W, 0, "%s width", name)
				assert.GreaterOrEqual(t, rect.H, 0, "%s height", name)
			}
		})
	}
}

func TestComputeRegions_DividerPlacement(t *testing.T) {
	r := ComputeRegions(100, 50, 65, 50)

	// round(50*0.65)-1 = 32 rows of top band, divider row below it.
	require.Equal(t, 32, r.Top.H)
	assert.Equal(t, Rect{X: 0, Y: 32, W: 100, H: 1}, r.HDivider, "horizontal divider spans full width")
	assert.Equal(t, Rect{X: 0, Y: 33, W: 100, H: 17}, r.Bottom)

	// round(100*0.50) = 50 columns of left sub-region.
	assert.Equal(t, Rect{X: 0, Y: 0, W: 50, H: 32}, r.TopLeft)
	assert.Equal(t, Rect{X: 50, Y: 0, W: 1, H: 32}, r.VDivider, "vertical divider spans the top band only")
	assert.Equal(t, Rect{X: 51, Y: 0, W: 49, H: 32}, r.TopRight)
}

func TestComputeRegions_DegenerateSurface(t *testing.T) {
	for _, r := range []Regions{
		ComputeRegions(0, 0, 65, 50),
		ComputeRegions(-1, 10, 65, 50),
		ComputeRegions(10, 0, 65, 50),
	} {
		assert.True(t, r.Top.Empty())
		assert.True(t, r.Bottom.Empty())
		assert.True(t, r.HDivider.Empty())
		assert.True(t, r.VDivider.Empty())
	}
}

func TestComputeRegions_ExtremeRatiosStayOnSurface(t *testing.T) {
	for _, pct := range []float64{-50, 0, 100, 250} {
		r := ComputeRegions(80, 24, pct, pct)
		assert.GreaterOrEqual(t, r.Top.H, 0)
		assert.LessOrEqual(t, r.Top.H+r.HDivider.H, 24)
		assert.GreaterOrEqual(t, r.TopLeft.W, 0)
		assert.LessOrEqual(t, r.TopLeft.W+r.VDivider.W, 80)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 4, H: 2}

	assert.True(t, r.Contains(10, 5), "top-left corner")
	assert.True(t, r.Contains(13, 6), "bottom-right cell")
	assert.False(t, r.Contains(14, 5), "right edge is exclusive")
	assert.False(t, r.Contains(10, 7), "bottom edge is exclusive")
	assert.False(t, r.Contains(9, 5))

	assert.False(t, Rect{}.Contains(0, 0), "empty rect contains nothing")
}

func TestClamp_Idempotent(t *testing.T) {
	for _, v := range []float64{-10, 0, 15, 50, 85, 100, 200} {
		once := clamp(v, 15, 85)
		assert.Equal(t, once, clamp(once, 15, 85), "clamp(clamp(x)) == clamp(x) for %v", v)
		assert.GreaterOrEqual(t, once, 15.0)
		assert.LessOrEqual(t, once, 85.0)
	}
}

func TestClamp_DegenerateRangePins(t *testing.T) {
	// min > max (e.g. minLeft+minRight > 100) pins the ratio to a constant.
	for _, v := range []float64{0, 50, 100} {
		assert.Equal(t, clamp(0, 60, 40), clamp(v, 60, 40))
	}
}
