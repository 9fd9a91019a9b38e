package matrix

import (
	"math"
	"sort"
)

// Calibration constants. A page with no usable font sizes gets the default
// cell size; derived sizes are clamped so tiny fonts still map to readable
// cells.
const (
	DefaultCharWidth  = 6.0
	DefaultCharHeight = 12.0

	minCharWidth  = 4.0
	minCharHeight = 8.0

	charWidthFactor  = 0.6
	charHeightFactor = 1.2
)

// CalibrateFontSizes derives a uniform cell size from the font sizes observed
// across a page. The median is used rather than the mean so that oversized
// headers cannot skew the cell size. Never fails: empty or all-invalid input
// degrades to the default size.
func CalibrateFontSizes(sizes []float64) (charWidth, charHeight float64) {
	valid := make([]float64, 0, len(sizes))
	for _, s := range sizes {
		if s > 0 {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return DefaultCharWidth, DefaultCharHeight
	}

	sort.Float64s(valid)
	modal := valid[len(valid)/2]

	charWidth = math.Max(modal*charWidthFactor, minCharWidth)
	charHeight = math.Max(modal*charHeightFactor, minCharHeight)
	return charWidth, charHeight
}

// calibrateObjects sizes the matrix from the full per-character object list.
// With character-level granularity the most frequent rounded font size is a
// better representative than the median: every character of a run votes for
// its size. Dimensions are floored at 10x10; a completely empty object list
// falls back to a 50x50 matrix with the default cell size.
func calibrateObjects(objects []PreciseTextObject) (width, height int, charWidth, charHeight float64) {
	if len(objects) == 0 {
		return 50, 50, DefaultCharWidth, DefaultCharHeight
	}

	counts := make(map[int]int)
	for _, obj := range objects {
		counts[int(math.Round(obj.FontSize))]++
	}

	modal := 12.0
	best := 0
	for size, n := range counts {
		if n > best || (n == best && float64(size) < modal) {
			best = n
			modal = float64(size)
		}
	}

	charWidth = modal * charWidthFactor
	charHeight = modal * charHeightFactor
	if charWidth <= 0 || charHeight <= 0 {
		charWidth = DefaultCharWidth
		charHeight = DefaultCharHeight
	}

	minX, maxX := objects[0].BBox.X0, objects[0].BBox.X1
	minY, maxY := objects[0].BBox.Y0, objects[0].BBox.Y1
	for _, obj := range objects[1:] {
		minX = math.Min(minX, obj.BBox.X0)
		maxX = math.Max(maxX, obj.BBox.X1)
		minY = math.Min(minY, obj.BBox.Y0)
		maxY = math.Max(maxY, obj.BBox.Y1)
	}

	width = int(math.Ceil((maxX - minX) / charWidth))
	height = int(math.Ceil((maxY - minY) / charHeight))
	if width < 10 {
		width = 10
	}
	if height < 10 {
		height = 10
	}
	return width, height, charWidth, charHeight
}
