package matrix

import (
	"errors"
	"math"
)

// ErrNoText is returned when a page yields no usable text. Callers should
// surface it and keep any previously built matrix untouched.
var ErrNoText = errors.New("no text found in PDF")

// BuildFromSegments runs the precise coordinate path: segments are exploded
// into per-character placements, a cell size is calibrated from them, every
// placement is assigned a grid cell and the resulting one-cell regions are
// merged into contiguous runs. Returns ErrNoText when nothing usable was
// rasterized; past that point it never fails, it only produces sparse or
// empty matrices.
func BuildFromSegments(segments []TextSegment) (*CharacterMatrix, error) {
	objects := RasterizeSegments(segments)
	if len(objects) == 0 {
		return nil, ErrNoText
	}

	width, height, charWidth, charHeight := calibrateObjects(objects)

	minX, minY := objects[0].BBox.X0, objects[0].BBox.Y0
	for _, obj := range objects[1:] {
		minX = math.Min(minX, obj.BBox.X0)
		minY = math.Min(minY, obj.BBox.Y0)
	}

	m := NewCharacterMatrix(width, height)
	m.CharWidth = charWidth
	m.CharHeight = charHeight

	regions := assignToGrid(m.Cells, objects, width, height, charWidth, charHeight, minX, minY)
	m.Regions = MergeAdjacentRegions(regions)

	m.OriginalText = make([]string, len(objects))
	for i, obj := range objects {
		m.OriginalText[i] = string(obj.Char)
	}

	return m, nil
}

// assignToGrid writes each object into its grid cell and records a 1x1 region
// per placed character. Placements outside the grid are silently dropped;
// colliding placements are last-write-wins with no conflict resolution.
func assignToGrid(cells [][]rune, objects []PreciseTextObject,
	width, height int, charWidth, charHeight, minX, minY float64,
) []TextRegion {
	var regions []TextRegion

	for _, obj := range objects {
		gx := int(math.Round((obj.BBox.X0 - minX) / charWidth))
		gy := int(math.Round((obj.BBox.Y0 - minY) / charHeight))
		if gx < 0 || gx >= width || gy < 0 || gy >= height {
			continue
		}

		cells[gy][gx] = obj.Char
		regions = append(regions, TextRegion{
			BBox:       CharBBox{X: gx, Y: gy, Width: 1, Height: 1},
			Confidence: 1.0,
			Text:       string(obj.Char),
			ID:         len(regions),
		})
	}

	return regions
}
