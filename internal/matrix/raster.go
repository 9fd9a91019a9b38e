package matrix

import (
	"strings"
)

// TextSegment is a contiguous run of extracted text with one aggregate
// bounding box, as supplied by the extraction backend. Coordinates are in
// page points with the PDF bottom-up origin; PageHeight lets the rasterizer
// flip into a top-down grid origin.
type TextSegment struct {
	Text       string
	Left       float64
	Right      float64
	Top        float64
	Bottom     float64
	PageHeight float64
}

// PreciseTextObject is a single character placed in page-point space.
// Transient: the object list is consumed immediately by grid assignment.
type PreciseTextObject struct {
	Char     rune
	BBox     PDFBBox
	FontSize float64
}

const (
	// fallbackAvgCharWidth stands in when a segment has no measurable width.
	fallbackAvgCharWidth = 7.2

	// spaceAdvanceFactor narrows the cursor advance for spaces: inter-word
	// gaps are typically narrower than glyph cells.
	spaceAdvanceFactor = 0.5

	// fontSizeFactor maps a segment's box height to an effective font size.
	fontSizeFactor = 0.8
)

// RasterizeSegments explodes text segments into per-character placements in
// original reading order. Each character's box is derived from a uniform
// cursor walk across the segment, not from per-glyph metrics: the output
// target is monospace, so a uniform advance is deliberate.
func RasterizeSegments(segments []TextSegment) []PreciseTextObject {
	var objects []PreciseTextObject

	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}

		runes := []rune(seg.Text)
		segWidth := seg.Right - seg.Left
		avgCharWidth := fallbackAvgCharWidth
		if len(runes) > 0 && segWidth > 0 {
			avgCharWidth = segWidth / float64(len(runes))
		}

		fontSize := (seg.Top - seg.Bottom) * fontSizeFactor
		yFromTop := seg.PageHeight - seg.Top

		currentX := seg.Left
		for _, ch := range runes {
			w := avgCharWidth
			if ch == ' ' {
				w = avgCharWidth * spaceAdvanceFactor
			}

			objects = append(objects, PreciseTextObject{
				Char: ch,
				BBox: PDFBBox{
					X0: currentX,
					Y0: yFromTop,
					X1: currentX + w,
					Y1: yFromTop + fontSize,
				},
				FontSize: fontSize,
			})

			currentX += w
		}
	}

	return objects
}
