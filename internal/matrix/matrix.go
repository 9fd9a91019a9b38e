package matrix

import (
	"fmt"
	"strings"
)

// TextRegion is a merged, contiguous run of grid cells believed to represent
// one piece of original text content. Confidence is 1.0 for regions produced
// by the direct extraction path; lower values are reserved for future
// sources.
type TextRegion struct {
	BBox       CharBBox `json:"bbox"`
	Confidence float64  `json:"confidence"`
	Text       string   `json:"text_content"`
	ID         int      `json:"region_id"`
}

// CharacterMatrix is the result of rasterizing one page: a fixed-size grid of
// characters (space = empty) plus the merged text regions and the calibration
// that produced it. It is built once per page-processing call and replaced
// wholesale on re-extraction; the engine never mutates it partially.
// OriginalText is an audit trail of the raw extracted strings and is not used
// for rendering.
type CharacterMatrix struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Cells        [][]rune     `json:"-"`
	Regions      []TextRegion `json:"text_regions"`
	OriginalText []string     `json:"original_text"`
	CharWidth    float64      `json:"char_width"`
	CharHeight   float64      `json:"char_height"`
}

// NewCharacterMatrix returns an empty width x height matrix filled with
// spaces.
func NewCharacterMatrix(width, height int) *CharacterMatrix {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}

	return &CharacterMatrix{
		Width:      width,
		Height:     height,
		Cells:      cells,
		CharWidth:  fallbackAvgCharWidth,
		CharHeight: DefaultCharHeight,
	}
}

// BuildFromLines builds a matrix from a line-oriented text dump, one grid
// column per character. This is the fast extraction path: no calibration, no
// region detection, fixed cell size. The raw lines are kept as the audit
// trail.
func BuildFromLines(lines []string) *CharacterMatrix {
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		width = 80
	}
	height := len(lines)
	if height < 25 {
		height = 25
	}

	m := NewCharacterMatrix(width, height)
	m.CharWidth = 8.0
	m.CharHeight = 12.0

	for y, line := range lines {
		for x, ch := range []rune(line) {
			m.Cells[y][x] = ch
		}
	}

	m.OriginalText = append([]string(nil), lines...)
	return m
}

// Text serializes the grid as plain text for persistence: one line per row,
// characters concatenated without padding, rows separated by newlines.
func (m *CharacterMatrix) Text() string {
	var sb strings.Builder
	for _, row := range m.Cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderString produces the diagnostic report view of the matrix: a
// dimensions header, the grid itself (with a row-number gutter for tall
// matrices) and the region listing with truncated content previews. This is
// a debug view, not the persisted format; see Text.
func (m *CharacterMatrix) RenderString() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Character Matrix (%dx%d) | Char: %.1fx%.1fpt:\n",
		m.Width, m.Height, m.CharWidth, m.CharHeight)
	fmt.Fprintf(&sb, "Text Regions: %d | Original Text Objects: %d\n",
		len(m.Regions), len(m.OriginalText))

	rule := strings.Repeat("═", minInt(m.Width, 80))
	sb.WriteString(rule)
	sb.WriteByte('\n')

	for y, row := range m.Cells {
		if m.Height > 20 {
			fmt.Fprintf(&sb, "%3d ", y)
		}
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	sb.WriteString(rule)
	sb.WriteByte('\n')

	for i, region := range m.Regions {
		preview := []rune(region.Text)
		if len(preview) > 50 {
			preview = preview[:50]
		}
		fmt.Fprintf(&sb, "Region %d: (%d,%d) %dx%d conf:%.2f - %q\n",
			i+1, region.BBox.X, region.BBox.Y, region.BBox.Width, region.BBox.Height,
			region.Confidence, string(preview))
	}

	return sb.String()
}

// SpatialReport renders the grid for spatial inspection on a console: every
// row carries a number gutter and empty cells are shown as interpuncts so
// sparse placement stays visible.
func (m *CharacterMatrix) SpatialReport() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Matrix Size: %d columns x %d rows\n", m.Width, m.Height)
	fmt.Fprintf(&sb, "Regions Detected: %d\n", len(m.Regions))
	fmt.Fprintf(&sb, "Text Objects: %d\n", len(m.OriginalText))

	for y, row := range m.Cells {
		fmt.Fprintf(&sb, "%3d ", y)
		for _, ch := range row {
			if ch == ' ' {
				sb.WriteRune('·')
			} else {
				sb.WriteRune(ch)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
