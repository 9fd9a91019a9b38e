// Package grid implements the spatial editing model over a character matrix:
// rectangular selection, a rectangular clipboard, drag relocation and
// single-cell typing. It holds plain in-memory data only and is driven by
// parameterized pointer/keyboard events; rendering belongs to the caller.
package grid

import (
	"strings"
)

// Cell addresses one (row, column) slot of a character matrix.
type Cell struct {
	Row int
	Col int
}

// maxSelectionCells caps how many cells a selection or clipboard operation
// will materialize. Larger rectangles remain selected and editable; only the
// text rendering and clipboard capture are refused.
const maxSelectionCells = 100000

// SelectionTooLarge is returned by SelectedText in place of the rectangle
// content when the size guard trips.
const SelectionTooLarge = "[Selection too large]"

// Selection is a rectangular region of interest over a grid. It is active
// only when both endpoints are set. The spanned rectangle is always
// normalized, so dragging from any corner selects the same cells.
type Selection struct {
	Start *Cell
	End   *Cell
}

// Active reports whether both endpoints are set.
func (s *Selection) Active() bool {
	return s.Start != nil && s.End != nil
}

// Clear drops both endpoints.
func (s *Selection) Clear() {
	s.Start = nil
	s.End = nil
}

// bounds returns the normalized inclusive rectangle spanned by the
// endpoints. Only valid while the selection is active.
func (s *Selection) bounds() (minRow, maxRow, minCol, maxCol int) {
	minRow = minInt(s.Start.Row, s.End.Row)
	maxRow = maxInt(s.Start.Row, s.End.Row)
	minCol = minInt(s.Start.Col, s.End.Col)
	maxCol = maxInt(s.Start.Col, s.End.Col)
	return minRow, maxRow, minCol, maxCol
}

// IsSelected reports whether (row, col) lies within the normalized rectangle
// spanned by the endpoints, inclusive on both ends.
func (s *Selection) IsSelected(row, col int) bool {
	if !s.Active() {
		return false
	}
	minRow, maxRow, minCol, maxCol := s.bounds()
	return row >= minRow && row <= maxRow && col >= minCol && col <= maxCol
}

// SelectedText renders the selected rectangle as newline-joined rows,
// clamped to the actual bounds of cells: positions beyond a row's length are
// omitted, not padded. Rectangles larger than maxSelectionCells yield the
// SelectionTooLarge sentinel instead of materializing; the selection itself
// stays valid.
func (s *Selection) SelectedText(cells [][]rune) string {
	if !s.Active() || len(cells) == 0 {
		return ""
	}

	minRow, maxRow, minCol, maxCol := s.bounds()
	if maxRow < 0 || maxCol < 0 {
		return ""
	}
	minRow = maxInt(minInt(minRow, len(cells)-1), 0)
	maxRow = minInt(maxRow, len(cells)-1)
	minCol = maxInt(minCol, 0)

	if (maxRow-minRow+1)*(maxCol-minCol+1) > maxSelectionCells {
		return SelectionTooLarge
	}

	var sb strings.Builder
	for row := minRow; row <= maxRow; row++ {
		rowData := cells[row]
		for col := minCol; col <= maxCol && col < len(rowData); col++ {
			sb.WriteRune(rowData[col])
		}
		if row < maxRow {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
