package grid

import (
	"strconv"
	"strings"
)

// Grid is a mutable, interactive wrapper around a character matrix. It owns
// the selection, an optional cursor, a rectangular clipboard with its own
// dimensions and the in-progress drag state, and applies edits to the cells
// in place. Operations never fail: out-of-range positions are clamped or
// ignored. Every mutation raises the Modified flag; the owning session is
// responsible for observing and clearing it after persisting.
//
// A Grid is single-threaded by contract: all state is plain data mutated
// only by the owning session's input-handling step.
type Grid struct {
	Cells     [][]rune
	Selection Selection
	Cursor    *Cell
	Modified  bool

	clipboard [][]rune

	dragging    bool
	dragOrigin  *Cell
	dragPayload [][]rune
}

// New wraps an existing matrix of cells. The grid takes ownership and edits
// the rows in place.
func New(cells [][]rune) *Grid {
	return &Grid{Cells: cells}
}

// NewFromText builds a grid from matrix text, one row per line. Rows are
// taken verbatim, including leading spaces, which carry spatial layout. The
// only exception is the row-number gutter the diagnostic rendering prefixes
// to tall matrices: when every line starts with a right-aligned row number
// counting up from zero, that gutter is stripped.
func NewFromText(text string) *Grid {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	strip := hasRowGutter(lines)
	cells := make([][]rune, 0, len(lines))
	for i, line := range lines {
		if strip {
			line = line[rowGutterLen(i):]
		}
		cells = append(cells, []rune(line))
	}
	return New(cells)
}

// rowGutterLen is the width of the "%3d " gutter prefix for the given row.
func rowGutterLen(row int) int {
	n := len(strconv.Itoa(row)) + 1
	if n < 4 {
		n = 4
	}
	return n
}

// hasRowGutter reports whether every line carries the rendered row-number
// gutter. Content that merely begins with digits does not match: the numbers
// must be right-aligned in the gutter and sequential from zero across all
// lines.
func hasRowGutter(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for i, line := range lines {
		n := rowGutterLen(i)
		if len(line) < n || line[n-1] != ' ' {
			return false
		}
		if strings.TrimLeft(line[:n-1], " ") != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

// Click places the cursor on an in-bounds cell and clears any active
// selection. Out-of-range clicks are ignored.
func (g *Grid) Click(row, col int) {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
		return
	}
	g.Cursor = &Cell{Row: row, Col: col}
	g.Selection.Clear()
}

// DragStart begins either a new selection or, when the press lands inside
// the active selection, a move of the selected block. The move is
// destructive at pickup: the payload is captured and the source rectangle is
// blanked immediately, not at drop time.
func (g *Grid) DragStart(row, col int) {
	if g.Selection.Active() && g.Selection.IsSelected(row, col) {
		g.dragging = true
		g.dragOrigin = &Cell{Row: row, Col: col}
		g.dragPayload = g.copySelection()
		g.blankSelection()
		g.Modified = true
		return
	}

	g.Selection.Start = &Cell{Row: row, Col: col}
	g.Selection.End = &Cell{Row: row, Col: col}
	g.Cursor = nil
	g.dragging = false
}

// DragTo extends an in-progress selection to (row, col); the start endpoint
// stays fixed. During a block move the grid is untouched and the payload is
// only tracked for preview rendering.
func (g *Grid) DragTo(row, col int) {
	if g.dragging {
		return
	}
	if g.Selection.Start != nil {
		g.Selection.End = &Cell{Row: row, Col: col}
	}
}

// DragRelease finishes a drag. A moved block is written row-major with its
// top-left corner at the release cell, clipped to the grid bounds per cell;
// the selection is cleared and the drag state reset. Releasing a plain
// selection drag leaves the selection in place as confirmed.
func (g *Grid) DragRelease(row, col int) {
	if !g.dragging {
		return
	}

	g.writeBlock(g.dragPayload, row, col)
	g.Modified = true
	g.Selection.Clear()

	g.dragging = false
	g.dragOrigin = nil
	g.dragPayload = nil
}

// Dragging reports whether a block move is in progress, along with the
// payload a renderer should preview at the pointer.
func (g *Grid) Dragging() ([][]rune, bool) {
	return g.dragPayload, g.dragging
}

// Copy captures the selected rectangle into the clipboard without mutating
// the grid. Rectangles above the size cap leave the clipboard unchanged.
func (g *Grid) Copy() {
	minRow, maxRow, minCol, maxCol, ok := g.selectionRect()
	if !ok {
		return
	}
	if (maxRow-minRow+1)*(maxCol-minCol+1) > maxSelectionCells {
		return
	}
	g.clipboard = g.copySelection()
}

// Cut is Copy followed by blanking the source rectangle. A rectangle above
// the size cap refuses the whole operation: the clipboard keeps its previous
// contents and no cells are blanked.
func (g *Grid) Cut() {
	minRow, maxRow, minCol, maxCol, ok := g.selectionRect()
	if !ok {
		return
	}
	if (maxRow-minRow+1)*(maxCol-minCol+1) > maxSelectionCells {
		return
	}
	g.clipboard = g.copySelection()
	g.blankSelection()
	g.Modified = true
}

// Paste writes the clipboard into the grid anchored at the cursor if set,
// else at the selection start, else at the top-left corner, clipped to the
// grid bounds per cell. The selection is cleared; the cursor does not move.
func (g *Grid) Paste() {
	if len(g.clipboard) == 0 {
		return
	}

	var anchor Cell
	switch {
	case g.Cursor != nil:
		anchor = *g.Cursor
	case g.Selection.Start != nil:
		anchor = *g.Selection.Start
	}

	g.writeBlock(g.clipboard, anchor.Row, anchor.Col)
	g.Selection.Clear()
	g.Modified = true
}

// Clipboard returns the current clipboard buffer.
func (g *Grid) Clipboard() [][]rune {
	return g.clipboard
}

// InsertText overwrites the cell under the cursor with the first character
// of the input and advances the cursor one cell right, clamped at the row
// end with no line wrap. The remainder of a multi-character input event is
// ignored.
func (g *Grid) InsertText(text string) {
	if g.Cursor == nil {
		return
	}
	for _, ch := range text {
		row, col := g.Cursor.Row, g.Cursor.Col
		if row >= 0 && row < len(g.Cells) && col >= 0 && col < len(g.Cells[row]) {
			g.Cells[row][col] = ch
			g.Modified = true
			if col+1 < len(g.Cells[row]) {
				g.Cursor = &Cell{Row: row, Col: col + 1}
			}
		}
		break
	}
}

// Text serializes the grid as plain text, one line per row.
func (g *Grid) Text() string {
	var sb strings.Builder
	for _, row := range g.Cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// selectionRect returns the active selection's normalized rectangle with the
// row range clamped to the grid.
func (g *Grid) selectionRect() (minRow, maxRow, minCol, maxCol int, ok bool) {
	if !g.Selection.Active() || len(g.Cells) == 0 {
		return 0, 0, 0, 0, false
	}
	minRow, maxRow, minCol, maxCol = g.Selection.bounds()
	if maxRow < 0 || maxCol < 0 {
		return 0, 0, 0, 0, false
	}
	minRow = maxInt(minInt(minRow, len(g.Cells)-1), 0)
	maxRow = minInt(maxRow, len(g.Cells)-1)
	minCol = maxInt(minCol, 0)
	return minRow, maxRow, minCol, maxCol, true
}

// copySelection extracts the selected rectangle as an independent buffer.
// Columns beyond a row's length are omitted, so rows of the buffer may have
// differing lengths near the grid edge.
func (g *Grid) copySelection() [][]rune {
	minRow, maxRow, minCol, maxCol, ok := g.selectionRect()
	if !ok {
		return nil
	}

	buf := make([][]rune, 0, maxRow-minRow+1)
	for row := minRow; row <= maxRow; row++ {
		rowData := g.Cells[row]
		var rowChars []rune
		for col := minCol; col <= maxCol && col < len(rowData); col++ {
			rowChars = append(rowChars, rowData[col])
		}
		buf = append(buf, rowChars)
	}
	return buf
}

// blankSelection fills the selected rectangle with spaces.
func (g *Grid) blankSelection() {
	minRow, maxRow, minCol, maxCol, ok := g.selectionRect()
	if !ok {
		return
	}

	for row := minRow; row <= maxRow; row++ {
		rowData := g.Cells[row]
		for col := minCol; col <= maxCol && col < len(rowData); col++ {
			rowData[col] = ' '
		}
	}
}

// writeBlock writes a rectangular buffer into the grid with its top-left
// corner at (row, col), skipping cells that fall outside the grid.
func (g *Grid) writeBlock(block [][]rune, row, col int) {
	for i, blockRow := range block {
		targetRow := row + i
		if targetRow < 0 || targetRow >= len(g.Cells) {
			continue
		}
		for j, ch := range blockRow {
			targetCol := col + j
			if targetCol < 0 || targetCol >= len(g.Cells[targetRow]) {
				continue
			}
			g.Cells[targetRow][targetCol] = ch
		}
	}
}
