package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/chonker5/mcp-pdf-matrix/internal/matrix"
)

// defaultPageHeight is the US Letter height in points, used when a page
// carries no usable MediaBox.
const defaultPageHeight = 792.0

// baselineTolerance is the maximum vertical distance between two text runs
// that still counts as the same line.
const baselineTolerance = 0.5

// rowJoinGap is the horizontal distance between adjacent runs on a row above
// which a space is inserted when joining row text.
const rowJoinGap = 1.0

// Extractor pulls positioned text out of PDF pages for matrix construction
type Extractor struct {
	maxFileSize int64
}

// NewExtractor creates a new page text extractor with the specified constraints
func NewExtractor(maxFileSize int64) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
	}
}

// PageSegments extracts the positioned text segments of a single page, ready
// for precise matrix construction. Page numbers are 1-based.
func (e *Extractor) PageSegments(path string, pageNum int) (segments []matrix.TextSegment, err error) {
	// The underlying parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			segments = nil
			err = fmt.Errorf("failed to parse page %d: %v", pageNum, r)
		}
	}()

	if err := e.checkFile(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	if pageNum < 1 || pageNum > reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", pageNum, reader.NumPage())
	}

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: %w", pageNum, matrix.ErrNoText)
	}

	pageHeight := mediaBoxHeight(page)
	segments = groupSegments(page.Content().Text, pageHeight)
	if len(segments) == 0 {
		return nil, fmt.Errorf("page %d: %w", pageNum, matrix.ErrNoText)
	}

	return segments, nil
}

// PageRows extracts a single page as plain text lines ordered top to bottom,
// for fast matrix construction without calibration.
func (e *Extractor) PageRows(path string, pageNum int) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("failed to parse page %d: %v", pageNum, r)
		}
	}()

	if err := e.checkFile(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	if pageNum < 1 || pageNum > reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", pageNum, reader.NumPage())
	}

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: %w", pageNum, matrix.ErrNoText)
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, fmt.Errorf("failed to extract rows from page %d: %w", pageNum, err)
	}

	hasText := false
	for _, row := range rows {
		line := joinRow(row.Content)
		if strings.TrimSpace(line) != "" {
			hasText = true
		}
		lines = append(lines, line)
	}
	if !hasText {
		return nil, fmt.Errorf("page %d: %w", pageNum, matrix.ErrNoText)
	}

	return lines, nil
}

// checkFile performs basic validation before handing the file to the parser
func (e *Extractor) checkFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() > e.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}

	return nil
}

// mediaBoxHeight reads the page height from the MediaBox entry, falling back
// to US Letter when the entry is missing or degenerate
func mediaBoxHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}

	height := box.Index(3).Float64() - box.Index(1).Float64()
	if height <= 0 {
		return defaultPageHeight
	}
	return height
}

// groupSegments merges the parser's raw text runs into line segments. Runs
// share a segment when they sit on the same baseline and the horizontal gap
// between them stays within a fraction of the font size; larger gaps start a
// new segment so that columns stay separate.
func groupSegments(texts []pdf.Text, pageHeight float64) []matrix.TextSegment {
	var segments []matrix.TextSegment

	var sb strings.Builder
	var left, right, baseline, fontSize float64
	open := false

	flush := func() {
		if !open {
			return
		}
		text := sb.String()
		if strings.TrimSpace(text) != "" {
			segments = append(segments, matrix.TextSegment{
				Text:       text,
				Left:       left,
				Right:      right,
				Top:        baseline + fontSize,
				Bottom:     baseline,
				PageHeight: pageHeight,
			})
		}
		sb.Reset()
		open = false
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		sameLine := open && absFloat(t.Y-baseline) < baselineTolerance
		adjacent := sameLine && t.X-right <= maxFloat(fontSize, t.FontSize)*0.3

		if !adjacent {
			flush()
			left = t.X
			baseline = t.Y
			fontSize = t.FontSize
			open = true
		}

		sb.WriteString(t.S)
		right = t.X + t.W
		if t.FontSize > fontSize {
			fontSize = t.FontSize
		}
	}
	flush()

	return segments
}

// joinRow concatenates the runs of one text row, inserting a single space
// where the horizontal gap between runs is wide enough to separate words
func joinRow(row pdf.TextHorizontal) string {
	var sb strings.Builder
	prevRight := 0.0

	for i, t := range row {
		if i > 0 && t.X-prevRight > rowJoinGap {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		prevRight = t.X + t.W
	}
	return sb.String()
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
