package grid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chonker5/mcp-pdf-matrix/internal/matrix"
)

// Session owns a Grid for the lifetime of one editing pass over an extracted
// page and knows where the edited matrix persists. The grid's Modified flag
// is cleared only after a successful save.
type Session struct {
	Grid       *Grid
	SourcePath string
}

// NewSession wraps the matrix built for sourcePath in an editing session.
// The grid takes ownership of the matrix cells; the CharacterMatrix itself
// is replaced wholesale on re-extraction and never edited in place.
func NewSession(m *matrix.CharacterMatrix, sourcePath string) *Session {
	return &Session{
		Grid:       New(m.Cells),
		SourcePath: sourcePath,
	}
}

// OutputPath derives the sibling text file the edited grid persists to:
// <name>.matrix.txt next to the source document.
func (s *Session) OutputPath() string {
	ext := filepath.Ext(s.SourcePath)
	return strings.TrimSuffix(s.SourcePath, ext) + ".matrix.txt"
}

// Save writes the grid as plain text, one line per row with no padding, and
// clears the dirty flag on success. Returns the path written.
func (s *Session) Save() (string, error) {
	path := s.OutputPath()
	if err := os.WriteFile(path, []byte(s.Grid.Text()), 0o644); err != nil {
		return "", fmt.Errorf("failed to save matrix: %w", err)
	}
	s.Grid.Modified = false
	return path, nil
}
