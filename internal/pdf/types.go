package pdf

import "github.com/chonker5/mcp-pdf-matrix/internal/matrix"

// FileInfo represents information about a PDF file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// MatrixPageRequest represents a request to extract one page as a character matrix
type MatrixPageRequest struct {
	Path string `json:"path"`
	Page int    `json:"page"`
}

// ValidateFileRequest represents a request to validate a PDF file
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// FileInfoRequest represents a request for basic information about a PDF file
type FileInfoRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest represents a request to search for PDF files in a directory
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// MatrixPageResult represents the result of a page matrix extraction
type MatrixPageResult struct {
	Path   string                  `json:"path"`
	Page   int                     `json:"page"`
	Pages  int                     `json:"pages"`
	Matrix *matrix.CharacterMatrix `json:"matrix"`
}

// ValidateFileResult represents the result of a PDF validation operation
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// FileInfoResult represents basic information about a PDF file
type FileInfoResult struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Pages        int    `json:"pages"`
	ModifiedTime string `json:"modified_time"`
}

// SearchDirectoryResult represents the result of a PDF search operation
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
