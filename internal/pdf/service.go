package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/chonker5/mcp-pdf-matrix/internal/matrix"
)

// Service handles PDF file operations by orchestrating the extraction,
// validation and discovery components
type Service struct {
	maxFileSize int64
	extractor   *Extractor
	validator   *Validator
	search      *Search
}

// NewService creates a new PDF service with all components
func NewService(maxFileSize int64) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		extractor:   NewExtractor(maxFileSize),
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
	}
}

// MatrixPage builds a character matrix for one page from positioned text
// segments, with per-page font calibration
func (s *Service) MatrixPage(req MatrixPageRequest) (*MatrixPageResult, error) {
	segments, err := s.extractor.PageSegments(req.Path, req.Page)
	if err != nil {
		return nil, err
	}

	m, err := matrix.BuildFromSegments(segments)
	if err != nil {
		return nil, err
	}

	pages, err := s.PageCount(req.Path)
	if err != nil {
		pages = 0
	}

	return &MatrixPageResult{
		Path:   req.Path,
		Page:   req.Page,
		Pages:  pages,
		Matrix: m,
	}, nil
}

// MatrixPageSimple builds a character matrix for one page from plain text
// rows, skipping calibration. Faster but less spatially faithful.
func (s *Service) MatrixPageSimple(req MatrixPageRequest) (*MatrixPageResult, error) {
	lines, err := s.extractor.PageRows(req.Path, req.Page)
	if err != nil {
		return nil, err
	}

	pages, err := s.PageCount(req.Path)
	if err != nil {
		pages = 0
	}

	return &MatrixPageResult{
		Path:   req.Path,
		Page:   req.Page,
		Pages:  pages,
		Matrix: matrix.BuildFromLines(lines),
	}, nil
}

// PageCount returns the number of pages in a PDF file
func (s *Service) PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}

// FileInfo returns basic information about a PDF file
func (s *Service) FileInfo(req FileInfoRequest) (*FileInfoResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := s.validator.ValidateFileInfo(req.Path, fileInfo); err != nil {
		return nil, err
	}

	pages, err := s.PageCount(req.Path)
	if err != nil {
		return nil, err
	}

	return &FileInfoResult{
		Path:         req.Path,
		Name:         filepath.Base(req.Path),
		Size:         fileInfo.Size(),
		Pages:        pages,
		ModifiedTime: fileInfo.ModTime().Format("2006-01-02 15:04:05"),
	}, nil
}

// ValidateFile performs validation on a PDF file
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	return s.validator.ValidateFile(req)
}

// SearchDirectory searches for PDF files in a directory
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	return s.search.SearchDirectory(req)
}

// IsValidPDF performs a quick validation check on a file
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(filePath)
}

// CountPDFsInDirectory counts the number of valid PDF files in a directory
func (s *Service) CountPDFsInDirectory(directory string) (int, error) {
	return s.search.CountPDFsInDirectory(directory)
}

// FindPDFsInDirectory finds all PDF files in a directory without filtering
func (s *Service) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	return s.search.FindPDFsInDirectory(directory)
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}
