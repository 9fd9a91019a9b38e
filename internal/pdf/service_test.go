package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewService(t *testing.T) {
	maxFileSize := int64(1024 * 1024) // 1MB
	service := NewService(maxFileSize)

	if service == nil {
		t.Fatal("NewService returned nil")
	}

	if service.maxFileSize != maxFileSize {
		t.Errorf("Expected maxFileSize to be %d, got %d", maxFileSize, service.maxFileSize)
	}

	// Verify all components are initialized
	if service.extractor == nil {
		t.Error("extractor component should not be nil")
	}
	if service.validator == nil {
		t.Error("validator component should not be nil")
	}
	if service.search == nil {
		t.Error("search component should not be nil")
	}
}

func TestService_GetMaxFileSize(t *testing.T) {
	maxFileSize := int64(2 * 1024 * 1024) // 2MB
	service := NewService(maxFileSize)

	if service.GetMaxFileSize() != maxFileSize {
		t.Errorf("Expected %d, got %d", maxFileSize, service.GetMaxFileSize())
	}
}

func TestService_MatrixPage_Errors(t *testing.T) {
	service := NewService(1024 * 1024)

	tests := []struct {
		name string
		req  MatrixPageRequest
	}{
		{
			name: "empty path",
			req:  MatrixPageRequest{Path: "", Page: 1},
		},
		{
			name: "non-existent file",
			req:  MatrixPageRequest{Path: "/non/existent/file.pdf", Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.MatrixPage(tt.req); err == nil {
				t.Errorf("expected error but got none")
			}
			if _, err := service.MatrixPageSimple(tt.req); err == nil {
				t.Errorf("expected error from simple path but got none")
			}
		})
	}
}

func TestService_FileInfo_Errors(t *testing.T) {
	service := NewService(1024 * 1024)

	tempDir, err := os.MkdirTemp("", "pdf_service_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	notPDFPath := filepath.Join(tempDir, "notes.txt")
	if err := os.WriteFile(notPDFPath, []byte("text"), 0o644); err != nil {
		t.Fatalf("failed to create text file: %v", err)
	}

	tests := []struct {
		name string
		req  FileInfoRequest
	}{
		{
			name: "empty path",
			req:  FileInfoRequest{Path: ""},
		},
		{
			name: "non-existent file",
			req:  FileInfoRequest{Path: "/non/existent/file.pdf"},
		},
		{
			name: "wrong extension",
			req:  FileInfoRequest{Path: notPDFPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.FileInfo(tt.req); err == nil {
				t.Errorf("expected error but got none")
			}
		})
	}
}

func TestService_ValidateFile(t *testing.T) {
	service := NewService(1024 * 1024)

	result, err := service.ValidateFile(ValidateFileRequest{Path: "/non/existent/file.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Errorf("expected invalid result for missing file")
	}
	if result.Message == "" {
		t.Errorf("expected validation message")
	}
}

func TestService_SearchDirectory(t *testing.T) {
	service := NewService(1024 * 1024)
	tempDir := setupSearchDir(t)

	result, err := service.SearchDirectory(SearchDirectoryRequest{Directory: tempDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalCount != 3 {
		t.Errorf("expected 3 PDFs but got %d", result.TotalCount)
	}
}

func TestService_IsValidPDF(t *testing.T) {
	service := NewService(1024 * 1024)

	if service.IsValidPDF("/non/existent/file.pdf") {
		t.Errorf("expected non-existent file to be invalid")
	}
}
