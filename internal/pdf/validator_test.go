package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidator_ValidateFile(t *testing.T) {
	validator := NewValidator(1024 * 1024) // 1MB limit

	tempDir, err := os.MkdirTemp("", "pdf_validator_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Structurally broken file with the right extension
	brokenPath := filepath.Join(tempDir, "broken.pdf")
	if err := os.WriteFile(brokenPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to create broken PDF: %v", err)
	}

	tests := []struct {
		name        string
		req         ValidateFileRequest
		expectValid bool
	}{
		{
			name:        "empty path",
			req:         ValidateFileRequest{Path: ""},
			expectValid: false,
		},
		{
			name:        "non-existent file",
			req:         ValidateFileRequest{Path: "/non/existent/file.pdf"},
			expectValid: false,
		},
		{
			name:        "malformed document",
			req:         ValidateFileRequest{Path: brokenPath},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ValidateFile(tt.req)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result == nil {
				t.Fatalf("result should not be nil")
			}

			if result.Valid != tt.expectValid {
				t.Errorf("expected Valid=%v but got %v", tt.expectValid, result.Valid)
			}

			if result.Path != tt.req.Path {
				t.Errorf("expected Path=%s but got %s", tt.req.Path, result.Path)
			}

			if !tt.expectValid && result.Message == "" {
				t.Errorf("expected validation message for invalid file")
			}
		})
	}
}

func TestValidator_ValidateFileInfo(t *testing.T) {
	validator := NewValidator(1024 * 1024) // 1MB limit

	tempDir, err := os.MkdirTemp("", "pdf_validator_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	validPDFPath := filepath.Join(tempDir, "valid.pdf")
	largePDFPath := filepath.Join(tempDir, "large.pdf")
	emptyPDFPath := filepath.Join(tempDir, "empty.pdf")
	nonPDFPath := filepath.Join(tempDir, "document.txt")

	if err := os.WriteFile(validPDFPath, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create valid PDF: %v", err)
	}
	if err := os.WriteFile(largePDFPath, make([]byte, 2*1024*1024), 0o644); err != nil {
		t.Fatalf("failed to create large PDF: %v", err)
	}
	if err := os.WriteFile(emptyPDFPath, []byte{}, 0o644); err != nil {
		t.Fatalf("failed to create empty PDF: %v", err)
	}
	if err := os.WriteFile(nonPDFPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to create non-PDF: %v", err)
	}

	tests := []struct {
		name        string
		filePath    string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid PDF file",
			filePath:    validPDFPath,
			expectError: false,
		},
		{
			name:        "large PDF file",
			filePath:    largePDFPath,
			expectError: true,
			errorMsg:    "file too large",
		},
		{
			name:        "empty PDF file",
			filePath:    emptyPDFPath,
			expectError: true,
			errorMsg:    "file is empty",
		},
		{
			name:        "non-PDF file",
			filePath:    nonPDFPath,
			expectError: true,
			errorMsg:    "file is not a PDF",
		},
		{
			name:        "directory",
			filePath:    tempDir,
			expectError: true,
			errorMsg:    "path is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Stat(tt.filePath)
			if err != nil {
				t.Fatalf("failed to stat test file: %v", err)
			}

			err = validator.ValidateFileInfo(tt.filePath, info)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q but got %q", tt.errorMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidator_IsValidPDF(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	if validator.IsValidPDF("/non/existent/file.pdf") {
		t.Errorf("expected non-existent file to be invalid")
	}
	if validator.IsValidPDF("") {
		t.Errorf("expected empty path to be invalid")
	}
}
