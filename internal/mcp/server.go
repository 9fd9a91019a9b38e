package mcp

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chonker5/mcp-pdf-matrix/internal/config"
	"github.com/chonker5/mcp-pdf-matrix/internal/descriptions"
	"github.com/chonker5/mcp-pdf-matrix/internal/extract"
	"github.com/chonker5/mcp-pdf-matrix/internal/grid"
	"github.com/chonker5/mcp-pdf-matrix/internal/pdf"
)

// pollInterval is how often a handler checks the coordinator for a finished
// extraction.
const pollInterval = 10 * time.Millisecond

// Server represents the MCP server instance
type Server struct {
	config      *config.Config
	pdfService  *pdf.Service
	coordinator *extract.Coordinator
	mcpServer   *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:      cfg,
		pdfService:  pdfService,
		coordinator: extract.NewCoordinator(pdfService, cfg.ExtractTimeout),
		mcpServer:   mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register page matrix tool
	pdfMatrixPageTool := mcp.NewTool(
		"pdf_matrix_page",
		mcp.WithDescription(descriptions.PDFMatrixPageDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithNumber("page",
			mcp.Required(),
			mcp.Description("Page number to render (1-based)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'matrix' (default) or 'spatial' for the dotted spatial report"),
		),
	)
	s.mcpServer.AddTool(pdfMatrixPageTool, s.handlePDFMatrixPage)

	// Register matrix save tool
	pdfMatrixSaveTool := mcp.NewTool(
		"pdf_matrix_save",
		mcp.WithDescription(descriptions.PDFMatrixSaveDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the source PDF file"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Matrix text to save, one line per row"),
		),
	)
	s.mcpServer.AddTool(pdfMatrixSaveTool, s.handlePDFMatrixSave)

	// Register PDF validate file tool
	pdfValidateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription(descriptions.PDFValidateFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfValidateFileTool, s.handlePDFValidateFile)

	// Register PDF file info tool
	pdfFileInfoTool := mcp.NewTool(
		"pdf_file_info",
		mcp.WithDescription(descriptions.PDFFileInfoDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pdfFileInfoTool, s.handlePDFFileInfo)

	// Register PDF search directory tool
	pdfSearchDirectoryTool := mcp.NewTool(
		"pdf_search_directory",
		mcp.WithDescription(descriptions.PDFSearchDirectoryDescription),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy matching"),
		),
	)
	s.mcpServer.AddTool(pdfSearchDirectoryTool, s.handlePDFSearchDirectory)

	// Register server info tool
	matrixServerInfoTool := mcp.NewTool(
		"matrix_server_info",
		mcp.WithDescription(descriptions.MatrixServerInfoDescription),
	)
	s.mcpServer.AddTool(matrixServerInfoTool, s.handleMatrixServerInfo)
}

// Handler functions

func (s *Server) handlePDFMatrixPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := request.RequireInt("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format := "matrix"
	if f, ok := request.GetArguments()["format"].(string); ok && f != "" {
		format = f
	}
	if format != "matrix" && format != "spatial" {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format: %s", format)), nil
	}

	result, err := s.extractPage(ctx, path, page)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Page %d of %s\n", page, path)
	if result.Pages > 0 {
		responseText = fmt.Sprintf("Page %d/%d of %s\n", page, result.Pages, path)
	}
	responseText += "\n"
	if format == "spatial" {
		responseText += result.Matrix.SpatialReport()
	} else {
		responseText += result.Matrix.RenderString()
	}

	return mcp.NewToolResultText(responseText), nil
}

// extractPage runs one page through the coordinator, blocking until the
// result arrives. Extraction is single-flight: a request while another page
// is in progress is rejected rather than queued.
func (s *Server) extractPage(ctx context.Context, path string, page int) (*pdf.MatrixPageResult, error) {
	if err := s.coordinator.Start(path, page); err != nil {
		return nil, err
	}

	for {
		if res, ok := s.coordinator.Poll(); ok {
			if res.Err != nil {
				return nil, res.Err
			}
			pages, err := s.pdfService.PageCount(path)
			if err != nil {
				pages = 0
			}
			return &pdf.MatrixPageResult{
				Path:   path,
				Page:   page,
				Pages:  pages,
				Matrix: res.Matrix,
			}, nil
		}
		if !s.coordinator.Busy() {
			return nil, fmt.Errorf("extraction produced no result")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (s *Server) handlePDFMatrixSave(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	session := &grid.Session{
		Grid:       grid.NewFromText(content),
		SourcePath: path,
	}

	savedPath, err := session.Save()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Saved matrix to %s", savedPath)), nil
}

func (s *Server) handlePDFValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.ValidateFileRequest{Path: path}
	result, err := s.pdfService.ValidateFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFFileInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.FileInfoRequest{Path: path}
	result, err := s.pdfService.FileInfo(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := "PDF File Information\n"
	responseText += fmt.Sprintf("File: %s\n", result.Path)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Modified: %s\n", result.ModifiedTime)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePDFSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.PDFDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	req := pdf.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	}

	result, err := s.pdfService.SearchDirectory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No PDF files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleMatrixServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	responseText := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	responseText += fmt.Sprintf("Default Directory: %s\n", s.config.PDFDirectory)
	responseText += fmt.Sprintf("Max File Size: %d MB\n", s.config.MaxFileSize/(1024*1024))
	responseText += fmt.Sprintf("Extraction Budget: %s per attempt\n\n", s.config.ExtractTimeout)

	if count, err := s.pdfService.CountPDFsInDirectory(s.config.PDFDirectory); err == nil {
		responseText += fmt.Sprintf("PDF files in default directory: %d\n\n", count)
	}

	responseText += `Available Tools:

• pdf_matrix_page
  Render one page as a monospaced character matrix. Cell sizes are calibrated
  from the page's font sizes, and adjacent text fragments are merged into
  regions. Use format='spatial' for a dotted layout report.
  Parameters: path (required), page (required, 1-based), format (optional)

• pdf_matrix_save
  Save edited matrix text next to the source PDF as <name>.matrix.txt.
  Parameters: path (required), content (required)

• pdf_validate_file
  Check that a file is a structurally valid PDF before rendering it.
  Parameters: path (required)

• pdf_file_info
  Get file size, page count and modification time for a PDF.
  Parameters: path (required)

• pdf_search_directory
  Find PDF files in a directory, optionally filtered by a fuzzy query.
  Parameters: directory (optional), query (optional)

Usage Guide:

1. Use 'pdf_search_directory' to discover available documents.
2. Use 'pdf_file_info' to learn a document's page count.
3. Use 'pdf_matrix_page' page by page; each call renders one page.
4. Edit the matrix text as needed and persist it with 'pdf_matrix_save'.

Notes:
- Always use absolute file paths.
- One extraction runs at a time; concurrent page requests are rejected.
- Pages with no extractable text report an error rather than an empty matrix.`

	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods

func (s *Server) formatSearchDirectoryResult(result *pdf.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PDF matrix MCP server in stdio mode")
		log.Printf("PDF directory: %s", s.config.PDFDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// For now, we'll just use stdio mode since the mark3labs library
	// handles the transport differently
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
