package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	PDFMatrixPageDescription = `Render one page of a PDF as a monospaced character matrix that preserves spatial layout.

**When to use:** Need to see where text sits on the page, not just what it says. Tables, forms, multi-column layouts, and anything where position carries meaning.

**Why it's useful:** Cell sizes are calibrated from the page's own font sizes, so columns line up and vertical whitespace survives. Adjacent text fragments are merged into regions you can reason about.

**Examples:**
• Read a table: "Render page 3 of statement.pdf so the amount column stays aligned"
• Inspect a form layout: "Show page 1 of w9.pdf as a matrix to find the field positions"
• Layout-aware diffing: "Render both versions of the invoice and compare the grids"

**Parameters:**
• path (required): absolute path to the PDF
• page (required): 1-based page number
• format (optional): 'matrix' (default) or 'spatial' for a dotted layout report

**Best practices:** Render one page at a time; pages with no extractable text return an error rather than an empty grid. Only one extraction runs at a time.`

	PDFMatrixSaveDescription = `Save edited matrix text next to its source PDF as <name>.matrix.txt.

**When to use:** After editing the text returned by pdf_matrix_page, to persist the result as a plain-text artifact.

**Why it's useful:** The saved file keeps the page's spatial layout, so downstream tools and humans can read it without the PDF.

**Examples:**
• Persist corrections: "Save the cleaned-up matrix for report.pdf"
• Export a layout: "Write the rendered page of table.pdf to disk for grep"

**Parameters:**
• path (required): absolute path to the source PDF; the artifact lands beside it
• content (required): matrix text, one line per row

**Best practices:** Pass only the grid rows, without the header, rule, or region lines from the rendered report. Rows are saved verbatim, leading spaces included; the row-number gutter that tall renderings prefix to every line is detected and removed automatically.`

	PDFValidateFileDescription = `Verify PDF file integrity and readability before rendering it.

**When to use:** Before attempting to render pages from an unknown or user-supplied PDF.

**Why it's useful:** Catches corrupted or truncated files early, with a message explaining what failed, instead of a mid-extraction error.

**Examples:**
• Upload verification: "Check user-uploaded contract.pdf is valid before rendering"
• Batch safety: "Validate all PDFs in /invoices/ before processing"

**Parameters:**
• path (required): absolute path to the PDF

**Best practices:** Run this first in automated workflows; validation is relaxed, so minor structural quirks pass.`

	PDFFileInfoDescription = `Get basic information about a PDF file including its page count.

**When to use:** Before rendering, to learn how many pages a document has and how large it is.

**Why it's useful:** pdf_matrix_page renders one page per call, so the page count tells you how many calls a full document needs.

**Examples:**
• Plan a walk-through: "How many pages does manual.pdf have?"
• Sanity check: "Confirm export.pdf is non-empty and recently modified"

**Parameters:**
• path (required): absolute path to the PDF`

	PDFSearchDirectoryDescription = `Search for PDF files in a directory with optional fuzzy matching.

**When to use:** To discover which documents are available before rendering any of them.

**Why it's useful:** Recurses through subdirectories, skips hidden ones, and filters out files that are not usable PDFs.

**Examples:**
• Discovery: "List every PDF under /home/user/docs"
• Targeted lookup: "Find the 2024 annual report somewhere in /archive"

**Parameters:**
• directory (optional): directory to search; defaults to the configured PDF directory
• query (optional): fuzzy filename filter; all query words must appear

**Best practices:** Start here, then use pdf_file_info on the matches you care about.`

	MatrixServerInfoDescription = `Get server information, available tools, and usage guidance.

**When to use:** At the start of a session, to learn the configured directory, limits, and the recommended tool workflow.`
)
