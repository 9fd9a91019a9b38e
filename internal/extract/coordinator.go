// Package extract coordinates background page extraction. One extraction
// runs at a time; the caller polls for the result instead of blocking, so an
// interactive frontend stays responsive while a slow document is parsed.
package extract

import (
	"fmt"
	"sync"
	"time"

	"github.com/chonker5/mcp-pdf-matrix/internal/matrix"
	"github.com/chonker5/mcp-pdf-matrix/internal/pdf"
)

// DefaultBudget is the time allowed for each extraction attempt.
const DefaultBudget = 60 * time.Second

// ErrBusy is returned by Start while a previous extraction is still running.
var ErrBusy = fmt.Errorf("extraction already in progress")

// Result is the outcome of one page extraction, tagged with the document and
// page it belongs to so outdated results can be recognized.
type Result struct {
	Path   string
	Page   int
	Matrix *matrix.CharacterMatrix
	Err    error
}

// PageExtractor is the subset of the PDF service the coordinator drives.
type PageExtractor interface {
	MatrixPageSimple(req pdf.MatrixPageRequest) (*pdf.MatrixPageResult, error)
	MatrixPage(req pdf.MatrixPageRequest) (*pdf.MatrixPageResult, error)
}

// Coordinator runs page extractions in the background, one at a time. It is
// safe for concurrent use: tool handlers dispatched on separate goroutines
// share one instance, and the single-flight guarantee holds across them.
type Coordinator struct {
	extractor PageExtractor
	budget    time.Duration
	results   chan Result

	mu         sync.Mutex
	inFlight   bool
	activePath string
	activePage int
}

// NewCoordinator creates a coordinator around the given extractor. A
// non-positive budget selects DefaultBudget.
func NewCoordinator(extractor PageExtractor, budget time.Duration) *Coordinator {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Coordinator{
		extractor: extractor,
		budget:    budget,
		results:   make(chan Result, 1),
	}
}

// Start begins extracting one page in the background. It fails with ErrBusy
// while a previous extraction has not been collected via Poll.
func (c *Coordinator) Start(path string, page int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return ErrBusy
	}

	c.inFlight = true
	c.activePath = path
	c.activePage = page

	go c.run(path, page)
	return nil
}

// Busy reports whether an extraction is still pending collection.
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// SetActivePage records the page the caller is currently interested in. A
// pending result for a different page is dropped at Poll time.
func (c *Coordinator) SetActivePage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activePage = page
}

// Poll collects a finished extraction without blocking. The second return is
// false while nothing has finished. Results for a document or page the caller
// has navigated away from are discarded, and the coordinator becomes ready
// for a new Start either way.
func (c *Coordinator) Poll() (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case res := <-c.results:
		c.inFlight = false
		if res.Path != c.activePath || res.Page != c.activePage {
			return nil, false
		}
		return &res, true
	default:
		return nil, false
	}
}

// run performs the two-stage extraction: the fast row-based path first, then
// the precise calibrated path when the fast one fails. Each stage gets a full
// time budget.
func (c *Coordinator) run(path string, page int) {
	req := pdf.MatrixPageRequest{Path: path, Page: page}

	m, err := c.attempt(func() (*pdf.MatrixPageResult, error) {
		return c.extractor.MatrixPageSimple(req)
	})
	if err != nil {
		m, err = c.attempt(func() (*pdf.MatrixPageResult, error) {
			return c.extractor.MatrixPage(req)
		})
	}

	res := Result{Path: path, Page: page, Err: err}
	if err == nil {
		res.Matrix = m.Matrix
	}
	c.results <- res
}

// attempt runs one extraction stage against the time budget. The extractor
// has no cancellation, so a worker that overruns is abandoned; its late
// result is drained by the receiving goroutine and dropped.
func (c *Coordinator) attempt(fn func() (*pdf.MatrixPageResult, error)) (*pdf.MatrixPageResult, error) {
	type outcome struct {
		result *pdf.MatrixPageResult
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := fn()
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-time.After(c.budget):
		return nil, fmt.Errorf("extraction timed out after %s", c.budget)
	}
}
