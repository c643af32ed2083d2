package page

import (
	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
)

// Page is one ordered window of merged search results. It exists only for
// the request's duration and is discarded after the response.
type Page struct {
	results         []candidate.Candidate
	totalCount      int
	hasMore         bool
	executionTimeMs int64
	partial         bool
	query           query.Query
}

// New creates a result page.
func New(
	results []candidate.Candidate, totalCount int, hasMore bool,
	executionTimeMs int64, partial bool, q query.Query,
) Page {
	return Page{
		results: results, totalCount: totalCount, hasMore: hasMore,
		executionTimeMs: executionTimeMs, partial: partial, query: q,
	}
}

// Results returns the ordered candidate window.
func (p *Page) Results() []candidate.Candidate { return p.results }

// TotalCount returns the size of the full merged result set.
func (p *Page) TotalCount() int { return p.totalCount }

// HasMore reports whether results exist past this window.
func (p *Page) HasMore() bool { return p.hasMore }

// ExecutionTimeMs returns the measured search duration.
func (p *Page) ExecutionTimeMs() int64 { return p.executionTimeMs }

// Partial reports whether any requested kind failed or timed out.
func (p *Page) Partial() bool { return p.partial }

// Query returns the echoed query.
func (p *Page) Query() query.Query { return p.query }
