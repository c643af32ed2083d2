package search

import (
	"sort"

	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/page"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
)

// merge concatenates all kinds' candidates, sorts descending by score with
// entity id as tie-break, and applies offset/limit. Candidates are reordered
// and truncated, never mutated, so pagination is stable for a fixed set.
func merge(cands []candidate.Candidate, q query.Query, tookMs int64, partial bool) page.Page {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score() != cands[j].Score() {
			return cands[i].Score() > cands[j].Score()
		}
		return cands[i].ID() < cands[j].ID()
	})

	total := len(cands)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.Limit()
	if end > total {
		end = total
	}

	hasMore := q.Offset()+q.Limit() < total
	return page.New(cands[start:end], total, hasMore, tookMs, partial, q)
}
