package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/event"
	"github.com/kailas-cloud/unisearch/internal/domain/search/page"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
	"github.com/kailas-cloud/unisearch/internal/metrics"
)

// DefaultTimeout bounds worst-case search latency.
const DefaultTimeout = 2 * time.Second

// emitTimeout bounds the fire-and-forget analytics publish.
const emitTimeout = 5 * time.Second

// Service is the search orchestrator: it fans out to the requested per-kind
// retrievers, joins them under one overall timeout, merges, and emits a
// search event. Stateless between requests.
type Service struct {
	retrievers map[entity.Kind]Retriever
	emitter    EventEmitter
	timeout    time.Duration
	logger     *zap.Logger
}

// New creates a search service. A non-positive timeout falls back to DefaultTimeout.
func New(retrievers map[entity.Kind]Retriever, emitter EventEmitter, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{retrievers: retrievers, emitter: emitter, timeout: timeout, logger: logger}
}

type kindResult struct {
	kind  entity.Kind
	cands []candidate.Candidate
	err   error
}

// Search executes a validated query: one goroutine per requested kind, all
// joined before merging. A kind that fails or misses the deadline
// contributes zero candidates and marks the response partial; no retries.
func (s *Service) Search(ctx context.Context, q query.Query, userID string) (page.Page, error) {
	start := time.Now()

	kinds := q.Kinds()
	// Buffered so late retrievers can finish after a timeout without leaking.
	results := make(chan kindResult, len(kinds))
	for _, k := range kinds {
		r, ok := s.retrievers[k]
		if !ok {
			results <- kindResult{kind: k, err: nil}
			continue
		}
		go func(k entity.Kind, r Retriever) {
			cands, err := r.Retrieve(ctx, q)
			results <- kindResult{kind: k, cands: cands, err: err}
		}(k, r)
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	var all []candidate.Candidate
	partial := false
	pending := len(kinds)

join:
	for pending > 0 {
		select {
		case res := <-results:
			pending--
			if res.err != nil {
				partial = true
				s.logger.Warn("kind retrieval failed",
					zap.String("kind", string(res.kind)),
					zap.Error(res.err),
				)
				metrics.SearchKindFailuresTotal.WithLabelValues(string(res.kind)).Inc()
				continue
			}
			all = append(all, res.cands...)
		case <-timer.C:
			partial = true
			s.logger.Warn("search deadline exceeded",
				zap.Duration("timeout", s.timeout),
				zap.Int("kinds_pending", pending),
			)
			break join
		}
	}

	tookMs := time.Since(start).Milliseconds()
	pg := merge(all, q, tookMs, partial)

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResultCount.Observe(float64(pg.TotalCount()))
	if partial {
		metrics.SearchPartialTotal.Inc()
	}

	s.emitAsync(event.New(q, userID, pg.TotalCount(), partial, tookMs))

	return pg, nil
}

// emitAsync publishes the search event without holding the response path
// open. Failures and panics are logged and swallowed.
func (s *Service) emitAsync(ev event.Event) {
	if s.emitter == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Warn("analytics emit panicked", zap.Any("panic", r))
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()
		if err := s.emitter.Emit(ctx, ev); err != nil {
			s.logger.Warn("analytics emit failed", zap.String("event_id", ev.ID), zap.Error(err))
		}
	}()
}
