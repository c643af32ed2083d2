// Package catalog reads entity snapshots from the external catalog service's
// Redis mirror. Snapshots are read-only; the catalog service owns writes,
// retries, and compaction.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/unisearch/internal/domain"
	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/text"
	"github.com/kailas-cloud/unisearch/internal/usecase/retrieve"
)

// Compile-time check: Repo implements retrieve.Catalog.
var _ retrieve.Catalog = (*Repo)(nil)

// Config holds connection parameters for the snapshot store.
type Config struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Repo fetches catalog snapshots via rueidis.
//
// Key layout:
//
//	<prefix><kind>:ids            set of entity ids per kind
//	<prefix><kind>:<id>           JSON snapshot
//	<prefix>vendor:<id>:items     set of item ids per vendor
type Repo struct {
	client rueidis.Client
	prefix string
	norm   *text.Normalizer
}

// New creates a catalog snapshot repository. Corpus text is normalized with
// the given normalizer at parse time, so matching is always
// normalized-vs-normalized.
func New(cfg Config, norm *text.Normalizer) (*Repo, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Repo{client: client, prefix: cfg.KeyPrefix, norm: norm}, nil
}

// FetchCandidates returns every snapshot of the kind, narrowed by hints
// where the key layout allows.
func (r *Repo) FetchCandidates(ctx context.Context, kind entity.Kind, hints retrieve.Hints) ([]entity.Entity, error) {
	ids, err := r.candidateIDs(ctx, kind, hints)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.snapshotKey(kind, id)
	}

	msgs, err := r.client.Do(ctx, r.client.B().Mget().Key(keys...).Build()).ToArray()
	if err != nil {
		return nil, fmt.Errorf("%w: mget %s snapshots: %w", domain.ErrCatalogUnavailable, kind, err)
	}

	out := make([]entity.Entity, 0, len(msgs))
	for _, msg := range msgs {
		raw, err := msg.ToString()
		if err != nil {
			// Id-set entry without a snapshot: a deletion raced the read.
			continue
		}
		ent, err := parseSnapshot(kind, []byte(raw), r.norm)
		if err != nil {
			continue
		}
		out = append(out, ent)
	}
	return out, nil
}

// candidateIDs resolves the id set to fetch. Item fetches restricted to
// vendors use the per-vendor item indexes.
func (r *Repo) candidateIDs(ctx context.Context, kind entity.Kind, hints retrieve.Hints) ([]string, error) {
	if kind == entity.Item && len(hints.VendorIDs) > 0 {
		var ids []string
		for _, vid := range hints.VendorIDs {
			key := fmt.Sprintf("%svendor:%s:items", r.prefix, vid)
			members, err := r.client.Do(ctx, r.client.B().Smembers().Key(key).Build()).AsStrSlice()
			if err != nil {
				return nil, fmt.Errorf("%w: smembers %s: %w", domain.ErrCatalogUnavailable, key, err)
			}
			ids = append(ids, members...)
		}
		return ids, nil
	}

	key := fmt.Sprintf("%s%s:ids", r.prefix, kind)
	ids, err := r.client.Do(ctx, r.client.B().Smembers().Key(key).Build()).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("%w: smembers %s: %w", domain.ErrCatalogUnavailable, key, err)
	}
	return ids, nil
}

func (r *Repo) snapshotKey(kind entity.Kind, id string) string {
	return fmt.Sprintf("%s%s:%s", r.prefix, kind, id)
}

// Ping checks connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.client.Do(ctx, r.client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (r *Repo) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for catalog store: %w", ctx.Err())
		case <-ticker.C:
			if err := r.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close shuts down the client.
func (r *Repo) Close() {
	r.client.Close()
}
