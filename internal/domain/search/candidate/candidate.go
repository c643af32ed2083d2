package candidate

import "github.com/kailas-cloud/unisearch/internal/domain/entity"

// Signals are the raw per-candidate ranking inputs. A missing signal
// contributes zero to the relevance score.
type Signals struct {
	ExactRank       float64
	HasExact        bool
	FuzzySimilarity float64
	HasFuzzy        bool
	MatchedField    string
	DistanceKm      *float64
	Rating          float64
}

// Candidate is a scored, filtered entity produced by one retriever for one
// query. Immutable once produced: the merger reorders and truncates but
// never mutates signals or score.
type Candidate struct {
	ent     entity.Entity
	signals Signals
	score   float64
}

// New creates a candidate.
func New(ent entity.Entity, signals Signals, score float64) Candidate {
	return Candidate{ent: ent, signals: signals, score: score}
}

// Entity returns the underlying catalog snapshot.
func (c *Candidate) Entity() entity.Entity { return c.ent }

// ID returns the entity identifier.
func (c *Candidate) ID() string { return c.ent.ID() }

// Kind returns the entity kind.
func (c *Candidate) Kind() entity.Kind { return c.ent.Kind() }

// Signals returns the raw ranking signals.
func (c *Candidate) Signals() Signals { return c.signals }

// Score returns the final relevance score.
func (c *Candidate) Score() float64 { return c.score }
