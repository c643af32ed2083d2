package retrieve

import (
	"github.com/kailas-cloud/unisearch/internal/domain/entity"
	"github.com/kailas-cloud/unisearch/internal/domain/match"
	"github.com/kailas-cloud/unisearch/internal/domain/search/candidate"
	"github.com/kailas-cloud/unisearch/internal/domain/search/query"
)

// textualSignals evaluates textual candidacy of one entity: the exact path
// always runs first, the fuzzy path only when enabled, OR-combined so fuzzy
// widens candidacy but never narrows it. An empty query text grants vacuous
// candidacy (browse mode; validation upstream guarantees a location scope).
func textualSignals(q query.Query, ent entity.Entity, th match.Thresholds) (candidate.Signals, bool) {
	var sig candidate.Signals
	if q.NormalizedText() == "" {
		return sig, true
	}

	ex, exOK := match.Exact(q.Tokens(), ent.Corpus())
	if exOK {
		sig.HasExact = true
		sig.ExactRank = ex.Rank
		sig.MatchedField = ex.Field
	}

	if q.FuzzyEnabled() {
		fz, fzOK := match.Fuzzy(q.NormalizedText(), ent.Corpus(), th, ex.Fields)
		if fzOK {
			sig.HasFuzzy = true
			sig.FuzzySimilarity = fz.Similarity
			if !exOK {
				sig.MatchedField = fz.Field
			}
		}
	}

	return sig, sig.HasExact || sig.HasFuzzy
}
