package text

import "strings"

// shingleSize is the shingle length used for fuzzy similarity.
const shingleSize = 3

// Similarity returns the multiset Jaccard ratio of overlapping 3-character
// shingles of two normalized strings, in [0,1]. Strings shorter than one
// shingle fall back to substring containment (1.0 if the shorter string is
// contained in the longer, else 0.0) to avoid degenerate shingle sets.
// Symmetric; Similarity(a,a) == 1.0 for non-empty a.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < shingleSize || len(rb) < shingleSize {
		short, long := a, b
		if len(ra) > len(rb) {
			short, long = b, a
		}
		if strings.Contains(long, short) {
			return 1.0
		}
		return 0
	}

	sa, sb := shingles(ra), shingles(rb)

	intersection, union := 0, 0
	for sh, ca := range sa {
		cb := sb[sh]
		intersection += min(ca, cb)
		union += max(ca, cb)
	}
	for sh, cb := range sb {
		if _, ok := sa[sh]; !ok {
			union += cb
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// shingles builds the multiset of overlapping 3-character shingles.
func shingles(rs []rune) map[string]int {
	m := make(map[string]int, len(rs))
	for i := 0; i+shingleSize <= len(rs); i++ {
		m[string(rs[i:i+shingleSize])]++
	}
	return m
}
