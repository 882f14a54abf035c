// Package fuzzy ranks declared option names against a mistyped one so the
// parser can attach a "did you mean" hint to unrecognized-argument errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by bounded Levenshtein distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single letters match everything
	}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Best returns the highest ranked candidate, or "" when none is close enough.
func (m *Matcher) Best(input string, candidates []string) string {
	matches := m.Rank(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Rank returns every candidate within the distance bound, best first.
// Exact (case-insensitive) matches are skipped: they are not typos.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	in := strings.ToLower(input)

	var matches []Match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == in {
			continue
		}
		d := m.distance(in, lc)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Score: m.score(in, lc, d)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

// score blends edit distance with prefix and length similarity.
func (m *Matcher) score(a, b string, d int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	s := 1 - float64(d)/float64(longest)

	if p := prefixLen(a, b); p > 0 {
		s += float64(p) / float64(min(len(a), len(b))) * 0.3
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	s += (1 - float64(diff)/float64(longest)) * 0.2

	return min(s, 1)
}

// distance is a two-row Levenshtein that gives up once every cell in a row
// exceeds the bound, returning maxDistance+1.
func (m *Matcher) distance(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}
	if diff := len(a) - len(b); diff > m.maxDistance || -diff > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func prefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Suggest is the one-shot form of NewMatcher(maxDistance).Best.
func Suggest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, candidates)
}
