package exscan

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// ConsensusRow returns the single row on which every keyword appears.
//
// It returns NoAnchor without error when keywords is empty or any keyword has no match.
// A lone keyword spread over several rows fails with *DisambiguationError; keywords with
// no common row fail with *NoConsensusError; keywords sharing several rows fail with
// *AmbiguousConsensusError.
func (s *Scanner) ConsensusRow(keywords []string, exact bool, bound Bound) (int, error) {
	return s.consensus(AxisRow, keywords, exact, bound)
}

// ConsensusCol is ConsensusRow for columns.
func (s *Scanner) ConsensusCol(keywords []string, exact bool, bound Bound) (int, error) {
	return s.consensus(AxisCol, keywords, exact, bound)
}

func (s *Scanner) consensus(axis Axis, keywords []string, exact bool, bound Bound) (int, error) {
	keywords = uniqueKeywords(keywords)
	if len(keywords) == 0 {
		return NoAnchor, nil
	}

	sets := make([]KeywordSet, 0, len(keywords))
	for _, kw := range keywords {
		matches, err := s.LocateKeyword(kw, exact, bound)
		if err != nil {
			return NoAnchor, err
		}
		if len(matches) == 0 {
			s.log().WithFields(logrus.Fields{"axis": axis, "keyword": kw}).Debug("keyword not found, no anchor")
			return NoAnchor, nil
		}
		sets = append(sets, KeywordSet{Keyword: kw, Indexes: axisIndexes(axis, matches)})
	}

	if len(sets) == 1 {
		if len(sets[0].Indexes) > 1 {
			return NoAnchor, &DisambiguationError{Axis: axis, Keyword: sets[0].Keyword, Candidates: sets[0].Indexes}
		}
		return sets[0].Indexes[0], nil
	}

	shared := intersect(sets)
	switch len(shared) {
	case 0:
		return NoAnchor, &NoConsensusError{Axis: axis, Sets: sets}
	case 1:
		return shared[0], nil
	default:
		return NoAnchor, &AmbiguousConsensusError{Axis: axis, Keywords: keywords, Shared: shared}
	}
}

// uniqueKeywords drops keywords whose normalized form was already seen, keeping order.
func uniqueKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		norm := NormalizeText(kw)
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// axisIndexes returns the distinct rows (or columns) of matches, ascending.
func axisIndexes(axis Axis, matches []Coordinate) []int {
	set := make(map[int]struct{}, len(matches))
	for _, m := range matches {
		if axis == AxisRow {
			set[m.Row] = struct{}{}
		} else {
			set[m.Col] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// intersect returns the indexes present in every set, ascending.
func intersect(sets []KeywordSet) []int {
	counts := make(map[int]int)
	for _, s := range sets {
		for _, idx := range s.Indexes {
			counts[idx]++
		}
	}
	shared := make(map[int]struct{})
	for idx, n := range counts {
		if n == len(sets) {
			shared[idx] = struct{}{}
		}
	}
	return sortedKeys(shared)
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
