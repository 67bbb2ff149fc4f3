package rank

import (
	"math"
	"sort"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

// ScoredPaper pairs a paper with its relevance score. Scores are only
// comparable within a single scoring pass: the TF-IDF corpus is the
// candidate set of that pass, which varies per query.
type ScoredPaper struct {
	Paper domain.Paper
	Score float64
}

// Score ranks candidates against queryText with TF-IDF, stable-sorted by
// descending score (ties keep candidate order).
//
// The document-frequency corpus is candidates plus the query treated as a
// pseudo-document, not the whole repository. Ranking quality is relative
// to the already-filtered result set; that keeps the model cheap enough to
// rebuild on every request for corpora of a few thousand papers.
func Score(queryText string, candidates []domain.Paper) []ScoredPaper {
	queryCounts, queryTotal := termCounts(Tokenize(queryText))

	docCounts := make([]map[string]int, len(candidates))
	docTotals := make([]int, len(candidates))
	for i := range candidates {
		docCounts[i], docTotals[i] = termCounts(Tokenize(candidates[i].Text()))
	}

	// df over candidates + query pseudo-document
	df := make(map[string]int)
	for term := range queryCounts {
		df[term]++
	}
	for i := range docCounts {
		for term := range docCounts[i] {
			df[term]++
		}
	}
	corpusSize := len(candidates) + 1

	idf := func(term string) float64 {
		return math.Log(1 + float64(corpusSize)/float64(df[term]))
	}

	queryWeight := make(map[string]float64, len(queryCounts))
	for term, n := range queryCounts {
		queryWeight[term] = tf(n, queryTotal) * idf(term)
	}

	scored := make([]ScoredPaper, len(candidates))
	for i := range candidates {
		var score float64
		for term, qw := range queryWeight {
			n, ok := docCounts[i][term]
			if !ok {
				continue // absent terms contribute zero
			}
			score += qw * tf(n, docTotals[i]) * idf(term)
		}
		scored[i] = ScoredPaper{Paper: candidates[i], Score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func termCounts(tokens []string) (map[string]int, int) {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts, len(tokens)
}

func tf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
