package rank

import "sort"

// DefaultKeyTermLimit is the number of key terms extracted when the caller
// does not specify one.
const DefaultKeyTermLimit = 10

// ExtractKeyTerms returns the top limit significant terms of text by
// descending frequency. Ties keep first-occurrence order, so the result is
// deterministic for a given input.
func ExtractKeyTerms(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultKeyTermLimit
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, tok := range Tokenize(text) {
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = len(order)
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
