// Package rank holds the request-local relevance machinery: word
// tokenization, key-term extraction and TF-IDF scoring over a candidate
// set. Nothing in this package touches storage; every structure is built
// fresh per call and discarded, so concurrent use needs no locking.
package rank

import (
	"regexp"
	"strings"
)

var wordRE = regexp.MustCompile(`[a-z0-9]+`)

// stopwords is a compact English stop-word list; extend as needed.
var stopwords = map[string]bool{
	"the": true, "is": true, "and": true, "a": true, "an": true, "of": true,
	"to": true, "in": true, "for": true, "on": true, "with": true, "by": true,
	"that": true, "this": true, "it": true, "as": true, "are": true,
	"was": true, "at": true, "from": true, "be": true, "has": true,
	"have": true, "or": true, "not": true, "its": true, "their": true,
	"which": true, "were": true, "among": true, "between": true,
}

// Tokenize returns lowercase word tokens from text, filtering stop words.
func Tokenize(text string) []string {
	matches := wordRE.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if stopwords[m] {
			continue
		}
		tokens = append(tokens, m)
	}
	return tokens
}
