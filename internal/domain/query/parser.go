package query

import (
	"strings"
	"unicode"
)

// Parse tokenizes a free-text query into an Expression. It never fails:
// malformed input degrades to literal term matching.
//
// Grammar notes:
//   - whitespace separates tokens; double-quoted substrings are single
//     tokens with the quotes stripped. An unterminated quote swallows the
//     rest of the string as one literal token.
//   - AND / OR / NOT are case-insensitive operators. NOT consumes exactly
//     the next token; a trailing NOT is dropped.
//   - field:value tokens address a single paper attribute. Unrecognized
//     field names are dropped silently to keep the UI forgiving.
//
// The parser keeps one current combinator, starting at AND. Every AND/OR
// token overwrites it, and the final expression joins all accumulated
// conditions under the last-seen combinator. "a AND b OR c" therefore
// resolves to OR(a, b, c). This matches the behavior existing saved
// queries depend on; see DESIGN.md before changing it.
func Parse(q string) Expression {
	tokens := tokenize(q)

	var conds []Condition
	comb := And

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch strings.ToUpper(tok) {
		case "AND":
			comb = And
			continue
		case "OR":
			comb = Or
			continue
		case "NOT":
			if i+1 < len(tokens) {
				i++
				conds = append(conds, NewNot(tokens[i]))
			}
			continue
		}

		if name, value, ok := strings.Cut(tok, ":"); ok && name != "" {
			if field, known := ParseField(name); known {
				conds = append(conds, NewFieldMatch(field, value))
			}
			// unknown field: token contributes nothing
			continue
		}

		conds = append(conds, NewTerm(tok))
	}

	if len(conds) == 0 {
		return MatchAll()
	}
	return NewExpression(conds, comb)
}

// HasStructure reports whether a raw query uses the boolean syntax: an
// operator keyword or a field qualifier. Plain queries are matched as one
// implicit cross-field term instead of being parsed.
func HasStructure(q string) bool {
	if strings.Contains(q, ":") {
		return true
	}
	for _, tok := range strings.Fields(q) {
		switch strings.ToUpper(tok) {
		case "AND", "OR", "NOT":
			return true
		}
	}
	return false
}

// tokenize splits on whitespace, treating double-quoted substrings as
// single tokens.
func tokenize(q string) []string {
	var tokens []string
	i := 0
	for i < len(q) {
		r := rune(q[i])
		switch {
		case unicode.IsSpace(r):
			i++
		case q[i] == '"':
			rest := q[i+1:]
			end := strings.IndexByte(rest, '"')
			if end < 0 {
				// unterminated quote: the remainder is one literal token
				if trimmed := strings.TrimSpace(rest); trimmed != "" {
					tokens = append(tokens, trimmed)
				}
				return tokens
			}
			if end > 0 {
				tokens = append(tokens, rest[:end])
			}
			i += end + 2
		default:
			j := i
			for j < len(q) && !unicode.IsSpace(rune(q[j])) {
				j++
			}
			tokens = append(tokens, q[i:j])
			i = j
		}
	}
	return tokens
}
