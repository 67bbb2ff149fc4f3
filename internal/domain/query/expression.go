package query

import (
	"strconv"
	"strings"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

// Combinator joins the conditions of an expression.
type Combinator string

// Supported combinators. A single combinator applies to the whole
// condition list.
const (
	And Combinator = "AND"
	Or  Combinator = "OR"
)

// Field names a paper attribute addressable via field:value tokens.
type Field string

// Recognized query fields.
const (
	FieldTitle    Field = "title"
	FieldAuthor   Field = "author"
	FieldKeyword  Field = "keyword"
	FieldYear     Field = "year"
	FieldCategory Field = "category"
	FieldSubject  Field = "subject"
)

// ParseField resolves a field name (case-insensitive). Unrecognized names
// return ok=false; callers drop the token silently.
func ParseField(name string) (Field, bool) {
	switch Field(strings.ToLower(name)) {
	case FieldTitle, FieldAuthor, FieldKeyword, FieldYear, FieldCategory, FieldSubject:
		return Field(strings.ToLower(name)), true
	default:
		return "", false
	}
}

type condKind int

const (
	kindTerm condKind = iota
	kindField
	kindNot
)

// Condition is a single query clause: a cross-field term, a field match,
// or a negated term.
type Condition struct {
	kind      condKind
	text      string
	field     Field
	year      int
	yearValid bool
}

// NewTerm creates a cross-field substring condition matching title,
// abstract, authors and keywords.
func NewTerm(text string) Condition {
	return Condition{kind: kindTerm, text: text}
}

// NewFieldMatch creates a single-field condition. For the year field the
// value is parsed as an integer; a malformed value yields a condition that
// matches no paper.
func NewFieldMatch(field Field, value string) Condition {
	c := Condition{kind: kindField, field: field, text: value}
	if field == FieldYear {
		y, err := strconv.Atoi(strings.TrimSpace(value))
		c.year = y
		c.yearValid = err == nil
	}
	return c
}

// NewNot creates a negated term excluding papers whose title, abstract or
// keywords contain the term.
func NewNot(text string) Condition {
	return Condition{kind: kindNot, text: text}
}

// IsTerm reports whether this is a cross-field term condition.
func (c Condition) IsTerm() bool { return c.kind == kindTerm }

// IsFieldMatch reports whether this is a field-qualified condition.
func (c Condition) IsFieldMatch() bool { return c.kind == kindField }

// IsNot reports whether this is a negated term condition.
func (c Condition) IsNot() bool { return c.kind == kindNot }

// Field returns the target field for field-qualified conditions.
func (c Condition) Field() Field { return c.field }

// Text returns the term text or field value.
func (c Condition) Text() string { return c.text }

// Matches evaluates the condition against a paper.
func (c Condition) Matches(p *domain.Paper) bool {
	switch c.kind {
	case kindTerm:
		return containsFold(p.Title, c.text) ||
			containsFold(p.Abstract, c.text) ||
			anyContainsFold(p.Authors, c.text) ||
			anyContainsFold(p.Keywords, c.text)
	case kindNot:
		return !containsFold(p.Title, c.text) &&
			!containsFold(p.Abstract, c.text) &&
			!anyContainsFold(p.Keywords, c.text)
	case kindField:
		return c.matchesField(p)
	}
	return false
}

func (c Condition) matchesField(p *domain.Paper) bool {
	switch c.field {
	case FieldTitle:
		return containsFold(p.Title, c.text)
	case FieldAuthor:
		return anyContainsFold(p.Authors, c.text)
	case FieldKeyword:
		return anyContainsFold(p.Keywords, c.text)
	case FieldSubject:
		return containsFold(p.SubjectArea, c.text)
	case FieldCategory:
		return strings.EqualFold(p.Category, c.text)
	case FieldYear:
		return c.yearValid && p.YearCompleted == c.year
	}
	return false
}

// Expression is a flat list of conditions joined by a single combinator.
// The zero value matches every paper.
type Expression struct {
	conditions []Condition
	combinator Combinator
}

// NewExpression creates an expression joining conds under comb.
func NewExpression(conds []Condition, comb Combinator) Expression {
	if comb != Or {
		comb = And
	}
	return Expression{conditions: conds, combinator: comb}
}

// MatchAll returns the universal expression (no filtering).
func MatchAll() Expression { return Expression{} }

// Conditions returns the condition list.
func (e Expression) Conditions() []Condition { return e.conditions }

// Combinator returns the active combinator.
func (e Expression) Combinator() Combinator {
	if e.combinator == "" {
		return And
	}
	return e.combinator
}

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Matches evaluates the expression against a paper. An empty expression
// matches everything.
func (e Expression) Matches(p *domain.Paper) bool {
	if len(e.conditions) == 0 {
		return true
	}
	if e.Combinator() == Or {
		for _, c := range e.conditions {
			if c.Matches(p) {
				return true
			}
		}
		return false
	}
	for _, c := range e.conditions {
		if !c.Matches(p) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(items []string, substr string) bool {
	for _, it := range items {
		if containsFold(it, substr) {
			return true
		}
	}
	return false
}
