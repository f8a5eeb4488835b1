package poetrydb

import (
	"errors"
	"fmt"
	"strings"
)

const (
	fieldSeparator     = ","
	termSeparator      = ";"
	exactMatchModifier = ":abs"
	textRenderSuffix   = ".text"
)

// Field names understood by the service, both as search inputs and as output fields.
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldLines     = "lines"
	FieldLinecount = "linecount"
)

// ErrMismatchedCriteria means a search was given a different number of fields and terms.
var ErrMismatchedCriteria = errors.New("poetrydb: field and term lists differ in length")

// Criterion is one (field, term) pair of a combined search.
type Criterion struct {
	Field string
	Term  string

	// Exact asks the service for full-string equality instead of substring containment.
	Exact bool
}

// OutputFormat selects which poem attributes the service returns and how.
type OutputFormat struct {
	Fields []string

	// Text requests the alternating label/value plain text rendering.
	Text bool
}

// String renders the output format as a path segment, e.g. "title,author.text". It is
// empty when no fields are selected.
func (o OutputFormat) String() string {
	if len(o.Fields) == 0 {
		return ""
	}
	s := strings.Join(o.Fields, fieldSeparator)
	if o.Text {
		s += textRenderSuffix
	}
	return s
}

// SearchRequest is a structured combined search.
type SearchRequest struct {
	Criteria []Criterion
	Output   OutputFormat
}

// NewSearchRequest pairs fields with terms by position.
func NewSearchRequest(fields, terms []string) (SearchRequest, error) {
	if len(fields) != len(terms) {
		return SearchRequest{}, fmt.Errorf("%w: %d fields, %d terms", ErrMismatchedCriteria, len(fields), len(terms))
	}
	req := SearchRequest{Criteria: make([]Criterion, 0, len(fields))}
	for i := range fields {
		req.Criteria = append(req.Criteria, Criterion{Field: fields[i], Term: terms[i]})
	}
	return req, nil
}

// InputFields returns the comma-joined field names.
func (r SearchRequest) InputFields() string {
	fields := make([]string, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		fields = append(fields, c.Field)
	}
	return strings.Join(fields, fieldSeparator)
}

// SearchTerms returns the semicolon-joined terms, in the same order as InputFields.
func (r SearchRequest) SearchTerms() string {
	terms := make([]string, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		term := c.Term
		if c.Exact {
			term = ExactMatch(term)
		}
		terms = append(terms, term)
	}
	return strings.Join(terms, termSeparator)
}

// Path returns the relative endpoint the request resolves to.
func (r SearchRequest) Path() string {
	p := r.InputFields() + "/" + r.SearchTerms()
	if out := r.Output.String(); out != "" {
		p += "/" + out
	}
	return p
}

// ExactMatch appends the exact-match modifier to a search term.
func ExactMatch(term string) string {
	if strings.HasSuffix(term, exactMatchModifier) {
		return term
	}
	return term + exactMatchModifier
}

// IsTextRendering reports whether an output format segment asks for the text rendering.
func IsTextRendering(outputFormat string) bool {
	return strings.HasSuffix(outputFormat, textRenderSuffix)
}

// JoinFields joins field names with the field separator.
func JoinFields(fields ...string) string {
	return strings.Join(fields, fieldSeparator)
}
