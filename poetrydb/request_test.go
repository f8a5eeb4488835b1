package poetrydb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequestKeepsFieldsAlignedWithTerms(t *testing.T) {
	req, err := NewSearchRequest([]string{"title", "author"}, []string{"Winter", "Shakespeare"})
	require.NoError(t, err)

	assert.Equal(t, "title,author", req.InputFields())
	assert.Equal(t, "Winter;Shakespeare", req.SearchTerms())

	path := req.Path()
	assert.Equal(t, "title,author/Winter;Shakespeare", path)
	assert.Less(t, strings.Index(path, "title"), strings.Index(path, "author"))
	assert.Less(t, strings.Index(path, "Winter"), strings.Index(path, "Shakespeare"))
}

func TestSearchRequestRejectsMismatchedLists(t *testing.T) {
	_, err := NewSearchRequest([]string{"title", "author"}, []string{"Winter"})
	assert.ErrorIs(t, err, ErrMismatchedCriteria)
}

func TestSearchRequestExactCriterion(t *testing.T) {
	req := SearchRequest{
		Criteria: []Criterion{{Field: "title", Term: "Winter", Exact: true}},
		Output:   OutputFormat{Fields: []string{"title", "author"}, Text: true},
	}
	assert.Equal(t, "title/Winter:abs/title,author.text", req.Path())
}

func TestOutputFormat(t *testing.T) {
	assert.Equal(t, "", OutputFormat{}.String())
	assert.Equal(t, "", OutputFormat{Text: true}.String())
	assert.Equal(t, "lines", OutputFormat{Fields: []string{"lines"}}.String())
	assert.Equal(t, "title,linecount.text", OutputFormat{Fields: []string{"title", "linecount"}, Text: true}.String())
}

func TestExactMatch(t *testing.T) {
	assert.Equal(t, "Winter:abs", ExactMatch("Winter"))
	assert.Equal(t, "Winter:abs", ExactMatch("Winter:abs"))
}

func TestIsTextRendering(t *testing.T) {
	assert.True(t, IsTextRendering("title.text"))
	assert.True(t, IsTextRendering("title,author.text"))
	assert.False(t, IsTextRendering("title"))
	assert.False(t, IsTextRendering(""))
}

func TestJoinFields(t *testing.T) {
	assert.Equal(t, "author,title,linecount", JoinFields(FieldAuthor, FieldTitle, FieldLinecount))
}
