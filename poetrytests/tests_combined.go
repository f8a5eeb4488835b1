package poetrytests

import (
	"strings"

	"github.com/poetrydb/contract-tests/poetrydb"
	"github.com/poetrydb/contract-tests/validate"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	combinedTitleTerm  = "Winter"
	combinedAuthorTerm = "Shakespeare"
)

var combinedFields = poetrydb.JoinFields(poetrydb.FieldTitle, poetrydb.FieldAuthor)

func combinedTerms() string {
	return combinedTitleTerm + ";" + combinedAuthorTerm
}

func DoCombinedSearchTests(t *T) {
	t.Run("title and author", func(t *T) {
		resp := t.RequireOK(t.Client().CombinedSearch(combinedFields, combinedTerms(), ""))
		poems := t.RequirePoems(resp, validate.Poems)
		require.NotEmpty(t, poems)

		author := t.Fixtures().Author
		for _, poem := range poems {
			title := poem.GetByKey("title").StringValue()
			assert.True(t, containsFold(title, combinedTitleTerm), "title %q does not contain %q", title, combinedTitleTerm)
			assert.True(t, validate.AuthorEquals(poem, author), "expected author %q for %q", author, title)
		}
		assert.Subset(t, titlesOf(poems), t.Fixtures().WinterTitles)
	})

	t.Run("output format", func(t *T) {
		resp := t.RequireOK(t.Client().CombinedSearch(combinedFields, combinedTerms(), poetrydb.FieldTitle))
		poems := t.RequirePoems(resp, validate.TitleOnlyArray)
		require.NotEmpty(t, poems)
		for _, poem := range poems {
			title := poem.GetByKey("title").StringValue()
			assert.True(t, containsFold(title, combinedTitleTerm), "title %q does not contain %q", title, combinedTitleTerm)
			t.AssertAbsent(poem, poetrydb.FieldAuthor, poetrydb.FieldLines)
		}
	})

	t.Run("structured request", func(t *T) {
		req, err := poetrydb.NewSearchRequest(
			[]string{poetrydb.FieldTitle, poetrydb.FieldAuthor},
			[]string{combinedTitleTerm, combinedAuthorTerm},
		)
		require.NoError(t, err)
		req.Output = poetrydb.OutputFormat{Fields: []string{poetrydb.FieldTitle}}
		assert.Equal(t, combinedFields+"/"+combinedTerms()+"/"+poetrydb.FieldTitle, req.Path())

		structured := t.RequirePoems(t.RequireOK(t.Client().Search(req)), validate.TitleOnlyArray)
		resp := t.RequireOK(t.Client().CombinedSearch(combinedFields, combinedTerms(), poetrydb.FieldTitle))
		joined := t.RequirePoems(resp, validate.TitleOnlyArray)
		assert.ElementsMatch(t, titlesOf(joined), titlesOf(structured))
	})

	t.Run("exact title and author", func(t *T) {
		req := poetrydb.SearchRequest{
			Criteria: []poetrydb.Criterion{
				{Field: poetrydb.FieldTitle, Term: t.Fixtures().ExactTitle, Exact: true},
				{Field: poetrydb.FieldAuthor, Term: t.Fixtures().Author, Exact: true},
			},
			Output: poetrydb.OutputFormat{Fields: []string{poetrydb.FieldTitle, poetrydb.FieldAuthor}},
		}
		poems := t.RequirePoems(t.RequireOK(t.Client().Search(req)), validate.TitleAuthorArray)
		require.NotEmpty(t, poems)
		for _, poem := range poems {
			assert.True(t, validate.TitleEquals(poem, t.Fixtures().ExactTitle))
			assert.True(t, validate.AuthorEquals(poem, t.Fixtures().Author))
		}
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func titlesOf(poems []ldvalue.Value) []string {
	titles := make([]string, 0, len(poems))
	for _, poem := range poems {
		titles = append(titles, poem.GetByKey("title").StringValue())
	}
	return titles
}
