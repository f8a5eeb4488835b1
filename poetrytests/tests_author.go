package poetrytests

import (
	"strings"

	"github.com/poetrydb/contract-tests/poetrydb"
	"github.com/poetrydb/contract-tests/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoAuthorTests(t *T) {
	t.Run("lookup by author", func(t *T) {
		author := t.Fixtures().Author
		poems := t.RequirePoems(t.RequireOK(t.Client().LookupAuthor(author, "")), validate.Poems)
		require.NotEmpty(t, poems, "no poems found for author %q", author)
		for _, poem := range poems {
			assert.True(t, validate.AuthorEquals(poem, author), "expected author %q in %s", author,
				poem.GetByKey("author").JSONString())
			assert.True(t, validate.LinecountConsistent(poem), "inconsistent linecount in %q",
				poem.GetByKey("title").StringValue())
		}
	})

	t.Run("title and author output", func(t *T) {
		author := t.Fixtures().Author
		output := poetrydb.JoinFields(poetrydb.FieldTitle, poetrydb.FieldAuthor)
		poems := t.RequirePoems(t.RequireOK(t.Client().LookupAuthor(author, output)), validate.TitleAuthorArray)
		require.NotEmpty(t, poems)
		for _, poem := range poems {
			assert.True(t, validate.AuthorEquals(poem, author))
			t.AssertAbsent(poem, poetrydb.FieldLines, poetrydb.FieldLinecount)
		}
	})

	t.Run("text rendering", func(t *T) {
		resp := t.RequireOK(t.Client().LookupAuthor(t.Fixtures().Author, poetrydb.FieldTitle+".text"))

		assert.Contains(t, resp.ContentType(), "application/json")
		assert.NotEmpty(t, resp.Body)
		assert.Contains(t, strings.ToLower(resp.Text()), poetrydb.FieldTitle)
	})
}
