package poetrytests

import (
	"github.com/poetrydb/contract-tests/poetrydb"
	"github.com/poetrydb/contract-tests/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoTitleTests(t *T) {
	t.Run("lookup by title", func(t *T) {
		title := t.Fixtures().Title
		poems := t.RequirePoems(t.RequireOK(t.Client().LookupTitle(title, "")), validate.Poems)
		require.NotEmpty(t, poems, "no poems found for title %q", title)
		for _, poem := range poems {
			assert.True(t, validate.TitleEquals(poem, title), "expected title %q in %s", title, poem.JSONString())
		}
	})

	t.Run("specific output field", func(t *T) {
		title := t.Fixtures().Title
		poems := t.RequirePoems(t.RequireOK(t.Client().LookupTitle(title, poetrydb.FieldTitle)), validate.TitleOnlyArray)
		require.NotEmpty(t, poems)
		for _, poem := range poems {
			assert.True(t, validate.TitleEquals(poem, title), "expected title %q in %s", title, poem.JSONString())
			t.AssertAbsent(poem, poetrydb.FieldAuthor, poetrydb.FieldLines)
		}
	})

	t.Run("text rendering", func(t *T) {
		title := t.Fixtures().Title
		resp := t.RequireOK(t.Client().LookupTitle(title, poetrydb.FieldTitle+".text"))

		// The service labels text renderings as JSON.
		assert.Contains(t, resp.ContentType(), "application/json")
		assert.Contains(t, resp.Text(), title)
		assert.True(t, validate.TextFormat(resp.Text(), poetrydb.FieldTitle),
			"label lines do not alternate with values: %q", resp.Text())
	})

	t.Run("linecount matches lines", func(t *T) {
		poems := t.RequirePoems(t.RequireOK(t.Client().LookupTitle(t.Fixtures().Title, "")), validate.Poems)
		require.NotEmpty(t, poems)
		for _, poem := range poems {
			assert.True(t, validate.LinecountConsistent(poem),
				"linecount %s does not match %d lines", poem.GetByKey("linecount").JSONString(),
				poem.GetByKey("lines").Count())
		}
	})

	t.Run("exact match", func(t *T) {
		exact := t.Fixtures().ExactTitle
		poems := t.RequirePoems(t.RequireOK(t.Client().LookupTitle(poetrydb.ExactMatch(exact), "")), validate.Poems)
		require.NotEmpty(t, poems, "no poems titled exactly %q", exact)
		for _, poem := range poems {
			assert.True(t, validate.TitleEquals(poem, exact), "expected exactly %q, got %s", exact,
				poem.GetByKey("title").JSONString())
		}
	})

	t.Run("unknown title", func(t *T) {
		body := t.RequireJSON(t.RequireOK(t.Client().LookupTitle(t.Fixtures().UnknownTitle, "")))
		t.RequireShape(body, validate.NotFound)
		assert.True(t, validate.IsSchemaViolation(validate.Check(body, validate.Poems)),
			"not-found response should not pass as a list of poems")
	})
}
