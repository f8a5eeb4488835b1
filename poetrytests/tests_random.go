package poetrytests

import (
	"github.com/poetrydb/contract-tests/poetrydb"
	"github.com/poetrydb/contract-tests/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoRandomTests(t *T) {
	t.Run("count and fields", func(t *T) {
		count := 3
		fields := poetrydb.JoinFields(poetrydb.FieldAuthor, poetrydb.FieldTitle, poetrydb.FieldLinecount)
		resp := t.RequireOK(t.Client().LookupRandom(count, fields))
		body := t.RequireJSON(resp)
		t.RequireShape(body, validate.AuthorTitleLinecountArray)
		require.True(t, validate.CountEquals(body, count), "expected %d poems, got %d", count, body.Count())

		for _, poem := range items(body) {
			t.AssertAbsent(poem, poetrydb.FieldLines)
		}
	})

	t.Run("title only", func(t *T) {
		count := 5
		body := t.RequireJSON(t.RequireOK(t.Client().LookupRandom(count, poetrydb.FieldTitle)))
		t.RequireShape(body, validate.TitleOnlyArray)
		require.True(t, validate.CountEquals(body, count), "expected %d poems, got %d", count, body.Count())

		for _, poem := range items(body) {
			t.AssertAbsent(poem, poetrydb.FieldAuthor, poetrydb.FieldLines)
		}
	})

	t.Run("distribution", func(t *T) {
		// Could fail by chance, but only if every call returns the same poems.
		count, iterations := 5, 3
		all := make(map[string]struct{})
		for i := 0; i < iterations; i++ {
			body := t.RequireJSON(t.RequireOK(t.Client().LookupRandom(count, poetrydb.FieldTitle)))
			require.True(t, validate.CountEquals(body, count), "expected %d poems, got %d", count, body.Count())
			for _, title := range validate.Titles(body) {
				all[title] = struct{}{}
			}
		}
		assert.Greater(t, len(all), count, "%d calls returned only %d distinct titles", iterations, len(all))
	})

	t.Run("no duplicates", func(t *T) {
		count := 10
		body := t.RequireJSON(t.RequireOK(t.Client().LookupRandom(count, poetrydb.FieldTitle)))
		require.True(t, validate.CountEquals(body, count), "expected %d poems, got %d", count, body.Count())

		seen := make(map[string]int)
		for _, title := range validate.Titles(body) {
			seen[title]++
		}
		for title, n := range seen {
			assert.Equal(t, 1, n, "title %q appeared %d times", title, n)
		}
		assert.Len(t, seen, count)
	})
}
