package validate

import (
	"errors"
	"fmt"
	"testing"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ozymandias = `{
	"title": "Ozymandias",
	"author": "Percy Bysshe Shelley",
	"lines": ["I met a traveller from an antique land", "Who said: Two vast and trunkless legs of stone"],
	"linecount": "2"
}`

func parse(t *testing.T, s string) ldvalue.Value {
	t.Helper()
	v := ldvalue.Parse([]byte(s))
	require.False(t, v.IsNull(), "test JSON did not parse: %s", s)
	return v
}

func requireViolation(t *testing.T, err error) *SchemaViolation {
	t.Helper()
	require.Error(t, err)
	var v *SchemaViolation
	require.True(t, errors.As(err, &v), "expected a SchemaViolation, got %T: %s", err, err)
	return v
}

func TestFullPoemShapes(t *testing.T) {
	poem := parse(t, ozymandias)
	assert.NoError(t, Check(poem, Poem))
	assert.NoError(t, Check(parse(t, "["+ozymandias+"]"), Poems))
	assert.NoError(t, Check(parse(t, "[]"), Poems))

	v := requireViolation(t, Check(poem, Poems))
	assert.Equal(t, Poems.Name(), v.Shape)
}

func TestLinecountMayBeTextOrInteger(t *testing.T) {
	assert.NoError(t, Check(parse(t, `{"linecount": "14"}`), LinecountOnly))
	assert.NoError(t, Check(parse(t, `{"linecount": 14}`), LinecountOnly))
	requireViolation(t, Check(parse(t, `{"linecount": 14.5}`), LinecountOnly))
	requireViolation(t, Check(parse(t, `{"linecount": ["14"]}`), LinecountOnly))
}

func TestProjectionShapesAreClosed(t *testing.T) {
	for _, tc := range []struct {
		shape *Shape
		ok    string
		bad   []string
	}{
		{
			shape: TitleOnly,
			ok:    `{"title": "Ozymandias"}`,
			bad: []string{
				`{"title": "Ozymandias", "author": "Percy Bysshe Shelley"}`,
				`{"title": "Ozymandias", "lines": []}`,
				`{"author": "Percy Bysshe Shelley"}`,
				`{"title": 7}`,
			},
		},
		{
			shape: AuthorOnly,
			ok:    `{"author": "Percy Bysshe Shelley"}`,
			bad:   []string{`{"author": "Percy Bysshe Shelley", "title": "Ozymandias"}`, `{}`},
		},
		{
			shape: TitleAuthor,
			ok:    `{"title": "Ozymandias", "author": "Percy Bysshe Shelley"}`,
			bad:   []string{`{"title": "Ozymandias"}`, `{"title": "Ozymandias", "author": "x", "linecount": "14"}`},
		},
		{
			shape: AuthorTitleLinecount,
			ok:    `{"author": "Percy Bysshe Shelley", "title": "Ozymandias", "linecount": "14"}`,
			bad:   []string{`{"author": "Percy Bysshe Shelley", "title": "Ozymandias", "linecount": "14", "lines": []}`},
		},
	} {
		t.Run(tc.shape.Name(), func(t *testing.T) {
			assert.NoError(t, Check(parse(t, tc.ok), tc.shape))
			assert.NoError(t, Check(parse(t, "["+tc.ok+"]"), ArrayOf(tc.shape)))
			for _, b := range tc.bad {
				requireViolation(t, Check(parse(t, b), tc.shape))
				requireViolation(t, Check(parse(t, "["+tc.ok+","+b+"]"), ArrayOf(tc.shape)))
			}
		})
	}
}

func TestNotFoundIsNotASuccessShape(t *testing.T) {
	notFound := parse(t, `{"status": 404, "reason": "Not found"}`)
	assert.NoError(t, Check(notFound, NotFound))
	requireViolation(t, Check(notFound, Poems))
	requireViolation(t, Check(notFound, TitleOnlyArray))
	requireViolation(t, Check(parse(t, `[]`), NotFound))
}

func TestCheckAcceptsBytesAndGoValues(t *testing.T) {
	assert.NoError(t, Check([]byte(`[{"title": "Ozymandias"}]`), TitleOnlyArray))
	assert.NoError(t, Check([]map[string]string{{"title": "Ozymandias"}}, TitleOnlyArray))
	requireViolation(t, Check([]map[string]string{{"author": "x"}}, TitleOnlyArray))

	v := requireViolation(t, Check([]byte("title\nOzymandias"), TitleOnlyArray))
	assert.Contains(t, v.Error(), "not valid JSON")
}

func TestSchemaViolationIsDistinguishable(t *testing.T) {
	err := Check(parse(t, `{"title": 1}`), TitleOnly)
	assert.True(t, IsSchemaViolation(err))
	assert.True(t, IsSchemaViolation(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsSchemaViolation(errors.New("title mismatch")))
	assert.False(t, IsSchemaViolation(nil))
}

func TestProjectionRejectsUnknownAttribute(t *testing.T) {
	assert.Panics(t, func() { Projection("title", "publisher") })
}

func TestNewShapeRejectsInvalidSchema(t *testing.T) {
	_, err := NewShape("broken", map[string]interface{}{"type": 5})
	assert.Error(t, err)
}
