package validate

import (
	"fmt"
	"strings"
)

var poemProperties = map[string]map[string]interface{}{
	"title":  {"type": "string"},
	"author": {"type": "string"},
	"lines": {
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	},
	// The service reports linecount as text, but an integer is equally acceptable.
	"linecount": {"type": []interface{}{"string", "integer"}},
}

// Shapes of successful responses. Every object shape is closed: an attribute that was not
// requested is a violation.
var (
	Poem                      = Projection("title", "author", "lines", "linecount")
	Poems                     = ArrayOf(Poem)
	TitleOnly                 = Projection("title")
	TitleOnlyArray            = ArrayOf(TitleOnly)
	AuthorOnly                = Projection("author")
	AuthorOnlyArray           = ArrayOf(AuthorOnly)
	LinecountOnly             = Projection("linecount")
	TitleAuthor               = Projection("title", "author")
	TitleAuthorArray          = ArrayOf(TitleAuthor)
	AuthorTitleLinecount      = Projection("author", "title", "linecount")
	AuthorTitleLinecountArray = ArrayOf(AuthorTitleLinecount)
)

// NotFound is the object the service returns instead of an array when nothing matches.
var NotFound = MustShape("not found", map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"status", "reason"},
	"properties": map[string]interface{}{
		"status": map[string]interface{}{"type": []interface{}{"string", "integer"}},
		"reason": map[string]interface{}{"type": "string"},
	},
})

// Projection returns a closed object shape requiring exactly the given poem attributes.
// It panics on an attribute that poems do not have.
func Projection(fields ...string) *Shape {
	props := make(map[string]interface{}, len(fields))
	required := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		p, ok := poemProperties[f]
		if !ok {
			panic(fmt.Sprintf("unknown poem attribute %q", f))
		}
		props[f] = p
		required = append(required, f)
	}
	return MustShape(strings.Join(fields, ","), map[string]interface{}{
		"type":                 "object",
		"required":             required,
		"properties":           props,
		"additionalProperties": false,
	})
}

// ArrayOf returns a shape matching a JSON array whose every item matches item.
func ArrayOf(item *Shape) *Shape {
	return MustShape("["+item.name+"]", map[string]interface{}{
		"type":  "array",
		"items": item.source,
	})
}
