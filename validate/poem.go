package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ErrLinecount means a poem's linecount is absent or is neither an integer nor the decimal
// text of one.
var ErrLinecount = errors.New("unusable linecount")

// TitleEquals reports whether the poem's title is exactly expected.
func TitleEquals(poem ldvalue.Value, expected string) bool {
	return textEquals(poem, "title", expected)
}

// AuthorEquals reports whether the poem's author is exactly expected.
func AuthorEquals(poem ldvalue.Value, expected string) bool {
	return textEquals(poem, "author", expected)
}

func textEquals(poem ldvalue.Value, key, expected string) bool {
	v := poem.GetByKey(key)
	return v.IsString() && v.StringValue() == expected
}

// HasKey reports whether a decoded object has the attribute at all, even with a null value.
func HasKey(poem ldvalue.Value, key string) bool {
	for _, k := range poem.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Linecount returns the poem's linecount as an integer. The service sends it as text.
func Linecount(poem ldvalue.Value) (int, error) {
	v := poem.GetByKey("linecount")
	switch {
	case v.IsInt():
		return v.IntValue(), nil
	case v.IsString():
		n, err := strconv.Atoi(strings.TrimSpace(v.StringValue()))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrLinecount, v.StringValue())
		}
		return n, nil
	case v.IsNull():
		return 0, fmt.Errorf("%w: absent", ErrLinecount)
	default:
		return 0, fmt.Errorf("%w: %s", ErrLinecount, v.JSONString())
	}
}

// LinecountConsistent reports whether the poem has both lines and linecount, and the
// linecount equals the number of lines. An unusable linecount is false, not an error.
func LinecountConsistent(poem ldvalue.Value) bool {
	lines := poem.GetByKey("lines")
	if lines.Type() != ldvalue.ArrayType {
		return false
	}
	n, err := Linecount(poem)
	if err != nil {
		return false
	}
	return n == lines.Count()
}

// CountEquals reports whether items is an array of exactly expected elements.
func CountEquals(items ldvalue.Value, expected int) bool {
	return items.Type() == ldvalue.ArrayType && items.Count() == expected
}

// Titles returns the text titles found in an array of poem projections, in order.
func Titles(items ldvalue.Value) []string {
	var titles []string
	for i := 0; i < items.Count(); i++ {
		if t := items.GetByIndex(i).GetByKey("title"); t.IsString() {
			titles = append(titles, t.StringValue())
		}
	}
	return titles
}

// TextFormat checks the ".text" rendering, where label lines alternate with value lines:
// every even-indexed line must start with field. Surrounding whitespace is ignored and an
// empty body is false.
func TextFormat(text, field string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i += 2 {
		if !strings.HasPrefix(lines[i], field) {
			return false
		}
	}
	return true
}
