// Package validate checks PoetryDB responses.
//
// Shape descriptors (Poem, TitleOnlyArray, ...) describe the structure of a response and are
// applied with Check, which reports a *SchemaViolation. The predicates (TitleEquals,
// LinecountConsistent, ...) compare content and return plain booleans, so a caller can tell
// a malformed response from a mismatched value.
package validate
