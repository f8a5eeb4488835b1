// Package poetrytests contains the PoetryDB contract tests themselves and their supporting
// API.
//
// Test runner infrastructure that is not specific to PoetryDB, such as test contexts,
// filtering and results, is in the lower-level framework package. Requests are built by the
// poetrydb package and responses checked by the validate package.
package poetrytests
