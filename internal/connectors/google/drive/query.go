package drive

import "strings"

// EscapeQueryTerm escapes a literal for interpolation into a Drive files.list
// query, where terms are single-quoted. Backslashes are escaped first so an
// already-escaped input is not double-processed into something dangerous.
func EscapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
