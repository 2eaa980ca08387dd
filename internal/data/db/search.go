package db

import (
	"strings"
)

// BooleanPattern builds the full-text pattern for free text: whitespace-separated
// tokens are joined by '*' and the result is wrapped in '*'. "foo bar" becomes "*foo*bar*".
// Blank input yields "".
func BooleanPattern(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}
	return "*" + strings.Join(tokens, "*") + "*"
}

// TextMatch returns a WHERE fragment and its bound arguments that match pattern
// against quiz name and description. The pattern is always bound, never inlined.
func TextMatch(d Dialect, pattern string) (string, []interface{}) {
	switch d {
	case DialectMySQL:
		return "MATCH(name, description) AGAINST (? IN BOOLEAN MODE)", []interface{}{pattern}
	case DialectPostgres:
		like := likePattern(pattern)
		return `(name ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\')`, []interface{}{like, like}
	default:
		like := likePattern(pattern)
		return `(name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`, []interface{}{like, like}
	}
}

// likePattern escapes LIKE metacharacters and turns '*' wildcards into '%'.
func likePattern(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '\\', '%', '_':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '*':
			b.WriteRune('%')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
