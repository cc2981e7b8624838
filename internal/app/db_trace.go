package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// bind variable lists of either dialect: "?, ?, ?" or "$3, $4, $5".
	bindListRegex = regexp.MustCompile(`\((?:\s*(?:\?|\$\d+)\s*,)+\s*(?:\?|\$\d+)\s*\)`)
)

// formatDBQueryForTrace flattens a statement for span attributes. Bind lists collapse to "(...)"
// so membership lookups over different id counts share one query text.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = bindListRegex.ReplaceAllString(normalized, "(...)")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
