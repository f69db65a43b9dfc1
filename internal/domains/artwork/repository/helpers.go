package repository

import (
	"fmt"
	"strconv"

	"artworks-backend/internal/shared/utils"
)

// sentinelQuery replaces a missing or empty search string. It is vanishingly
// unlikely to match any stored text, so an empty form submit yields a
// deterministic empty result instead of dumping the whole relation.
const sentinelQuery = "Query cannot be null"

// Paging is fixed per facet; there is no caller-adjustable page size or
// offset anywhere in the search surface.
const (
	searchLimit    = 20
	favoritesLimit = 500
)

// anyTextColumns is the fixed set of fields the unrestricted facet scans.
var anyTextColumns = []string{
	"title",
	"artist",
	"term",
	"subject",
	"classification",
	"category",
	"style",
	"technique",
	"alt_text",
	"description",
	"place",
	"medium",
	"type",
	"artist_title",
}

// orSentinel substitutes the sentinel for a missing query string.
func orSentinel(text string) string {
	if text == "" {
		return sentinelQuery
	}
	return text
}

// containsClause builds a case-sensitive substring predicate for one
// column against the positional arg.
func containsClause(column string, arg int) string {
	return fmt.Sprintf("%s LIKE '%%' || $%d || '%%'", column, arg)
}

// searchAnyPredicate builds the WHERE body for the unrestricted facet:
// any text column contains the query, or date_end equals its integer
// parse. A query that does not parse as an integer simply contributes no
// date clause; it is not an error. Sparse rows (empty description) are
// filtered out unconditionally.
func searchAnyPredicate(text string) (string, []any) {
	text = orSentinel(text)

	clauses := make([]string, 0, len(anyTextColumns)+1)
	for _, col := range anyTextColumns {
		clauses = append(clauses, containsClause(col, 1))
	}
	args := []any{text}

	if year, err := strconv.Atoi(text); err == nil {
		clauses = append(clauses, "date_end = $2")
		args = append(args, year)
	}

	predicate := "(" + utils.JoinWithOr(clauses) + ") AND description IS NOT NULL AND description <> ''"
	return predicate, args
}
