package utils

import "strings"

// JoinWithAnd joins a slice of SQL clauses with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of SQL clauses with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}
