package listing

import (
	"fmt"
	"strings"
)

// Dialect selects placeholder style and case-insensitive match syntax.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectMySQL
)

// DialectFromDriver maps a database/sql driver name to a Dialect.
func DialectFromDriver(driver string) Dialect {
	if driver == "mysql" {
		return DialectMySQL
	}
	return DialectPostgres
}

// Placeholder returns the bind placeholder for the n-th argument (1-based).
func (d Dialect) Placeholder(n int) string {
	if d == DialectMySQL {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// WhereClause renders the mandatory owner predicate followed by the request
// filters as a conjunctive WHERE clause. The owner predicate always comes
// first: list queries must never be able to cross subject boundaries, no
// matter what filters the request carries.
func WhereClause(d Dialect, ownerColumn string, ownerID any, filters []Filter) (string, []any) {
	args := []any{ownerID}
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("WHERE %s = %s", ownerColumn, d.Placeholder(1)))

	for _, filter := range filters {
		switch filter.Op {
		case OpContains:
			args = append(args, "%"+fmt.Sprintf("%v", filter.Value)+"%")
			if d == DialectMySQL {
				sb.WriteString(fmt.Sprintf(" AND LOWER(%s) LIKE LOWER(%s)", filter.Column, d.Placeholder(len(args))))
			} else {
				sb.WriteString(fmt.Sprintf(" AND %s ILIKE %s", filter.Column, d.Placeholder(len(args))))
			}
		case OpGte:
			args = append(args, filter.Value)
			sb.WriteString(fmt.Sprintf(" AND %s >= %s", filter.Column, d.Placeholder(len(args))))
		case OpLte:
			args = append(args, filter.Value)
			sb.WriteString(fmt.Sprintf(" AND %s <= %s", filter.Column, d.Placeholder(len(args))))
		}
	}

	return sb.String(), args
}

// OrderByClause renders the deterministic sort order: the resource's natural
// date descending with creation time as tie-break.
func OrderByClause(dateColumn string) string {
	return fmt.Sprintf("ORDER BY %s DESC, created_at DESC", dateColumn)
}

// LimitOffsetClause renders pagination. argOffset is the number of bind
// arguments already consumed by the preceding clauses.
func LimitOffsetClause(d Dialect, argOffset, limit, offset int) (string, []any) {
	clause := fmt.Sprintf("LIMIT %s OFFSET %s", d.Placeholder(argOffset+1), d.Placeholder(argOffset+2))
	return clause, []any{limit, offset}
}
