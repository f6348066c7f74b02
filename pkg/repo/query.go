// Package repo contains SQL string-assembly helpers shared by all
// repositories. Queries are built from typed inputs only; user-supplied text
// always travels as a bind argument, never as SQL.
package repo

import (
	"fmt"
	"strings"
)

// Join concatenates non-empty query fragments with a single space.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// JoinWhere renders a WHERE clause combining all conditions with AND.
// Returns an empty string when there are no conditions.
func JoinWhere(conds ...string) string {
	filtered := make([]string, 0, len(conds))
	for _, c := range conds {
		if c != "" {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(filtered, " AND ")
}

// FormatLimitOffset renders a deterministic pagination clause. Non-positive
// limit means no limit; negative offset is treated as zero.
func FormatLimitOffset(limit, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if limit > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	}
	if offset > 0 {
		return fmt.Sprintf("OFFSET %d", offset)
	}
	return ""
}

// Insert renders an INSERT for the given columns with sequential
// placeholders, optionally returning columns.
func Insert(table string, fields []string, returning ...string) string {
	placeholders := make([]string, len(fields))
	for i := range fields {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
	)
	if len(returning) > 0 {
		q += " RETURNING " + strings.Join(returning, ", ")
	}
	return q
}

// Update renders an UPDATE setting the given columns to sequential
// placeholders starting at $1, with the caller-supplied WHERE condition.
// The condition's placeholders must continue the numbering.
func Update(table string, fields []string, where string) string {
	assignments := make([]string, len(fields))
	for i, f := range fields {
		assignments[i] = fmt.Sprintf("%s = $%d", f, i+1)
	}
	q := fmt.Sprintf("UPDATE %s SET %s", table, strings.Join(assignments, ", "))
	if where != "" {
		q += " WHERE " + where
	}
	return q
}

// Delete renders a DELETE with the caller-supplied WHERE condition.
func Delete(table string, where string) string {
	q := "DELETE FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	return q
}

// Exists wraps a base query in SELECT EXISTS.
func Exists(base string) string {
	return fmt.Sprintf("SELECT EXISTS (%s)", base)
}

// ILikeAny renders a parenthesised case-insensitive substring match across
// the given columns, all bound to the same placeholder index. Returns an
// empty string when there are no columns, so entities without text columns
// silently ignore the filter.
func ILikeAny(columns []string, argIndex int) string {
	if len(columns) == 0 {
		return ""
	}
	conds := make([]string, len(columns))
	for i, c := range columns {
		conds[i] = fmt.Sprintf("%s ILIKE $%d", c, argIndex)
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// BatchInsertQueryN extends an "INSERT INTO t (a, b) VALUES" prefix with one
// placeholder tuple per row and returns the flattened arguments.
func BatchInsertQueryN(prefix string, rows [][]any) (string, []any) {
	if len(rows) == 0 {
		return prefix, nil
	}
	width := len(rows[0])
	tuples := make([]string, len(rows))
	args := make([]any, 0, len(rows)*width)
	for i, row := range rows {
		ph := make([]string, width)
		for j := range row {
			ph[j] = fmt.Sprintf("$%d", i*width+j+1)
		}
		tuples[i] = "(" + strings.Join(ph, ", ") + ")"
		args = append(args, row...)
	}
	return prefix + " " + strings.Join(tuples, ", "), args
}
