package repo_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/colophon-press/colophon/pkg/repo"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM work WHERE true", repo.Join("SELECT 1", "", "FROM work", "", "WHERE true"))
	assert.Equal(t, "", repo.Join("", ""))
}

func TestJoinWhere(t *testing.T) {
	assert.Equal(t, "WHERE a = $1 AND b = $2", repo.JoinWhere("a = $1", "", "b = $2"))
	assert.Equal(t, "", repo.JoinWhere())
	assert.Equal(t, "", repo.JoinWhere("", ""))
}

func TestFormatLimitOffset(t *testing.T) {
	assert.Equal(t, "LIMIT 10 OFFSET 0", repo.FormatLimitOffset(10, 0))
	assert.Equal(t, "LIMIT 25 OFFSET 50", repo.FormatLimitOffset(25, 50))
	assert.Equal(t, "OFFSET 5", repo.FormatLimitOffset(0, 5))
	assert.Equal(t, "", repo.FormatLimitOffset(0, 0))
	assert.Equal(t, "LIMIT 10 OFFSET 0", repo.FormatLimitOffset(10, -3))
}

func TestFormatLimitOffsetRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(-5, 1000).Draw(t, "limit")
		offset := rapid.IntRange(-5, 1000).Draw(t, "offset")

		clause := repo.FormatLimitOffset(limit, offset)
		if limit > 0 {
			var l, o int
			_, err := fmt.Sscanf(clause, "LIMIT %d OFFSET %d", &l, &o)
			require.NoError(t, err)
			require.Equal(t, limit, l)
			require.GreaterOrEqual(t, o, 0)
		} else {
			require.NotContains(t, clause, "LIMIT")
		}
	})
}

func TestInsert(t *testing.T) {
	q := repo.Insert("funder", []string{"funder_id", "funder_name"})
	assert.Equal(t, "INSERT INTO funder (funder_id, funder_name) VALUES ($1, $2)", q)

	q = repo.Insert("funder", []string{"funder_id", "funder_name"}, "funder_id", "funder_name")
	assert.Equal(t, "INSERT INTO funder (funder_id, funder_name) VALUES ($1, $2) RETURNING funder_id, funder_name", q)
}

func TestUpdate(t *testing.T) {
	q := repo.Update("funder", []string{"funder_name", "updated_at"}, "funder_id = $3")
	assert.Equal(t, "UPDATE funder SET funder_name = $1, updated_at = $2 WHERE funder_id = $3", q)
}

func TestDelete(t *testing.T) {
	assert.Equal(t, "DELETE FROM funder WHERE funder_id = $1", repo.Delete("funder", "funder_id = $1"))
}

func TestExists(t *testing.T) {
	assert.Equal(t,
		"SELECT EXISTS (SELECT 1 FROM location WHERE canonical)",
		repo.Exists("SELECT 1 FROM location WHERE canonical"),
	)
}

func TestILikeAny(t *testing.T) {
	assert.Equal(t, "", repo.ILikeAny(nil, 1))
	assert.Equal(t, "(a ILIKE $2)", repo.ILikeAny([]string{"a"}, 2))
	assert.Equal(t, "(a ILIKE $3 OR b ILIKE $3)", repo.ILikeAny([]string{"a", "b"}, 3))
}

func TestBatchInsertQueryN(t *testing.T) {
	q, args := repo.BatchInsertQueryN("INSERT INTO t (a, b) VALUES", [][]any{
		{1, "x"},
		{2, "y"},
	})
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2), ($3, $4)", q)
	assert.Equal(t, []any{1, "x", 2, "y"}, args)

	q, args = repo.BatchInsertQueryN("INSERT INTO t (a) VALUES", nil)
	assert.Equal(t, "INSERT INTO t (a) VALUES", q)
	assert.Nil(t, args)
}

func TestBatchInsertQueryNRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 20).Draw(t, "rows")
		width := rapid.IntRange(1, 8).Draw(t, "width")

		data := make([][]any, rows)
		for i := range data {
			row := make([]any, width)
			for j := range row {
				row[j] = i*width + j
			}
			data[i] = row
		}

		q, args := repo.BatchInsertQueryN("INSERT INTO t (c) VALUES", data)
		require.Len(t, args, rows*width)
		require.Equal(t, rows*width, strings.Count(q, "$"))
		require.Contains(t, q, fmt.Sprintf("$%d", rows*width))
	})
}
