package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/pkg/repo"
)

type testField int

const (
	fieldID testField = iota
	fieldName
	fieldUnknown
)

var testFieldMap = map[testField]string{
	fieldID:   "t.id",
	fieldName: "t.name",
}

func TestSortByToSQL(t *testing.T) {
	sort := repo.SortBy[testField]{Field: fieldName, Direction: repo.Desc}
	assert.Equal(t, "ORDER BY t.name DESC, t.id ASC", sort.ToSQL(testFieldMap, "t.id"))

	sort = repo.SortBy[testField]{Field: fieldName}
	assert.Equal(t, "ORDER BY t.name ASC, t.id ASC", sort.ToSQL(testFieldMap, "t.id"))
}

func TestSortByToSQLTiebreakEqualsColumn(t *testing.T) {
	sort := repo.SortBy[testField]{Field: fieldID, Direction: repo.Desc}
	assert.Equal(t, "ORDER BY t.id DESC", sort.ToSQL(testFieldMap, "t.id"))
}

func TestSortByToSQLUnknownField(t *testing.T) {
	sort := repo.SortBy[testField]{Field: fieldUnknown, Direction: repo.Desc}
	assert.Equal(t, "ORDER BY t.id ASC", sort.ToSQL(testFieldMap, "t.id"))

	assert.Equal(t, "", sort.ToSQL(testFieldMap, ""))
}

func TestSortByToSQLInvalidDirectionDefaultsAsc(t *testing.T) {
	sort := repo.SortBy[testField]{Field: fieldName, Direction: repo.SortDirection("DROP TABLE")}
	assert.Equal(t, "ORDER BY t.name ASC, t.id ASC", sort.ToSQL(testFieldMap, "t.id"))
}
