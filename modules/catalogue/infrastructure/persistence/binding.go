package persistence

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Binding is the static registry entry tying one entity type to its table:
// column layout, sortable-field map, text-search columns, ownership-chain
// joins for publisher scoping, and the history table written on update.
// Adding an entity type means adding a binding plus a repository
// constructor; nothing is discovered at runtime.
type Binding[T any, F comparable] struct {
	Table   string
	Columns []string
	// KeyCols are the primary-key columns; they are never part of an UPDATE
	// SET list.
	KeyCols []string
	// Values returns the entity's values aligned with Columns.
	Values func(T) []any

	// FieldMap maps the entity's closed field enum to qualified columns.
	FieldMap map[F]string
	// SearchCols are the fixed text columns the substring filter applies to.
	// Empty means the entity ignores text filters.
	SearchCols []string
	// Tiebreak is appended to every ORDER BY so pagination stays stable.
	Tiebreak string

	// OwnershipJoins lead from Table up to the imprint level;
	// PublisherCol is the owning publisher column reached by those joins.
	// An empty PublisherCol marks an unowned entity (publisher scope is
	// then inapplicable and ignored).
	OwnershipJoins  []string
	PublisherCol    string
	ParentCol       string
	SecondParentCol string

	HistoryTable     string
	HistoryPK        string
	HistoryKeyCols   []string
	HistoryKeyValues func(T) []any
}

// selectColumns renders the qualified select list; qualification keeps the
// list unambiguous when ownership joins are present.
func (b Binding[T, F]) selectColumns() string {
	cols := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = b.Table + "." + c
	}
	return strings.Join(cols, ", ")
}

// mutableColumns is the UPDATE SET list: everything except key columns and
// created_at.
func (b Binding[T, F]) mutableColumns() []string {
	skip := make(map[string]struct{}, len(b.KeyCols)+1)
	for _, k := range b.KeyCols {
		skip[k] = struct{}{}
	}
	skip["created_at"] = struct{}{}

	out := make([]string, 0, len(b.Columns))
	for _, c := range b.Columns {
		if _, ok := skip[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (b Binding[T, F]) valuesFor(entity T, cols []string) []any {
	byCol := make(map[string]any, len(b.Columns))
	vals := b.Values(entity)
	for i, c := range b.Columns {
		byCol[c] = vals[i]
	}
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = byCol[c]
	}
	return out
}

// KeyWhere renders the WHERE condition matching one key, with placeholders
// starting at the given index.
type KeyWhere[K any] func(key K, startIndex int) (string, []any)

// UUIDKey is the KeyWhere for entities keyed by a single random identifier.
func UUIDKey(col string) KeyWhere[uuid.UUID] {
	return func(id uuid.UUID, start int) (string, []any) {
		return fmt.Sprintf("%s = $%d", col, start), []any{id}
	}
}
