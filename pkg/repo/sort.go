package repo

// SortDirection is the direction half of an order specification.
type SortDirection string

const (
	Asc  SortDirection = "ASC"
	Desc SortDirection = "DESC"
)

// SortBy pairs an entity's enumerated sortable field with a direction.
// Unknown fields cannot be expressed: F is a closed enum type and the
// repository's field map is the only route to a column name.
type SortBy[F comparable] struct {
	Field     F
	Direction SortDirection
}

// ToSQL renders an ORDER BY clause using the repository's field→column map.
// A tiebreak column, when given, is always appended ascending so that
// pagination over equal keys stays stable. Fields absent from the map render
// only the tiebreak.
func (s SortBy[F]) ToSQL(fieldMap map[F]string, tiebreak string) string {
	dir := s.Direction
	if dir != Desc {
		dir = Asc
	}
	col, ok := fieldMap[s.Field]
	if !ok {
		if tiebreak == "" {
			return ""
		}
		return "ORDER BY " + tiebreak + " ASC"
	}
	clause := "ORDER BY " + col + " " + string(dir)
	if tiebreak != "" && tiebreak != col {
		clause += ", " + tiebreak + " ASC"
	}
	return clause
}
