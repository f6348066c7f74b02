package repo

import "github.com/google/uuid"

// Filter is an enum-valued equality filter on one of the entity's
// enumerated fields. Multiple values for the same field are disjunctive.
type Filter[F comparable] struct {
	Field  F
	Values []string
}

// FindParams is the uniform list/count parameter set. Search is a
// case-insensitive substring match over the entity's fixed text columns.
// Publishers restricts results to entities resolving to one of the given
// owning publishers (disjunctive within the set, conjunctive with the other
// filters). ParentID / SecondParentID restrict to direct children of one
// parent instance.
type FindParams[F comparable] struct {
	Limit  int
	Offset int
	Search string
	SortBy SortBy[F]

	Publishers     []uuid.UUID
	ParentID       *uuid.UUID
	SecondParentID *uuid.UUID

	Filters []Filter[F]
}
