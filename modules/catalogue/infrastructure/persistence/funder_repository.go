package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/funder"
)

func FunderBinding() Binding[funder.Funder, funder.Field] {
	return Binding[funder.Funder, funder.Field]{
		Table:   "funder",
		Columns: []string{"funder_id", "funder_name", "funder_doi", "created_at", "updated_at"},
		KeyCols: []string{"funder_id"},
		Values: func(f funder.Funder) []any {
			return []any{f.FunderID, f.FunderName, f.FunderDOI, f.CreatedAt, f.UpdatedAt}
		},
		FieldMap: map[funder.Field]string{
			funder.FieldFunderID:   "funder.funder_id",
			funder.FieldFunderName: "funder.funder_name",
			funder.FieldFunderDOI:  "funder.funder_doi",
			funder.FieldCreatedAt:  "funder.created_at",
			funder.FieldUpdatedAt:  "funder.updated_at",
		},
		SearchCols: []string{"funder.funder_name", "funder.funder_doi"},
		Tiebreak:   "funder.funder_id",

		HistoryTable:   "funder_history",
		HistoryPK:      "funder_history_id",
		HistoryKeyCols: []string{"funder_id"},
		HistoryKeyValues: func(f funder.Funder) []any {
			return []any{f.FunderID}
		},
	}
}

func NewFunderRepository() *CrudRepository[funder.Funder, uuid.UUID, funder.Field] {
	return NewCrudRepository(FunderBinding(), UUIDKey("funder.funder_id"))
}
