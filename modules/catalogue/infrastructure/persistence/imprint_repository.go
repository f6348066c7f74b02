package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/imprint"
)

func ImprintBinding() Binding[imprint.Imprint, imprint.Field] {
	return Binding[imprint.Imprint, imprint.Field]{
		Table:   "imprint",
		Columns: []string{"imprint_id", "publisher_id", "imprint_name", "imprint_url", "created_at", "updated_at"},
		KeyCols: []string{"imprint_id"},
		Values: func(i imprint.Imprint) []any {
			return []any{i.ImprintID, i.PublisherID, i.ImprintName, i.ImprintURL, i.CreatedAt, i.UpdatedAt}
		},
		FieldMap: map[imprint.Field]string{
			imprint.FieldImprintID:   "imprint.imprint_id",
			imprint.FieldImprintName: "imprint.imprint_name",
			imprint.FieldImprintURL:  "imprint.imprint_url",
			imprint.FieldPublisherID: "imprint.publisher_id",
			imprint.FieldCreatedAt:   "imprint.created_at",
			imprint.FieldUpdatedAt:   "imprint.updated_at",
		},
		SearchCols:   []string{"imprint.imprint_name", "imprint.imprint_url"},
		Tiebreak:     "imprint.imprint_id",
		PublisherCol: "imprint.publisher_id",
		ParentCol:    "imprint.publisher_id",

		HistoryTable:   "imprint_history",
		HistoryPK:      "imprint_history_id",
		HistoryKeyCols: []string{"imprint_id"},
		HistoryKeyValues: func(i imprint.Imprint) []any {
			return []any{i.ImprintID}
		},
	}
}

func NewImprintRepository() *CrudRepository[imprint.Imprint, uuid.UUID, imprint.Field] {
	return NewCrudRepository(ImprintBinding(), UUIDKey("imprint.imprint_id"))
}
