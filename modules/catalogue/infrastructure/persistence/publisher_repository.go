package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/publisher"
)

func PublisherBinding() Binding[publisher.Publisher, publisher.Field] {
	return Binding[publisher.Publisher, publisher.Field]{
		Table:   "publisher",
		Columns: []string{"publisher_id", "publisher_name", "publisher_shortname", "publisher_url", "created_at", "updated_at"},
		KeyCols: []string{"publisher_id"},
		Values: func(p publisher.Publisher) []any {
			return []any{p.PublisherID, p.PublisherName, p.PublisherShortname, p.PublisherURL, p.CreatedAt, p.UpdatedAt}
		},
		FieldMap: map[publisher.Field]string{
			publisher.FieldPublisherID:        "publisher.publisher_id",
			publisher.FieldPublisherName:      "publisher.publisher_name",
			publisher.FieldPublisherShortname: "publisher.publisher_shortname",
			publisher.FieldPublisherURL:       "publisher.publisher_url",
			publisher.FieldCreatedAt:          "publisher.created_at",
			publisher.FieldUpdatedAt:          "publisher.updated_at",
		},
		SearchCols:   []string{"publisher.publisher_name", "publisher.publisher_shortname"},
		Tiebreak:     "publisher.publisher_id",
		PublisherCol: "publisher.publisher_id",

		HistoryTable:   "publisher_history",
		HistoryPK:      "publisher_history_id",
		HistoryKeyCols: []string{"publisher_id"},
		HistoryKeyValues: func(p publisher.Publisher) []any {
			return []any{p.PublisherID}
		},
	}
}

func NewPublisherRepository() *CrudRepository[publisher.Publisher, uuid.UUID, publisher.Field] {
	return NewCrudRepository(PublisherBinding(), UUIDKey("publisher.publisher_id"))
}
