package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/publication"
)

func PublicationBinding() Binding[publication.Publication, publication.Field] {
	return Binding[publication.Publication, publication.Field]{
		Table:   "publication",
		Columns: []string{"publication_id", "publication_type", "work_id", "isbn", "publication_url", "created_at", "updated_at"},
		KeyCols: []string{"publication_id"},
		Values: func(p publication.Publication) []any {
			return []any{p.PublicationID, p.PublicationType, p.WorkID, p.ISBN, p.PublicationURL, p.CreatedAt, p.UpdatedAt}
		},
		FieldMap: map[publication.Field]string{
			publication.FieldPublicationID:   "publication.publication_id",
			publication.FieldPublicationType: "publication.publication_type",
			publication.FieldWorkID:          "publication.work_id",
			publication.FieldISBN:            "publication.isbn",
			publication.FieldPublicationURL:  "publication.publication_url",
			publication.FieldCreatedAt:       "publication.created_at",
			publication.FieldUpdatedAt:       "publication.updated_at",
		},
		SearchCols: []string{"publication.isbn", "publication.publication_url"},
		Tiebreak:   "publication.publication_id",

		OwnershipJoins: []string{
			"INNER JOIN work ON publication.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol: "imprint.publisher_id",
		ParentCol:    "publication.work_id",

		HistoryTable:   "publication_history",
		HistoryPK:      "publication_history_id",
		HistoryKeyCols: []string{"publication_id"},
		HistoryKeyValues: func(p publication.Publication) []any {
			return []any{p.PublicationID}
		},
	}
}

func NewPublicationRepository() *CrudRepository[publication.Publication, uuid.UUID, publication.Field] {
	return NewCrudRepository(PublicationBinding(), UUIDKey("publication.publication_id"))
}
