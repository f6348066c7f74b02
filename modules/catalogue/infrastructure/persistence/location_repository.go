package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/location"
)

func LocationBinding() Binding[location.Location, location.Field] {
	return Binding[location.Location, location.Field]{
		Table: "location",
		Columns: []string{
			"location_id", "publication_id", "landing_page", "full_text_url",
			"location_platform", "canonical", "created_at", "updated_at",
		},
		KeyCols: []string{"location_id"},
		Values: func(l location.Location) []any {
			return []any{
				l.LocationID, l.PublicationID, l.LandingPage, l.FullTextURL,
				l.LocationPlatform, l.Canonical, l.CreatedAt, l.UpdatedAt,
			}
		},
		FieldMap: map[location.Field]string{
			location.FieldLocationID:       "location.location_id",
			location.FieldPublicationID:    "location.publication_id",
			location.FieldLandingPage:      "location.landing_page",
			location.FieldFullTextURL:      "location.full_text_url",
			location.FieldLocationPlatform: "location.location_platform",
			location.FieldCanonical:        "location.canonical",
			location.FieldCreatedAt:        "location.created_at",
			location.FieldUpdatedAt:        "location.updated_at",
		},
		Tiebreak: "location.location_id",

		OwnershipJoins: []string{
			"INNER JOIN publication ON location.publication_id = publication.publication_id",
			"INNER JOIN work ON publication.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol: "imprint.publisher_id",
		ParentCol:    "location.publication_id",

		HistoryTable:   "location_history",
		HistoryPK:      "location_history_id",
		HistoryKeyCols: []string{"location_id"},
		HistoryKeyValues: func(l location.Location) []any {
			return []any{l.LocationID}
		},
	}
}

func NewLocationRepository() *CrudRepository[location.Location, uuid.UUID, location.Field] {
	return NewCrudRepository(LocationBinding(), UUIDKey("location.location_id"))
}
