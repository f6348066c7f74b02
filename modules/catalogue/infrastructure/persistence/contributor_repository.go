package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/contributor"
)

func ContributorBinding() Binding[contributor.Contributor, contributor.Field] {
	return Binding[contributor.Contributor, contributor.Field]{
		Table:   "contributor",
		Columns: []string{"contributor_id", "first_name", "last_name", "full_name", "orcid", "website", "created_at", "updated_at"},
		KeyCols: []string{"contributor_id"},
		Values: func(c contributor.Contributor) []any {
			return []any{c.ContributorID, c.FirstName, c.LastName, c.FullName, c.ORCID, c.Website, c.CreatedAt, c.UpdatedAt}
		},
		FieldMap: map[contributor.Field]string{
			contributor.FieldContributorID: "contributor.contributor_id",
			contributor.FieldFirstName:     "contributor.first_name",
			contributor.FieldLastName:      "contributor.last_name",
			contributor.FieldFullName:      "contributor.full_name",
			contributor.FieldORCID:         "contributor.orcid",
			contributor.FieldWebsite:       "contributor.website",
			contributor.FieldCreatedAt:     "contributor.created_at",
			contributor.FieldUpdatedAt:     "contributor.updated_at",
		},
		SearchCols: []string{"contributor.full_name", "contributor.orcid"},
		Tiebreak:   "contributor.contributor_id",

		HistoryTable:   "contributor_history",
		HistoryPK:      "contributor_history_id",
		HistoryKeyCols: []string{"contributor_id"},
		HistoryKeyValues: func(c contributor.Contributor) []any {
			return []any{c.ContributorID}
		},
	}
}

func NewContributorRepository() *CrudRepository[contributor.Contributor, uuid.UUID, contributor.Field] {
	return NewCrudRepository(ContributorBinding(), UUIDKey("contributor.contributor_id"))
}
