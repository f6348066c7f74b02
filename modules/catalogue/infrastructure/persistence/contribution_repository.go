package persistence

import (
	"fmt"

	"github.com/colophon-press/colophon/modules/catalogue/domain/contribution"
)

func ContributionBinding() Binding[contribution.Contribution, contribution.Field] {
	return Binding[contribution.Contribution, contribution.Field]{
		Table: "contribution",
		Columns: []string{
			"work_id", "contributor_id", "contribution_type", "main_contribution",
			"biography", "institution", "first_name", "last_name", "full_name",
			"contribution_ordinal", "created_at", "updated_at",
		},
		KeyCols: []string{"work_id", "contributor_id", "contribution_type"},
		Values: func(c contribution.Contribution) []any {
			return []any{
				c.WorkID, c.ContributorID, c.ContributionType, c.MainContribution,
				c.Biography, c.Institution, c.FirstName, c.LastName, c.FullName,
				c.ContributionOrdinal, c.CreatedAt, c.UpdatedAt,
			}
		},
		FieldMap: map[contribution.Field]string{
			contribution.FieldWorkID:              "contribution.work_id",
			contribution.FieldContributorID:       "contribution.contributor_id",
			contribution.FieldContributionType:    "contribution.contribution_type",
			contribution.FieldMainContribution:    "contribution.main_contribution",
			contribution.FieldBiography:           "contribution.biography",
			contribution.FieldInstitution:         "contribution.institution",
			contribution.FieldFirstName:           "contribution.first_name",
			contribution.FieldLastName:            "contribution.last_name",
			contribution.FieldFullName:            "contribution.full_name",
			contribution.FieldContributionOrdinal: "contribution.contribution_ordinal",
			contribution.FieldCreatedAt:           "contribution.created_at",
			contribution.FieldUpdatedAt:           "contribution.updated_at",
		},
		Tiebreak: "contribution.work_id, contribution.contributor_id, contribution.contribution_type",

		OwnershipJoins: []string{
			"INNER JOIN work ON contribution.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol:    "imprint.publisher_id",
		ParentCol:       "contribution.work_id",
		SecondParentCol: "contribution.contributor_id",

		HistoryTable:   "contribution_history",
		HistoryPK:      "contribution_history_id",
		HistoryKeyCols: []string{"work_id", "contributor_id", "contribution_type"},
		HistoryKeyValues: func(c contribution.Contribution) []any {
			return []any{c.WorkID, c.ContributorID, c.ContributionType}
		},
	}
}

func contributionKeyWhere(key contribution.Key, start int) (string, []any) {
	cond := fmt.Sprintf(
		"contribution.work_id = $%d AND contribution.contributor_id = $%d AND contribution.contribution_type = $%d",
		start, start+1, start+2,
	)
	return cond, []any{key.WorkID, key.ContributorID, key.ContributionType}
}

func NewContributionRepository() *CrudRepository[contribution.Contribution, contribution.Key, contribution.Field] {
	return NewCrudRepository(ContributionBinding(), contributionKeyWhere)
}
