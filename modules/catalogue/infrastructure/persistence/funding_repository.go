package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/funding"
)

func FundingBinding() Binding[funding.Funding, funding.Field] {
	return Binding[funding.Funding, funding.Field]{
		Table: "funding",
		Columns: []string{
			"funding_id", "work_id", "funder_id", "program", "project_name",
			"project_shortname", "grant_number", "jurisdiction", "created_at", "updated_at",
		},
		KeyCols: []string{"funding_id"},
		Values: func(f funding.Funding) []any {
			return []any{
				f.FundingID, f.WorkID, f.FunderID, f.Program, f.ProjectName,
				f.ProjectShortname, f.GrantNumber, f.Jurisdiction, f.CreatedAt, f.UpdatedAt,
			}
		},
		FieldMap: map[funding.Field]string{
			funding.FieldFundingID:    "funding.funding_id",
			funding.FieldWorkID:       "funding.work_id",
			funding.FieldFunderID:     "funding.funder_id",
			funding.FieldProgram:      "funding.program",
			funding.FieldProjectName:  "funding.project_name",
			funding.FieldGrantNumber:  "funding.grant_number",
			funding.FieldJurisdiction: "funding.jurisdiction",
			funding.FieldCreatedAt:    "funding.created_at",
			funding.FieldUpdatedAt:    "funding.updated_at",
		},
		Tiebreak: "funding.funding_id",

		OwnershipJoins: []string{
			"INNER JOIN work ON funding.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol:    "imprint.publisher_id",
		ParentCol:       "funding.work_id",
		SecondParentCol: "funding.funder_id",

		HistoryTable:   "funding_history",
		HistoryPK:      "funding_history_id",
		HistoryKeyCols: []string{"funding_id"},
		HistoryKeyValues: func(f funding.Funding) []any {
			return []any{f.FundingID}
		},
	}
}

func NewFundingRepository() *CrudRepository[funding.Funding, uuid.UUID, funding.Field] {
	return NewCrudRepository(FundingBinding(), UUIDKey("funding.funding_id"))
}
