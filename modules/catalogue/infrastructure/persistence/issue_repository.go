package persistence

import (
	"fmt"

	"github.com/colophon-press/colophon/modules/catalogue/domain/issue"
)

func IssueBinding() Binding[issue.Issue, issue.Field] {
	return Binding[issue.Issue, issue.Field]{
		Table:   "issue",
		Columns: []string{"series_id", "work_id", "issue_ordinal", "created_at", "updated_at"},
		KeyCols: []string{"series_id", "work_id"},
		Values: func(i issue.Issue) []any {
			return []any{i.SeriesID, i.WorkID, i.IssueOrdinal, i.CreatedAt, i.UpdatedAt}
		},
		FieldMap: map[issue.Field]string{
			issue.FieldSeriesID:     "issue.series_id",
			issue.FieldWorkID:       "issue.work_id",
			issue.FieldIssueOrdinal: "issue.issue_ordinal",
			issue.FieldCreatedAt:    "issue.created_at",
			issue.FieldUpdatedAt:    "issue.updated_at",
		},
		Tiebreak: "issue.series_id, issue.work_id",

		OwnershipJoins: []string{
			"INNER JOIN series ON issue.series_id = series.series_id",
			"INNER JOIN imprint ON series.imprint_id = imprint.imprint_id",
		},
		PublisherCol:    "imprint.publisher_id",
		ParentCol:       "issue.series_id",
		SecondParentCol: "issue.work_id",

		HistoryTable:   "issue_history",
		HistoryPK:      "issue_history_id",
		HistoryKeyCols: []string{"series_id", "work_id"},
		HistoryKeyValues: func(i issue.Issue) []any {
			return []any{i.SeriesID, i.WorkID}
		},
	}
}

func issueKeyWhere(key issue.Key, start int) (string, []any) {
	cond := fmt.Sprintf("issue.series_id = $%d AND issue.work_id = $%d", start, start+1)
	return cond, []any{key.SeriesID, key.WorkID}
}

func NewIssueRepository() *CrudRepository[issue.Issue, issue.Key, issue.Field] {
	return NewCrudRepository(IssueBinding(), issueKeyWhere)
}
