package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/subject"
)

func SubjectBinding() Binding[subject.Subject, subject.Field] {
	return Binding[subject.Subject, subject.Field]{
		Table:   "subject",
		Columns: []string{"subject_id", "work_id", "subject_type", "subject_code", "subject_ordinal", "created_at", "updated_at"},
		KeyCols: []string{"subject_id"},
		Values: func(s subject.Subject) []any {
			return []any{s.SubjectID, s.WorkID, s.SubjectType, s.SubjectCode, s.SubjectOrdinal, s.CreatedAt, s.UpdatedAt}
		},
		FieldMap: map[subject.Field]string{
			subject.FieldSubjectID:      "subject.subject_id",
			subject.FieldWorkID:         "subject.work_id",
			subject.FieldSubjectType:    "subject.subject_type",
			subject.FieldSubjectCode:    "subject.subject_code",
			subject.FieldSubjectOrdinal: "subject.subject_ordinal",
			subject.FieldCreatedAt:      "subject.created_at",
			subject.FieldUpdatedAt:      "subject.updated_at",
		},
		SearchCols: []string{"subject.subject_code"},
		Tiebreak:   "subject.subject_id",

		OwnershipJoins: []string{
			"INNER JOIN work ON subject.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol: "imprint.publisher_id",
		ParentCol:    "subject.work_id",

		HistoryTable:   "subject_history",
		HistoryPK:      "subject_history_id",
		HistoryKeyCols: []string{"subject_id"},
		HistoryKeyValues: func(s subject.Subject) []any {
			return []any{s.SubjectID}
		},
	}
}

func NewSubjectRepository() *CrudRepository[subject.Subject, uuid.UUID, subject.Field] {
	return NewCrudRepository(SubjectBinding(), UUIDKey("subject.subject_id"))
}
