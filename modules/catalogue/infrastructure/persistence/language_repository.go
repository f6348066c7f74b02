package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/language"
)

func LanguageBinding() Binding[language.Language, language.Field] {
	return Binding[language.Language, language.Field]{
		Table:   "language",
		Columns: []string{"language_id", "work_id", "language_code", "language_relation", "main_language", "created_at", "updated_at"},
		KeyCols: []string{"language_id"},
		Values: func(l language.Language) []any {
			return []any{l.LanguageID, l.WorkID, l.LanguageCode, l.LanguageRelation, l.MainLanguage, l.CreatedAt, l.UpdatedAt}
		},
		FieldMap: map[language.Field]string{
			language.FieldLanguageID:       "language.language_id",
			language.FieldWorkID:           "language.work_id",
			language.FieldLanguageCode:     "language.language_code",
			language.FieldLanguageRelation: "language.language_relation",
			language.FieldMainLanguage:     "language.main_language",
			language.FieldCreatedAt:        "language.created_at",
			language.FieldUpdatedAt:        "language.updated_at",
		},
		Tiebreak: "language.language_id",

		OwnershipJoins: []string{
			"INNER JOIN work ON language.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol: "imprint.publisher_id",
		ParentCol:    "language.work_id",

		HistoryTable:   "language_history",
		HistoryPK:      "language_history_id",
		HistoryKeyCols: []string{"language_id"},
		HistoryKeyValues: func(l language.Language) []any {
			return []any{l.LanguageID}
		},
	}
}

func NewLanguageRepository() *CrudRepository[language.Language, uuid.UUID, language.Field] {
	return NewCrudRepository(LanguageBinding(), UUIDKey("language.language_id"))
}
