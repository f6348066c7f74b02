package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/work"
)

func WorkBinding() Binding[work.Work, work.Field] {
	return Binding[work.Work, work.Field]{
		Table: "work",
		Columns: []string{
			"work_id", "work_type", "work_status", "full_title", "title", "subtitle",
			"reference", "edition", "imprint_id", "doi", "publication_date", "place",
			"width", "height", "page_count", "page_breakdown", "first_page",
			"last_page", "page_interval", "image_count",
			"table_count", "audio_count", "video_count", "license", "copyright_holder",
			"landing_page", "lccn", "oclc", "short_abstract", "long_abstract",
			"general_note", "toc", "cover_url", "cover_caption", "created_at", "updated_at",
		},
		KeyCols: []string{"work_id"},
		Values: func(w work.Work) []any {
			return []any{
				w.WorkID, w.WorkType, w.WorkStatus, w.FullTitle, w.Title, w.Subtitle,
				w.Reference, w.Edition, w.ImprintID, w.DOI, w.PublicationDate, w.Place,
				w.Width, w.Height, w.PageCount, w.PageBreakdown, w.FirstPage,
				w.LastPage, w.PageInterval, w.ImageCount,
				w.TableCount, w.AudioCount, w.VideoCount, w.License, w.CopyrightHolder,
				w.LandingPage, w.LCCN, w.OCLC, w.ShortAbstract, w.LongAbstract,
				w.GeneralNote, w.TOC, w.CoverURL, w.CoverCaption, w.CreatedAt, w.UpdatedAt,
			}
		},
		FieldMap: map[work.Field]string{
			work.FieldWorkID:          "work.work_id",
			work.FieldWorkType:        "work.work_type",
			work.FieldWorkStatus:      "work.work_status",
			work.FieldFullTitle:       "work.full_title",
			work.FieldTitle:           "work.title",
			work.FieldEdition:         "work.edition",
			work.FieldDOI:             "work.doi",
			work.FieldPublicationDate: "work.publication_date",
			work.FieldImprintID:       "work.imprint_id",
			work.FieldCreatedAt:       "work.created_at",
			work.FieldUpdatedAt:       "work.updated_at",
		},
		SearchCols: []string{
			"work.full_title", "work.doi", "work.reference",
			"work.short_abstract", "work.long_abstract", "work.landing_page",
		},
		Tiebreak: "work.work_id",

		OwnershipJoins: []string{"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id"},
		PublisherCol:   "imprint.publisher_id",
		ParentCol:      "work.imprint_id",

		HistoryTable:   "work_history",
		HistoryPK:      "work_history_id",
		HistoryKeyCols: []string{"work_id"},
		HistoryKeyValues: func(w work.Work) []any {
			return []any{w.WorkID}
		},
	}
}

func NewWorkRepository() *CrudRepository[work.Work, uuid.UUID, work.Field] {
	return NewCrudRepository(WorkBinding(), UUIDKey("work.work_id"))
}
