package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/series"
)

func SeriesBinding() Binding[series.Series, series.Field] {
	return Binding[series.Series, series.Field]{
		Table: "series",
		Columns: []string{
			"series_id", "series_type", "series_name", "issn_print", "issn_digital",
			"series_url", "imprint_id", "created_at", "updated_at",
		},
		KeyCols: []string{"series_id"},
		Values: func(s series.Series) []any {
			return []any{
				s.SeriesID, s.SeriesType, s.SeriesName, s.ISSNPrint, s.ISSNDigital,
				s.SeriesURL, s.ImprintID, s.CreatedAt, s.UpdatedAt,
			}
		},
		FieldMap: map[series.Field]string{
			series.FieldSeriesID:    "series.series_id",
			series.FieldSeriesType:  "series.series_type",
			series.FieldSeriesName:  "series.series_name",
			series.FieldISSNPrint:   "series.issn_print",
			series.FieldISSNDigital: "series.issn_digital",
			series.FieldSeriesURL:   "series.series_url",
			series.FieldImprintID:   "series.imprint_id",
			series.FieldCreatedAt:   "series.created_at",
			series.FieldUpdatedAt:   "series.updated_at",
		},
		SearchCols: []string{"series.series_name", "series.issn_print", "series.issn_digital", "series.series_url"},
		Tiebreak:   "series.series_id",

		OwnershipJoins: []string{"INNER JOIN imprint ON series.imprint_id = imprint.imprint_id"},
		PublisherCol:   "imprint.publisher_id",
		ParentCol:      "series.imprint_id",

		HistoryTable:   "series_history",
		HistoryPK:      "series_history_id",
		HistoryKeyCols: []string{"series_id"},
		HistoryKeyValues: func(s series.Series) []any {
			return []any{s.SeriesID}
		},
	}
}

func NewSeriesRepository() *CrudRepository[series.Series, uuid.UUID, series.Field] {
	return NewCrudRepository(SeriesBinding(), UUIDKey("series.series_id"))
}
