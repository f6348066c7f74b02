// Package series defines a periodical of works about a particular subject.
package series

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeJournal    Type = "journal"
	TypeBookSeries Type = "book-series"
)

func (t Type) Valid() bool {
	return t == TypeJournal || t == TypeBookSeries
}

type Series struct {
	SeriesID    uuid.UUID `db:"series_id" json:"seriesId"`
	SeriesType  Type      `db:"series_type" json:"seriesType"`
	SeriesName  string    `db:"series_name" json:"seriesName"`
	ISSNPrint   string    `db:"issn_print" json:"issnPrint"`
	ISSNDigital string    `db:"issn_digital" json:"issnDigital"`
	SeriesURL   *string   `db:"series_url" json:"seriesUrl"`
	ImprintID   uuid.UUID `db:"imprint_id" json:"imprintId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type NewSeries struct {
	SeriesType  Type   `validate:"required"`
	SeriesName  string `validate:"required"`
	ISSNPrint   string `validate:"required"`
	ISSNDigital string `validate:"required"`
	SeriesURL   *string `validate:"omitempty,url"`
	ImprintID   uuid.UUID `validate:"required"`
}

type PatchSeries struct {
	SeriesID    uuid.UUID `validate:"required"`
	SeriesType  Type      `validate:"required"`
	SeriesName  string    `validate:"required"`
	ISSNPrint   string    `validate:"required"`
	ISSNDigital string    `validate:"required"`
	SeriesURL   *string   `validate:"omitempty,url"`
	ImprintID   uuid.UUID `validate:"required"`
}

func (n NewSeries) Entity(id uuid.UUID, now time.Time) Series {
	return Series{
		SeriesID:    id,
		SeriesType:  n.SeriesType,
		SeriesName:  n.SeriesName,
		ISSNPrint:   n.ISSNPrint,
		ISSNDigital: n.ISSNDigital,
		SeriesURL:   n.SeriesURL,
		ImprintID:   n.ImprintID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p PatchSeries) Apply(current Series, now time.Time) Series {
	current.SeriesType = p.SeriesType
	current.SeriesName = p.SeriesName
	current.ISSNPrint = p.ISSNPrint
	current.ISSNDigital = p.ISSNDigital
	current.SeriesURL = p.SeriesURL
	current.ImprintID = p.ImprintID
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldSeriesID Field = iota
	FieldSeriesType
	FieldSeriesName
	FieldISSNPrint
	FieldISSNDigital
	FieldSeriesURL
	FieldImprintID
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldSeriesName }
