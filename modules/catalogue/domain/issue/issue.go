// Package issue defines the many-to-many edge between series and works: a
// work published as a numbered entry of a series, keyed by the composite
// (series, work). A valid issue's series and work always share an imprint.
package issue

import (
	"time"

	"github.com/google/uuid"
)

type Issue struct {
	SeriesID     uuid.UUID `db:"series_id" json:"seriesId"`
	WorkID       uuid.UUID `db:"work_id" json:"workId"`
	IssueOrdinal int       `db:"issue_ordinal" json:"issueOrdinal"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Key is the composite primary key.
type Key struct {
	SeriesID uuid.UUID
	WorkID   uuid.UUID
}

func (i Issue) Key() Key {
	return Key{SeriesID: i.SeriesID, WorkID: i.WorkID}
}

type NewIssue struct {
	SeriesID     uuid.UUID `validate:"required"`
	WorkID       uuid.UUID `validate:"required"`
	IssueOrdinal int       `validate:"min=1"`
}

type PatchIssue struct {
	SeriesID     uuid.UUID `validate:"required"`
	WorkID       uuid.UUID `validate:"required"`
	IssueOrdinal int       `validate:"min=1"`
}

func (n NewIssue) Entity(now time.Time) Issue {
	return Issue{
		SeriesID:     n.SeriesID,
		WorkID:       n.WorkID,
		IssueOrdinal: n.IssueOrdinal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p PatchIssue) PatchKey() Key {
	return Key{SeriesID: p.SeriesID, WorkID: p.WorkID}
}

func (p PatchIssue) Apply(current Issue, now time.Time) Issue {
	current.IssueOrdinal = p.IssueOrdinal
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldSeriesID Field = iota
	FieldWorkID
	FieldIssueOrdinal
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldIssueOrdinal }
