// Package imprint defines the brand under which a publisher issues works.
package imprint

import (
	"time"

	"github.com/google/uuid"
)

type Imprint struct {
	ImprintID   uuid.UUID `db:"imprint_id" json:"imprintId"`
	PublisherID uuid.UUID `db:"publisher_id" json:"publisherId"`
	ImprintName string    `db:"imprint_name" json:"imprintName"`
	ImprintURL  *string   `db:"imprint_url" json:"imprintUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type NewImprint struct {
	PublisherID uuid.UUID `validate:"required"`
	ImprintName string    `validate:"required"`
	ImprintURL  *string   `validate:"omitempty,url"`
}

type PatchImprint struct {
	ImprintID   uuid.UUID `validate:"required"`
	PublisherID uuid.UUID `validate:"required"`
	ImprintName string    `validate:"required"`
	ImprintURL  *string   `validate:"omitempty,url"`
}

func (n NewImprint) Entity(id uuid.UUID, now time.Time) Imprint {
	return Imprint{
		ImprintID:   id,
		PublisherID: n.PublisherID,
		ImprintName: n.ImprintName,
		ImprintURL:  n.ImprintURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p PatchImprint) Apply(current Imprint, now time.Time) Imprint {
	current.PublisherID = p.PublisherID
	current.ImprintName = p.ImprintName
	current.ImprintURL = p.ImprintURL
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldImprintID Field = iota
	FieldImprintName
	FieldImprintURL
	FieldPublisherID
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldImprintName }
