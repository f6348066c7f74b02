// Package funder defines an organisation that pays for the publication of
// works. Funders, like contributors, sit outside the ownership tree.
package funder

import (
	"time"

	"github.com/google/uuid"
)

type Funder struct {
	FunderID   uuid.UUID `db:"funder_id" json:"funderId"`
	FunderName string    `db:"funder_name" json:"funderName"`
	FunderDOI  *string   `db:"funder_doi" json:"funderDoi"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type NewFunder struct {
	FunderName string  `validate:"required"`
	FunderDOI  *string `validate:"omitempty,url"`
}

type PatchFunder struct {
	FunderID   uuid.UUID `validate:"required"`
	FunderName string    `validate:"required"`
	FunderDOI  *string   `validate:"omitempty,url"`
}

func (n NewFunder) Entity(id uuid.UUID, now time.Time) Funder {
	return Funder{
		FunderID:   id,
		FunderName: n.FunderName,
		FunderDOI:  n.FunderDOI,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p PatchFunder) Apply(current Funder, now time.Time) Funder {
	current.FunderName = p.FunderName
	current.FunderDOI = p.FunderDOI
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldFunderID Field = iota
	FieldFunderName
	FieldFunderDOI
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldFunderName }
