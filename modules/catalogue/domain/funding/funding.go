// Package funding defines a grant awarded by a funder towards the
// publication of a work.
package funding

import (
	"time"

	"github.com/google/uuid"
)

type Funding struct {
	FundingID        uuid.UUID `db:"funding_id" json:"fundingId"`
	WorkID           uuid.UUID `db:"work_id" json:"workId"`
	FunderID         uuid.UUID `db:"funder_id" json:"funderId"`
	Program          *string   `db:"program" json:"program"`
	ProjectName      *string   `db:"project_name" json:"projectName"`
	ProjectShortname *string   `db:"project_shortname" json:"projectShortname"`
	GrantNumber      *string   `db:"grant_number" json:"grantNumber"`
	Jurisdiction     *string   `db:"jurisdiction" json:"jurisdiction"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

type NewFunding struct {
	WorkID           uuid.UUID `validate:"required"`
	FunderID         uuid.UUID `validate:"required"`
	Program          *string
	ProjectName      *string
	ProjectShortname *string
	GrantNumber      *string
	Jurisdiction     *string
}

type PatchFunding struct {
	FundingID        uuid.UUID `validate:"required"`
	WorkID           uuid.UUID `validate:"required"`
	FunderID         uuid.UUID `validate:"required"`
	Program          *string
	ProjectName      *string
	ProjectShortname *string
	GrantNumber      *string
	Jurisdiction     *string
}

func (n NewFunding) Entity(id uuid.UUID, now time.Time) Funding {
	return Funding{
		FundingID:        id,
		WorkID:           n.WorkID,
		FunderID:         n.FunderID,
		Program:          n.Program,
		ProjectName:      n.ProjectName,
		ProjectShortname: n.ProjectShortname,
		GrantNumber:      n.GrantNumber,
		Jurisdiction:     n.Jurisdiction,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (p PatchFunding) Apply(current Funding, now time.Time) Funding {
	current.WorkID = p.WorkID
	current.FunderID = p.FunderID
	current.Program = p.Program
	current.ProjectName = p.ProjectName
	current.ProjectShortname = p.ProjectShortname
	current.GrantNumber = p.GrantNumber
	current.Jurisdiction = p.Jurisdiction
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldFundingID Field = iota
	FieldWorkID
	FieldFunderID
	FieldProgram
	FieldProjectName
	FieldGrantNumber
	FieldJurisdiction
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldProgram }
