// Package contributor defines a person involved in the production of works.
// Contributors sit outside the ownership tree: they are shared across
// publishers and resolve to no owning publisher.
package contributor

import (
	"time"

	"github.com/google/uuid"
)

type Contributor struct {
	ContributorID uuid.UUID `db:"contributor_id" json:"contributorId"`
	FirstName     *string   `db:"first_name" json:"firstName"`
	LastName      string    `db:"last_name" json:"lastName"`
	FullName      string    `db:"full_name" json:"fullName"`
	ORCID         *string   `db:"orcid" json:"orcid"`
	Website       *string   `db:"website" json:"website"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

type NewContributor struct {
	FirstName *string
	LastName  string `validate:"required"`
	FullName  string `validate:"required"`
	ORCID     *string
	Website   *string `validate:"omitempty,url"`
}

type PatchContributor struct {
	ContributorID uuid.UUID `validate:"required"`
	FirstName     *string
	LastName      string `validate:"required"`
	FullName      string `validate:"required"`
	ORCID         *string
	Website       *string `validate:"omitempty,url"`
}

func (n NewContributor) Entity(id uuid.UUID, now time.Time) Contributor {
	return Contributor{
		ContributorID: id,
		FirstName:     n.FirstName,
		LastName:      n.LastName,
		FullName:      n.FullName,
		ORCID:         n.ORCID,
		Website:       n.Website,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p PatchContributor) Apply(current Contributor, now time.Time) Contributor {
	current.FirstName = p.FirstName
	current.LastName = p.LastName
	current.FullName = p.FullName
	current.ORCID = p.ORCID
	current.Website = p.Website
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldContributorID Field = iota
	FieldFirstName
	FieldLastName
	FieldFullName
	FieldORCID
	FieldWebsite
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldFullName }
