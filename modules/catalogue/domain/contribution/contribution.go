// Package contribution defines the many-to-many edge between works and
// contributors: one person's involvement in a work, keyed by the composite
// (work, contributor, contribution type).
package contribution

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAuthor         Type = "author"
	TypeEditor         Type = "editor"
	TypeTranslator     Type = "translator"
	TypePhotographer   Type = "photographer"
	TypeIllustrator    Type = "illustrator"
	TypeMusicEditor    Type = "music-editor"
	TypeForewordBy     Type = "foreword-by"
	TypeIntroductionBy Type = "introduction-by"
	TypeAfterwordBy    Type = "afterword-by"
	TypePrefaceBy      Type = "preface-by"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAuthor, TypeEditor, TypeTranslator, TypePhotographer, TypeIllustrator,
		TypeMusicEditor, TypeForewordBy, TypeIntroductionBy, TypeAfterwordBy, TypePrefaceBy:
		return true
	}
	return false
}

type Contribution struct {
	WorkID           uuid.UUID `db:"work_id" json:"workId"`
	ContributorID    uuid.UUID `db:"contributor_id" json:"contributorId"`
	ContributionType Type      `db:"contribution_type" json:"contributionType"`
	MainContribution bool      `db:"main_contribution" json:"mainContribution"`
	Biography        *string   `db:"biography" json:"biography"`
	Institution      *string   `db:"institution" json:"institution"`
	FirstName        *string   `db:"first_name" json:"firstName"`
	LastName         string    `db:"last_name" json:"lastName"`
	FullName         string    `db:"full_name" json:"fullName"`
	ContributionOrdinal int    `db:"contribution_ordinal" json:"contributionOrdinal"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// Key is the composite primary key.
type Key struct {
	WorkID           uuid.UUID
	ContributorID    uuid.UUID
	ContributionType Type
}

func (c Contribution) Key() Key {
	return Key{WorkID: c.WorkID, ContributorID: c.ContributorID, ContributionType: c.ContributionType}
}

type NewContribution struct {
	WorkID           uuid.UUID `validate:"required"`
	ContributorID    uuid.UUID `validate:"required"`
	ContributionType Type      `validate:"required"`
	MainContribution bool
	Biography        *string
	Institution      *string
	FirstName        *string
	LastName         string `validate:"required"`
	FullName         string `validate:"required"`
	ContributionOrdinal int `validate:"min=1"`
}

// PatchContribution replaces the mutable attributes of the edge; the
// composite key itself is immutable (delete and recreate to re-link).
type PatchContribution struct {
	WorkID           uuid.UUID `validate:"required"`
	ContributorID    uuid.UUID `validate:"required"`
	ContributionType Type      `validate:"required"`
	MainContribution bool
	Biography        *string
	Institution      *string
	FirstName        *string
	LastName         string `validate:"required"`
	FullName         string `validate:"required"`
	ContributionOrdinal int `validate:"min=1"`
}

func (n NewContribution) Entity(now time.Time) Contribution {
	return Contribution{
		WorkID:              n.WorkID,
		ContributorID:       n.ContributorID,
		ContributionType:    n.ContributionType,
		MainContribution:    n.MainContribution,
		Biography:           n.Biography,
		Institution:         n.Institution,
		FirstName:           n.FirstName,
		LastName:            n.LastName,
		FullName:            n.FullName,
		ContributionOrdinal: n.ContributionOrdinal,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (p PatchContribution) PatchKey() Key {
	return Key{WorkID: p.WorkID, ContributorID: p.ContributorID, ContributionType: p.ContributionType}
}

func (p PatchContribution) Apply(current Contribution, now time.Time) Contribution {
	current.MainContribution = p.MainContribution
	current.Biography = p.Biography
	current.Institution = p.Institution
	current.FirstName = p.FirstName
	current.LastName = p.LastName
	current.FullName = p.FullName
	current.ContributionOrdinal = p.ContributionOrdinal
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldWorkID Field = iota
	FieldContributorID
	FieldContributionType
	FieldMainContribution
	FieldBiography
	FieldInstitution
	FieldFirstName
	FieldLastName
	FieldFullName
	FieldContributionOrdinal
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldContributionType }
