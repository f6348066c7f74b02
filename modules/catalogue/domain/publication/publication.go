// Package publication defines a manifestation of a work: one format in
// which the text is made available.
package publication

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePaperback Type = "paperback"
	TypeHardback  Type = "hardback"
	TypePDF       Type = "pdf"
	TypeHTML      Type = "html"
	TypeXML       Type = "xml"
	TypeEpub      Type = "epub"
	TypeMobi      Type = "mobi"
)

func (t Type) Valid() bool {
	switch t {
	case TypePaperback, TypeHardback, TypePDF, TypeHTML, TypeXML, TypeEpub, TypeMobi:
		return true
	}
	return false
}

// Digital reports whether the publication type is an electronic format.
// Canonical locations of digital publications must carry both URLs.
func (t Type) Digital() bool {
	return t != TypePaperback && t != TypeHardback
}

type Publication struct {
	PublicationID   uuid.UUID `db:"publication_id" json:"publicationId"`
	PublicationType Type      `db:"publication_type" json:"publicationType"`
	WorkID          uuid.UUID `db:"work_id" json:"workId"`
	ISBN            *string   `db:"isbn" json:"isbn"`
	PublicationURL  *string   `db:"publication_url" json:"publicationUrl"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

type NewPublication struct {
	PublicationType Type      `validate:"required"`
	WorkID          uuid.UUID `validate:"required"`
	ISBN            *string
	PublicationURL  *string `validate:"omitempty,url"`
}

type PatchPublication struct {
	PublicationID   uuid.UUID `validate:"required"`
	PublicationType Type      `validate:"required"`
	WorkID          uuid.UUID `validate:"required"`
	ISBN            *string
	PublicationURL  *string `validate:"omitempty,url"`
}

func (n NewPublication) Entity(id uuid.UUID, now time.Time) Publication {
	return Publication{
		PublicationID:   id,
		PublicationType: n.PublicationType,
		WorkID:          n.WorkID,
		ISBN:            n.ISBN,
		PublicationURL:  n.PublicationURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (p PatchPublication) Apply(current Publication, now time.Time) Publication {
	current.PublicationType = p.PublicationType
	current.WorkID = p.WorkID
	current.ISBN = p.ISBN
	current.PublicationURL = p.PublicationURL
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldPublicationID Field = iota
	FieldPublicationType
	FieldWorkID
	FieldISBN
	FieldPublicationURL
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldPublicationType }
