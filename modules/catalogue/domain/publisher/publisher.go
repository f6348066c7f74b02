// Package publisher defines the top-level owner of the catalogue's
// ownership tree. Creating a publisher is the only unscoped mutation and
// requires superuser access.
package publisher

import (
	"time"

	"github.com/google/uuid"
)

type Publisher struct {
	PublisherID        uuid.UUID `db:"publisher_id" json:"publisherId"`
	PublisherName      string    `db:"publisher_name" json:"publisherName"`
	PublisherShortname *string   `db:"publisher_shortname" json:"publisherShortname"`
	PublisherURL       *string   `db:"publisher_url" json:"publisherUrl"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

type NewPublisher struct {
	PublisherName      string  `validate:"required"`
	PublisherShortname *string
	PublisherURL       *string `validate:"omitempty,url"`
}

// PatchPublisher is a full replacement of the mutable fields, identified by
// primary key.
type PatchPublisher struct {
	PublisherID        uuid.UUID `validate:"required"`
	PublisherName      string    `validate:"required"`
	PublisherShortname *string
	PublisherURL       *string `validate:"omitempty,url"`
}

func (n NewPublisher) Entity(id uuid.UUID, now time.Time) Publisher {
	return Publisher{
		PublisherID:        id,
		PublisherName:      n.PublisherName,
		PublisherShortname: n.PublisherShortname,
		PublisherURL:       n.PublisherURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (p PatchPublisher) Apply(current Publisher, now time.Time) Publisher {
	current.PublisherName = p.PublisherName
	current.PublisherShortname = p.PublisherShortname
	current.PublisherURL = p.PublisherURL
	current.UpdatedAt = now
	return current
}

// Field enumerates the sortable and filterable fields.
type Field int

const (
	FieldPublisherID Field = iota
	FieldPublisherName
	FieldPublisherShortname
	FieldPublisherURL
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldPublisherName }
