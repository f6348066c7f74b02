// Package location defines an access point of a publication on a hosting
// platform. Every publication has at most one canonical location; alternate
// locations may only exist once the canonical one does.
package location

import (
	"time"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformProjectMuse  Platform = "project-muse"
	PlatformOAPENLibrary Platform = "oapen-library"
	PlatformDOAB         Platform = "doab"
	PlatformJSTOR        Platform = "jstor"
	PlatformEBSCOHost    Platform = "ebsco-host"
	PlatformOCLCKB       Platform = "oclc-kb"
	PlatformProquestKB   Platform = "proquest-kb"
	PlatformGoogleBooks  Platform = "google-books"
	PlatformInternetArchive Platform = "internet-archive"
	PlatformScienceOpen  Platform = "science-open"
	PlatformSciELOBooks  Platform = "scielo-books"
	PlatformOther        Platform = "other"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformProjectMuse, PlatformOAPENLibrary, PlatformDOAB, PlatformJSTOR,
		PlatformEBSCOHost, PlatformOCLCKB, PlatformProquestKB, PlatformGoogleBooks,
		PlatformInternetArchive, PlatformScienceOpen, PlatformSciELOBooks, PlatformOther:
		return true
	}
	return false
}

type Location struct {
	LocationID       uuid.UUID `db:"location_id" json:"locationId"`
	PublicationID    uuid.UUID `db:"publication_id" json:"publicationId"`
	LandingPage      *string   `db:"landing_page" json:"landingPage"`
	FullTextURL      *string   `db:"full_text_url" json:"fullTextUrl"`
	LocationPlatform Platform  `db:"location_platform" json:"locationPlatform"`
	Canonical        bool      `db:"canonical" json:"canonical"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

type NewLocation struct {
	PublicationID    uuid.UUID `validate:"required"`
	LandingPage      *string   `validate:"omitempty,url"`
	FullTextURL      *string   `validate:"omitempty,url"`
	LocationPlatform Platform  `validate:"required"`
	Canonical        bool
}

type PatchLocation struct {
	LocationID       uuid.UUID `validate:"required"`
	PublicationID    uuid.UUID `validate:"required"`
	LandingPage      *string   `validate:"omitempty,url"`
	FullTextURL      *string   `validate:"omitempty,url"`
	LocationPlatform Platform  `validate:"required"`
	Canonical        bool
}

func (n NewLocation) Entity(id uuid.UUID, now time.Time) Location {
	return Location{
		LocationID:       id,
		PublicationID:    n.PublicationID,
		LandingPage:      n.LandingPage,
		FullTextURL:      n.FullTextURL,
		LocationPlatform: n.LocationPlatform,
		Canonical:        n.Canonical,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (p PatchLocation) Apply(current Location, now time.Time) Location {
	current.PublicationID = p.PublicationID
	current.LandingPage = p.LandingPage
	current.FullTextURL = p.FullTextURL
	current.LocationPlatform = p.LocationPlatform
	current.Canonical = p.Canonical
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldLocationID Field = iota
	FieldPublicationID
	FieldLandingPage
	FieldFullTextURL
	FieldLocationPlatform
	FieldCanonical
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldLocationPlatform }
