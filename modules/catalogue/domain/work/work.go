// Package work defines the central catalogue entity: a written text that
// can be published.
package work

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeMonograph    Type = "monograph"
	TypeEditedBook   Type = "edited-book"
	TypeTextbook     Type = "textbook"
	TypeJournalIssue Type = "journal-issue"
	TypeBookSet      Type = "book-set"
	TypeBookChapter  Type = "book-chapter"
)

func (t Type) Valid() bool {
	switch t {
	case TypeMonograph, TypeEditedBook, TypeTextbook, TypeJournalIssue, TypeBookSet, TypeBookChapter:
		return true
	}
	return false
}

type Status string

const (
	StatusUnspecified            Status = "unspecified"
	StatusCancelled              Status = "cancelled"
	StatusForthcoming            Status = "forthcoming"
	StatusPostponedIndefinitely  Status = "postponed-indefinitely"
	StatusActive                 Status = "active"
	StatusNoLongerOurProduct     Status = "no-longer-our-product"
	StatusOutOfStockIndefinitely Status = "out-of-stock-indefinitely"
	StatusOutOfPrint             Status = "out-of-print"
	StatusInactive               Status = "inactive"
	StatusUnknown                Status = "unknown"
	StatusRemaindered            Status = "remaindered"
	StatusWithdrawnFromSale      Status = "withdrawn-from-sale"
	StatusRecalled               Status = "recalled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUnspecified, StatusCancelled, StatusForthcoming, StatusPostponedIndefinitely,
		StatusActive, StatusNoLongerOurProduct, StatusOutOfStockIndefinitely, StatusOutOfPrint,
		StatusInactive, StatusUnknown, StatusRemaindered, StatusWithdrawnFromSale, StatusRecalled:
		return true
	}
	return false
}

type Work struct {
	WorkID          uuid.UUID  `db:"work_id" json:"workId"`
	WorkType        Type       `db:"work_type" json:"workType"`
	WorkStatus      Status     `db:"work_status" json:"workStatus"`
	FullTitle       string     `db:"full_title" json:"fullTitle"`
	Title           string     `db:"title" json:"title"`
	Subtitle        *string    `db:"subtitle" json:"subtitle"`
	Reference       *string    `db:"reference" json:"reference"`
	Edition         int        `db:"edition" json:"edition"`
	ImprintID       uuid.UUID  `db:"imprint_id" json:"imprintId"`
	DOI             *string    `db:"doi" json:"doi"`
	PublicationDate *time.Time `db:"publication_date" json:"publicationDate"`
	Place           *string    `db:"place" json:"place"`
	Width           *int       `db:"width" json:"width"`
	Height          *int       `db:"height" json:"height"`
	PageCount       *int       `db:"page_count" json:"pageCount"`
	PageBreakdown   *string    `db:"page_breakdown" json:"pageBreakdown"`
	FirstPage       *string    `db:"first_page" json:"firstPage"`
	LastPage        *string    `db:"last_page" json:"lastPage"`
	PageInterval    *string    `db:"page_interval" json:"pageInterval"`
	ImageCount      *int       `db:"image_count" json:"imageCount"`
	TableCount      *int       `db:"table_count" json:"tableCount"`
	AudioCount      *int       `db:"audio_count" json:"audioCount"`
	VideoCount      *int       `db:"video_count" json:"videoCount"`
	License         *string    `db:"license" json:"license"`
	CopyrightHolder string     `db:"copyright_holder" json:"copyrightHolder"`
	LandingPage     *string    `db:"landing_page" json:"landingPage"`
	LCCN            *string    `db:"lccn" json:"lccn"`
	OCLC            *string    `db:"oclc" json:"oclc"`
	ShortAbstract   *string    `db:"short_abstract" json:"shortAbstract"`
	LongAbstract    *string    `db:"long_abstract" json:"longAbstract"`
	GeneralNote     *string    `db:"general_note" json:"generalNote"`
	TOC             *string    `db:"toc" json:"toc"`
	CoverURL        *string    `db:"cover_url" json:"coverUrl"`
	CoverCaption    *string    `db:"cover_caption" json:"coverCaption"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

type NewWork struct {
	WorkType        Type   `validate:"required"`
	WorkStatus      Status `validate:"required"`
	FullTitle       string `validate:"required"`
	Title           string `validate:"required"`
	Subtitle        *string
	Reference       *string
	Edition         int       `validate:"min=1"`
	ImprintID       uuid.UUID `validate:"required"`
	DOI             *string
	PublicationDate *time.Time
	Place           *string
	Width           *int
	Height          *int
	PageCount       *int
	PageBreakdown   *string
	FirstPage       *string
	LastPage        *string
	PageInterval    *string
	ImageCount      *int
	TableCount      *int
	AudioCount      *int
	VideoCount      *int
	License         *string
	CopyrightHolder string `validate:"required"`
	LandingPage     *string
	LCCN            *string
	OCLC            *string
	ShortAbstract   *string
	LongAbstract    *string
	GeneralNote     *string
	TOC             *string
	CoverURL        *string
	CoverCaption    *string
}

type PatchWork struct {
	WorkID          uuid.UUID `validate:"required"`
	WorkType        Type      `validate:"required"`
	WorkStatus      Status    `validate:"required"`
	FullTitle       string    `validate:"required"`
	Title           string    `validate:"required"`
	Subtitle        *string
	Reference       *string
	Edition         int       `validate:"min=1"`
	ImprintID       uuid.UUID `validate:"required"`
	DOI             *string
	PublicationDate *time.Time
	Place           *string
	Width           *int
	Height          *int
	PageCount       *int
	PageBreakdown   *string
	FirstPage       *string
	LastPage        *string
	PageInterval    *string
	ImageCount      *int
	TableCount      *int
	AudioCount      *int
	VideoCount      *int
	License         *string
	CopyrightHolder string `validate:"required"`
	LandingPage     *string
	LCCN            *string
	OCLC            *string
	ShortAbstract   *string
	LongAbstract    *string
	GeneralNote     *string
	TOC             *string
	CoverURL        *string
	CoverCaption    *string
}

func (n NewWork) Entity(id uuid.UUID, now time.Time) Work {
	return Work{
		WorkID:          id,
		WorkType:        n.WorkType,
		WorkStatus:      n.WorkStatus,
		FullTitle:       n.FullTitle,
		Title:           n.Title,
		Subtitle:        n.Subtitle,
		Reference:       n.Reference,
		Edition:         n.Edition,
		ImprintID:       n.ImprintID,
		DOI:             n.DOI,
		PublicationDate: n.PublicationDate,
		Place:           n.Place,
		Width:           n.Width,
		Height:          n.Height,
		PageCount:       n.PageCount,
		PageBreakdown:   n.PageBreakdown,
		FirstPage:       n.FirstPage,
		LastPage:        n.LastPage,
		PageInterval:    n.PageInterval,
		ImageCount:      n.ImageCount,
		TableCount:      n.TableCount,
		AudioCount:      n.AudioCount,
		VideoCount:      n.VideoCount,
		License:         n.License,
		CopyrightHolder: n.CopyrightHolder,
		LandingPage:     n.LandingPage,
		LCCN:            n.LCCN,
		OCLC:            n.OCLC,
		ShortAbstract:   n.ShortAbstract,
		LongAbstract:    n.LongAbstract,
		GeneralNote:     n.GeneralNote,
		TOC:             n.TOC,
		CoverURL:        n.CoverURL,
		CoverCaption:    n.CoverCaption,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (p PatchWork) Apply(current Work, now time.Time) Work {
	current.WorkType = p.WorkType
	current.WorkStatus = p.WorkStatus
	current.FullTitle = p.FullTitle
	current.Title = p.Title
	current.Subtitle = p.Subtitle
	current.Reference = p.Reference
	current.Edition = p.Edition
	current.ImprintID = p.ImprintID
	current.DOI = p.DOI
	current.PublicationDate = p.PublicationDate
	current.Place = p.Place
	current.Width = p.Width
	current.Height = p.Height
	current.PageCount = p.PageCount
	current.PageBreakdown = p.PageBreakdown
	current.FirstPage = p.FirstPage
	current.LastPage = p.LastPage
	current.PageInterval = p.PageInterval
	current.ImageCount = p.ImageCount
	current.TableCount = p.TableCount
	current.AudioCount = p.AudioCount
	current.VideoCount = p.VideoCount
	current.License = p.License
	current.CopyrightHolder = p.CopyrightHolder
	current.LandingPage = p.LandingPage
	current.LCCN = p.LCCN
	current.OCLC = p.OCLC
	current.ShortAbstract = p.ShortAbstract
	current.LongAbstract = p.LongAbstract
	current.GeneralNote = p.GeneralNote
	current.TOC = p.TOC
	current.CoverURL = p.CoverURL
	current.CoverCaption = p.CoverCaption
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldWorkID Field = iota
	FieldWorkType
	FieldWorkStatus
	FieldFullTitle
	FieldTitle
	FieldEdition
	FieldDOI
	FieldPublicationDate
	FieldImprintID
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldFullTitle }
