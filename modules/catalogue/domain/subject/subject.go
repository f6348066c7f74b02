// Package subject defines a discipline or term classifying a work, under
// one of the supported classification schemes.
package subject

import (
	"regexp"
	"time"

	"github.com/colophon-press/colophon/pkg/serrors"
	"github.com/google/uuid"
)

type Type string

const (
	TypeBIC     Type = "bic"
	TypeBISAC   Type = "bisac"
	TypeKeyword Type = "keyword"
	TypeLCC     Type = "lcc"
	TypeThema   Type = "thema"
	TypeCustom  Type = "custom"
)

func (t Type) Valid() bool {
	switch t {
	case TypeBIC, TypeBISAC, TypeKeyword, TypeLCC, TypeThema, TypeCustom:
		return true
	}
	return false
}

var (
	bicRe   = regexp.MustCompile(`^[A-Z]{1}[A-Z0-9]*$`)
	bisacRe = regexp.MustCompile(`^[A-Z]{3}[0-9]{6}$`)
	lccRe   = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{1,4}(\.[A-Z0-9.]+)?$`)
	themaRe = regexp.MustCompile(`^[A-Z1-5]{1}[A-Z0-9-]*$`)
)

var errInvalidSubjectCode = serrors.NewError("INVALID_SUBJECT_CODE", "invalid subject code for the selected subject type")

// CheckCode validates a subject code against its scheme's code shape.
// Keyword and custom subjects are free-form.
func CheckCode(subjectType Type, code string) error {
	if code == "" {
		return errInvalidSubjectCode
	}
	var ok bool
	switch subjectType {
	case TypeBIC:
		ok = bicRe.MatchString(code)
	case TypeBISAC:
		ok = bisacRe.MatchString(code)
	case TypeLCC:
		ok = lccRe.MatchString(code)
	case TypeThema:
		ok = themaRe.MatchString(code)
	default:
		ok = true
	}
	if !ok {
		return errInvalidSubjectCode
	}
	return nil
}

type Subject struct {
	SubjectID      uuid.UUID `db:"subject_id" json:"subjectId"`
	WorkID         uuid.UUID `db:"work_id" json:"workId"`
	SubjectType    Type      `db:"subject_type" json:"subjectType"`
	SubjectCode    string    `db:"subject_code" json:"subjectCode"`
	SubjectOrdinal int       `db:"subject_ordinal" json:"subjectOrdinal"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

type NewSubject struct {
	WorkID         uuid.UUID `validate:"required"`
	SubjectType    Type      `validate:"required"`
	SubjectCode    string    `validate:"required"`
	SubjectOrdinal int       `validate:"min=1"`
}

type PatchSubject struct {
	SubjectID      uuid.UUID `validate:"required"`
	WorkID         uuid.UUID `validate:"required"`
	SubjectType    Type      `validate:"required"`
	SubjectCode    string    `validate:"required"`
	SubjectOrdinal int       `validate:"min=1"`
}

func (n NewSubject) Entity(id uuid.UUID, now time.Time) Subject {
	return Subject{
		SubjectID:      id,
		WorkID:         n.WorkID,
		SubjectType:    n.SubjectType,
		SubjectCode:    n.SubjectCode,
		SubjectOrdinal: n.SubjectOrdinal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (p PatchSubject) Apply(current Subject, now time.Time) Subject {
	current.WorkID = p.WorkID
	current.SubjectType = p.SubjectType
	current.SubjectCode = p.SubjectCode
	current.SubjectOrdinal = p.SubjectOrdinal
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldSubjectID Field = iota
	FieldWorkID
	FieldSubjectType
	FieldSubjectCode
	FieldSubjectOrdinal
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldSubjectType }
