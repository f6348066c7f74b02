// Package language describes a work's language and its relation to the
// original text.
package language

import (
	"time"

	"github.com/google/uuid"
)

// Code is an ISO 639-3 language code.
type Code string

const (
	CodeAra Code = "ara"
	CodeBul Code = "bul"
	CodeCat Code = "cat"
	CodeCes Code = "ces"
	CodeCmn Code = "cmn"
	CodeCym Code = "cym"
	CodeDan Code = "dan"
	CodeDeu Code = "deu"
	CodeEll Code = "ell"
	CodeEng Code = "eng"
	CodeEst Code = "est"
	CodeFas Code = "fas"
	CodeFin Code = "fin"
	CodeFra Code = "fra"
	CodeGle Code = "gle"
	CodeHeb Code = "heb"
	CodeHin Code = "hin"
	CodeHrv Code = "hrv"
	CodeHun Code = "hun"
	CodeInd Code = "ind"
	CodeIta Code = "ita"
	CodeJpn Code = "jpn"
	CodeKor Code = "kor"
	CodeLat Code = "lat"
	CodeLav Code = "lav"
	CodeLit Code = "lit"
	CodeNld Code = "nld"
	CodeNor Code = "nor"
	CodePol Code = "pol"
	CodePor Code = "por"
	CodeRon Code = "ron"
	CodeRus Code = "rus"
	CodeSlk Code = "slk"
	CodeSlv Code = "slv"
	CodeSpa Code = "spa"
	CodeSrp Code = "srp"
	CodeSwe Code = "swe"
	CodeTha Code = "tha"
	CodeTur Code = "tur"
	CodeUkr Code = "ukr"
	CodeVie Code = "vie"
)

type Relation string

const (
	RelationOriginal       Relation = "original"
	RelationTranslatedFrom Relation = "translated-from"
	RelationTranslatedInto Relation = "translated-into"
)

func (r Relation) Valid() bool {
	switch r {
	case RelationOriginal, RelationTranslatedFrom, RelationTranslatedInto:
		return true
	}
	return false
}

type Language struct {
	LanguageID       uuid.UUID `db:"language_id" json:"languageId"`
	WorkID           uuid.UUID `db:"work_id" json:"workId"`
	LanguageCode     Code      `db:"language_code" json:"languageCode"`
	LanguageRelation Relation  `db:"language_relation" json:"languageRelation"`
	MainLanguage     bool      `db:"main_language" json:"mainLanguage"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

type NewLanguage struct {
	WorkID           uuid.UUID `validate:"required"`
	LanguageCode     Code      `validate:"required,len=3"`
	LanguageRelation Relation  `validate:"required"`
	MainLanguage     bool
}

type PatchLanguage struct {
	LanguageID       uuid.UUID `validate:"required"`
	WorkID           uuid.UUID `validate:"required"`
	LanguageCode     Code      `validate:"required,len=3"`
	LanguageRelation Relation  `validate:"required"`
	MainLanguage     bool
}

func (n NewLanguage) Entity(id uuid.UUID, now time.Time) Language {
	return Language{
		LanguageID:       id,
		WorkID:           n.WorkID,
		LanguageCode:     n.LanguageCode,
		LanguageRelation: n.LanguageRelation,
		MainLanguage:     n.MainLanguage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (p PatchLanguage) Apply(current Language, now time.Time) Language {
	current.WorkID = p.WorkID
	current.LanguageCode = p.LanguageCode
	current.LanguageRelation = p.LanguageRelation
	current.MainLanguage = p.MainLanguage
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldLanguageID Field = iota
	FieldWorkID
	FieldLanguageCode
	FieldLanguageRelation
	FieldMainLanguage
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldLanguageCode }
