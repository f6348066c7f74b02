// Package price defines the amount of money a publication costs in one
// currency.
package price

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyCode is an ISO 4217 currency code.
type CurrencyCode string

const (
	CurrencyAUD CurrencyCode = "AUD"
	CurrencyBRL CurrencyCode = "BRL"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencyCHF CurrencyCode = "CHF"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencyCZK CurrencyCode = "CZK"
	CurrencyDKK CurrencyCode = "DKK"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyHKD CurrencyCode = "HKD"
	CurrencyHUF CurrencyCode = "HUF"
	CurrencyIDR CurrencyCode = "IDR"
	CurrencyILS CurrencyCode = "ILS"
	CurrencyINR CurrencyCode = "INR"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyKRW CurrencyCode = "KRW"
	CurrencyMXN CurrencyCode = "MXN"
	CurrencyNOK CurrencyCode = "NOK"
	CurrencyNZD CurrencyCode = "NZD"
	CurrencyPLN CurrencyCode = "PLN"
	CurrencyRUB CurrencyCode = "RUB"
	CurrencySEK CurrencyCode = "SEK"
	CurrencySGD CurrencyCode = "SGD"
	CurrencyTHB CurrencyCode = "THB"
	CurrencyTRY CurrencyCode = "TRY"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyZAR CurrencyCode = "ZAR"
)

type Price struct {
	PriceID       uuid.UUID       `db:"price_id" json:"priceId"`
	PublicationID uuid.UUID       `db:"publication_id" json:"publicationId"`
	CurrencyCode  CurrencyCode    `db:"currency_code" json:"currencyCode"`
	UnitPrice     decimal.Decimal `db:"unit_price" json:"unitPrice"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

type NewPrice struct {
	PublicationID uuid.UUID       `validate:"required"`
	CurrencyCode  CurrencyCode    `validate:"required,len=3"`
	UnitPrice     decimal.Decimal `validate:"required"`
}

type PatchPrice struct {
	PriceID       uuid.UUID       `validate:"required"`
	PublicationID uuid.UUID       `validate:"required"`
	CurrencyCode  CurrencyCode    `validate:"required,len=3"`
	UnitPrice     decimal.Decimal `validate:"required"`
}

func (n NewPrice) Entity(id uuid.UUID, now time.Time) Price {
	return Price{
		PriceID:       id,
		PublicationID: n.PublicationID,
		CurrencyCode:  n.CurrencyCode,
		UnitPrice:     n.UnitPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p PatchPrice) Apply(current Price, now time.Time) Price {
	current.PublicationID = p.PublicationID
	current.CurrencyCode = p.CurrencyCode
	current.UnitPrice = p.UnitPrice
	current.UpdatedAt = now
	return current
}

type Field int

const (
	FieldPriceID Field = iota
	FieldPublicationID
	FieldCurrencyCode
	FieldUnitPrice
	FieldCreatedAt
	FieldUpdatedAt
)

func DefaultField() Field { return FieldCurrencyCode }
