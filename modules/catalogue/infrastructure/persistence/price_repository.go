package persistence

import (
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/price"
)

func PriceBinding() Binding[price.Price, price.Field] {
	return Binding[price.Price, price.Field]{
		Table:   "price",
		Columns: []string{"price_id", "publication_id", "currency_code", "unit_price", "created_at", "updated_at"},
		KeyCols: []string{"price_id"},
		Values: func(p price.Price) []any {
			return []any{p.PriceID, p.PublicationID, p.CurrencyCode, p.UnitPrice, p.CreatedAt, p.UpdatedAt}
		},
		FieldMap: map[price.Field]string{
			price.FieldPriceID:       "price.price_id",
			price.FieldPublicationID: "price.publication_id",
			price.FieldCurrencyCode:  "price.currency_code",
			price.FieldUnitPrice:     "price.unit_price",
			price.FieldCreatedAt:     "price.created_at",
			price.FieldUpdatedAt:     "price.updated_at",
		},
		Tiebreak: "price.price_id",

		OwnershipJoins: []string{
			"INNER JOIN publication ON price.publication_id = publication.publication_id",
			"INNER JOIN work ON publication.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		PublisherCol: "imprint.publisher_id",
		ParentCol:    "price.publication_id",

		HistoryTable:   "price_history",
		HistoryPK:      "price_history_id",
		HistoryKeyCols: []string{"price_id"},
		HistoryKeyValues: func(p price.Price) []any {
			return []any{p.PriceID}
		},
	}
}

func NewPriceRepository() *CrudRepository[price.Price, uuid.UUID, price.Field] {
	return NewCrudRepository(PriceBinding(), UUIDKey("price.price_id"))
}
