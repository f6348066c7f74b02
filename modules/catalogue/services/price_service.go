package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/price"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

type PriceService struct {
	*Crud[price.Price, price.NewPrice, price.PatchPrice, uuid.UUID, price.Field]
}

func NewPriceService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *PriceService {
	return &PriceService{
		Crud: &Crud[price.Price, price.NewPrice, price.PatchPrice, uuid.UUID, price.Field]{
			entity:   "price",
			repo:     persistence.NewPriceRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n price.NewPrice, now time.Time) price.Price {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p price.PatchPrice) uuid.UUID { return p.PriceID },
			applyPatch: func(p price.PatchPrice, current price.Price, now time.Time) price.Price {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n price.NewPrice) error {
				return canEditOwner(ctx, owners, a, persistence.KindPublication, n.PublicationID)
			},
			updateGate: func(ctx context.Context, a access.Access, current price.Price, p price.PatchPrice) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindPublication, current.PublicationID); err != nil {
					return err
				}
				if p.PublicationID != current.PublicationID {
					return canEditOwner(ctx, owners, a, persistence.KindPublication, p.PublicationID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current price.Price) error {
				return canEditOwner(ctx, owners, a, persistence.KindPublication, current.PublicationID)
			},
		},
	}
}
