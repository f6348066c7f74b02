package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/funding"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

type FundingService struct {
	*Crud[funding.Funding, funding.NewFunding, funding.PatchFunding, uuid.UUID, funding.Field]
}

func NewFundingService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *FundingService {
	return &FundingService{
		Crud: &Crud[funding.Funding, funding.NewFunding, funding.PatchFunding, uuid.UUID, funding.Field]{
			entity:   "funding",
			repo:     persistence.NewFundingRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n funding.NewFunding, now time.Time) funding.Funding {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p funding.PatchFunding) uuid.UUID { return p.FundingID },
			applyPatch: func(p funding.PatchFunding, current funding.Funding, now time.Time) funding.Funding {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n funding.NewFunding) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, n.WorkID)
			},
			updateGate: func(ctx context.Context, a access.Access, current funding.Funding, p funding.PatchFunding) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID); err != nil {
					return err
				}
				if p.WorkID != current.WorkID {
					return canEditOwner(ctx, owners, a, persistence.KindWork, p.WorkID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current funding.Funding) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID)
			},
		},
	}
}
