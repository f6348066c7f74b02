package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/funder"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

// FunderService manages funders. Like contributors they are shared across
// publishers and open to any caller with an access descriptor.
type FunderService struct {
	*Crud[funder.Funder, funder.NewFunder, funder.PatchFunder, uuid.UUID, funder.Field]
}

func NewFunderService(bus eventbus.EventBus) *FunderService {
	return &FunderService{
		Crud: &Crud[funder.Funder, funder.NewFunder, funder.PatchFunder, uuid.UUID, funder.Field]{
			entity:   "funder",
			repo:     persistence.NewFunderRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n funder.NewFunder, now time.Time) funder.Funder {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p funder.PatchFunder) uuid.UUID { return p.FunderID },
			applyPatch: func(p funder.PatchFunder, current funder.Funder, now time.Time) funder.Funder {
				return p.Apply(current, now)
			},
			createGate: func(_ context.Context, _ access.Access, _ funder.NewFunder) error { return nil },
			updateGate: func(_ context.Context, _ access.Access, _ funder.Funder, _ funder.PatchFunder) error {
				return nil
			},
			deleteGate: func(_ context.Context, _ access.Access, _ funder.Funder) error { return nil },
		},
	}
}
