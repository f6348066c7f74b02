package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/imprint"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

// ImprintService manages imprints. Moving an imprint between publishers
// requires edit rights on both sides.
type ImprintService struct {
	*Crud[imprint.Imprint, imprint.NewImprint, imprint.PatchImprint, uuid.UUID, imprint.Field]
}

func NewImprintService(bus eventbus.EventBus) *ImprintService {
	return &ImprintService{
		Crud: &Crud[imprint.Imprint, imprint.NewImprint, imprint.PatchImprint, uuid.UUID, imprint.Field]{
			entity:   "imprint",
			repo:     persistence.NewImprintRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n imprint.NewImprint, now time.Time) imprint.Imprint {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p imprint.PatchImprint) uuid.UUID { return p.ImprintID },
			applyPatch: func(p imprint.PatchImprint, current imprint.Imprint, now time.Time) imprint.Imprint {
				return p.Apply(current, now)
			},
			createGate: func(_ context.Context, a access.Access, n imprint.NewImprint) error {
				return a.CanEdit(n.PublisherID)
			},
			updateGate: func(_ context.Context, a access.Access, current imprint.Imprint, p imprint.PatchImprint) error {
				if err := a.CanEdit(current.PublisherID); err != nil {
					return err
				}
				if p.PublisherID != current.PublisherID {
					return a.CanEdit(p.PublisherID)
				}
				return nil
			},
			deleteGate: func(_ context.Context, a access.Access, current imprint.Imprint) error {
				return a.CanEdit(current.PublisherID)
			},
		},
	}
}
