package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/publisher"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

// PublisherService manages the roots of the ownership tree. Creating a
// publisher is reserved for superusers; everything else is gated on the
// publisher itself.
type PublisherService struct {
	*Crud[publisher.Publisher, publisher.NewPublisher, publisher.PatchPublisher, uuid.UUID, publisher.Field]
}

func NewPublisherService(bus eventbus.EventBus) *PublisherService {
	return &PublisherService{
		Crud: &Crud[publisher.Publisher, publisher.NewPublisher, publisher.PatchPublisher, uuid.UUID, publisher.Field]{
			entity:   "publisher",
			repo:     persistence.NewPublisherRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n publisher.NewPublisher, now time.Time) publisher.Publisher {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p publisher.PatchPublisher) uuid.UUID { return p.PublisherID },
			applyPatch: func(p publisher.PatchPublisher, current publisher.Publisher, now time.Time) publisher.Publisher {
				return p.Apply(current, now)
			},
			createGate: func(_ context.Context, a access.Access, _ publisher.NewPublisher) error {
				return a.RequireSuperuser()
			},
			updateGate: func(_ context.Context, a access.Access, current publisher.Publisher, _ publisher.PatchPublisher) error {
				return a.CanEdit(current.PublisherID)
			},
			deleteGate: func(_ context.Context, a access.Access, current publisher.Publisher) error {
				return a.CanEdit(current.PublisherID)
			},
		},
	}
}
