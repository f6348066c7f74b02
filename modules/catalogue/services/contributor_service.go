package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/contributor"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

// ContributorService manages contributors. They are shared across
// publishers, so any caller with an access descriptor may mutate them.
type ContributorService struct {
	*Crud[contributor.Contributor, contributor.NewContributor, contributor.PatchContributor, uuid.UUID, contributor.Field]
}

func NewContributorService(bus eventbus.EventBus) *ContributorService {
	return &ContributorService{
		Crud: &Crud[contributor.Contributor, contributor.NewContributor, contributor.PatchContributor, uuid.UUID, contributor.Field]{
			entity:   "contributor",
			repo:     persistence.NewContributorRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n contributor.NewContributor, now time.Time) contributor.Contributor {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p contributor.PatchContributor) uuid.UUID { return p.ContributorID },
			applyPatch: func(p contributor.PatchContributor, current contributor.Contributor, now time.Time) contributor.Contributor {
				return p.Apply(current, now)
			},
			createGate: func(_ context.Context, _ access.Access, _ contributor.NewContributor) error { return nil },
			updateGate: func(_ context.Context, _ access.Access, _ contributor.Contributor, _ contributor.PatchContributor) error {
				return nil
			},
			deleteGate: func(_ context.Context, _ access.Access, _ contributor.Contributor) error { return nil },
		},
	}
}
