package services

import (
	"context"
	"time"

	"github.com/colophon-press/colophon/modules/catalogue/domain/contribution"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidContributionType = serrors.NewError("INVALID_CONTRIBUTION_TYPE", "invalid contribution type")

// ContributionService manages the composite-keyed work/contributor edge.
// All gates resolve through the linked work's imprint; the key itself never
// changes on update.
type ContributionService struct {
	*Crud[contribution.Contribution, contribution.NewContribution, contribution.PatchContribution, contribution.Key, contribution.Field]
}

func NewContributionService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *ContributionService {
	return &ContributionService{
		Crud: &Crud[contribution.Contribution, contribution.NewContribution, contribution.PatchContribution, contribution.Key, contribution.Field]{
			entity:   "contribution",
			repo:     persistence.NewContributionRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n contribution.NewContribution, now time.Time) contribution.Contribution {
				return n.Entity(now)
			},
			patchKey: func(p contribution.PatchContribution) contribution.Key { return p.PatchKey() },
			applyPatch: func(p contribution.PatchContribution, current contribution.Contribution, now time.Time) contribution.Contribution {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n contribution.NewContribution) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, n.WorkID)
			},
			updateGate: func(ctx context.Context, a access.Access, current contribution.Contribution, _ contribution.PatchContribution) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID)
			},
			deleteGate: func(ctx context.Context, a access.Access, current contribution.Contribution) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID)
			},
			preCreate: func(_ context.Context, n contribution.NewContribution) error {
				if !n.ContributionType.Valid() {
					return errInvalidContributionType
				}
				return nil
			},
		},
	}
}
