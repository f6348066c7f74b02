package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// canEditOwner resolves the entity's owning publisher and checks the caller
// may edit it.
func canEditOwner(ctx context.Context, owners *persistence.OwnershipResolver, a access.Access, kind persistence.Kind, id uuid.UUID) error {
	publisherID, err := owners.OwningPublisher(ctx, kind, id)
	if err != nil {
		return err
	}
	return a.CanEdit(publisherID)
}

// Registry bundles one service per entity type, all sharing the same event
// bus and lookup repositories.
type Registry struct {
	Publishers    *PublisherService
	Imprints      *ImprintService
	Works         *WorkService
	Publications  *PublicationService
	Contributors  *ContributorService
	Contributions *ContributionService
	Series        *SeriesService
	Issues        *IssueService
	Languages     *LanguageService
	Prices        *PriceService
	Subjects      *SubjectService
	Funders       *FunderService
	Fundings      *FundingService
	Locations     *LocationService
}

func NewRegistry(bus eventbus.EventBus) *Registry {
	owners := persistence.NewOwnershipResolver()
	lookups := persistence.NewLookupRepository()
	return &Registry{
		Publishers:    NewPublisherService(bus),
		Imprints:      NewImprintService(bus),
		Works:         NewWorkService(bus, owners, lookups),
		Publications:  NewPublicationService(bus, owners),
		Contributors:  NewContributorService(bus),
		Contributions: NewContributionService(bus, owners),
		Series:        NewSeriesService(bus, owners),
		Issues:        NewIssueService(bus, owners, lookups),
		Languages:     NewLanguageService(bus, owners),
		Prices:        NewPriceService(bus, owners),
		Subjects:      NewSubjectService(bus, owners),
		Funders:       NewFunderService(bus),
		Fundings:      NewFundingService(bus, owners),
		Locations:     NewLocationService(bus, owners, lookups),
	}
}
