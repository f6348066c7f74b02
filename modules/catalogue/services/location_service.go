package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/location"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidLocationPlatform = serrors.NewError("INVALID_LOCATION_PLATFORM", "invalid location platform")

// LocationService manages publication access points. A publication's first
// location must be its canonical one, and the canonical location of a
// digital publication needs both a landing page and a full-text URL.
type LocationService struct {
	*Crud[location.Location, location.NewLocation, location.PatchLocation, uuid.UUID, location.Field]
}

func NewLocationService(bus eventbus.EventBus, owners *persistence.OwnershipResolver, lookups *persistence.LookupRepository) *LocationService {
	return &LocationService{
		Crud: &Crud[location.Location, location.NewLocation, location.PatchLocation, uuid.UUID, location.Field]{
			entity:   "location",
			repo:     persistence.NewLocationRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n location.NewLocation, now time.Time) location.Location {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p location.PatchLocation) uuid.UUID { return p.LocationID },
			applyPatch: func(p location.PatchLocation, current location.Location, now time.Time) location.Location {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n location.NewLocation) error {
				return canEditOwner(ctx, owners, a, persistence.KindPublication, n.PublicationID)
			},
			updateGate: func(ctx context.Context, a access.Access, current location.Location, p location.PatchLocation) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindPublication, current.PublicationID); err != nil {
					return err
				}
				if p.PublicationID != current.PublicationID {
					return canEditOwner(ctx, owners, a, persistence.KindPublication, p.PublicationID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current location.Location) error {
				return canEditOwner(ctx, owners, a, persistence.KindPublication, current.PublicationID)
			},
			preCreate: func(ctx context.Context, n location.NewLocation) error {
				if !n.LocationPlatform.Valid() {
					return errInvalidLocationPlatform
				}
				return locationInvariant(lookups)(ctx, n)
			},
			preUpdate: func(ctx context.Context, current location.Location, p location.PatchLocation) error {
				if !p.LocationPlatform.Valid() {
					return errInvalidLocationPlatform
				}
				if p.Canonical {
					return checkCanonicalLocationURLs(ctx, lookups, p.PublicationID, p.LandingPage, p.FullTextURL)
				}
				if current.Canonical {
					// Demoting the canonical location would orphan the
					// publication's alternates.
					return serrors.ErrCanonicalLocation
				}
				return nil
			},
		},
	}
}
