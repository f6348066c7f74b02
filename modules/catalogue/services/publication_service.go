package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/publication"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidPublicationType = serrors.NewError("INVALID_PUBLICATION_TYPE", "invalid publication type")

type PublicationService struct {
	*Crud[publication.Publication, publication.NewPublication, publication.PatchPublication, uuid.UUID, publication.Field]
}

func NewPublicationService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *PublicationService {
	return &PublicationService{
		Crud: &Crud[publication.Publication, publication.NewPublication, publication.PatchPublication, uuid.UUID, publication.Field]{
			entity:   "publication",
			repo:     persistence.NewPublicationRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n publication.NewPublication, now time.Time) publication.Publication {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p publication.PatchPublication) uuid.UUID { return p.PublicationID },
			applyPatch: func(p publication.PatchPublication, current publication.Publication, now time.Time) publication.Publication {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n publication.NewPublication) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, n.WorkID)
			},
			updateGate: func(ctx context.Context, a access.Access, current publication.Publication, p publication.PatchPublication) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID); err != nil {
					return err
				}
				if p.WorkID != current.WorkID {
					return canEditOwner(ctx, owners, a, persistence.KindWork, p.WorkID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current publication.Publication) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID)
			},
			preCreate: func(_ context.Context, n publication.NewPublication) error {
				if !n.PublicationType.Valid() {
					return errInvalidPublicationType
				}
				return nil
			},
			preUpdate: func(_ context.Context, _ publication.Publication, p publication.PatchPublication) error {
				if !p.PublicationType.Valid() {
					return errInvalidPublicationType
				}
				return nil
			},
		},
	}
}
