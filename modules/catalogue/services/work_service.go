package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/work"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidWorkType = serrors.NewError("INVALID_WORK_TYPE", "invalid work type")
var errInvalidWorkStatus = serrors.NewError("INVALID_WORK_STATUS", "invalid work status")

// WorkService manages works. A work cannot change imprint while linked into
// a series, and moving it requires edit rights on both imprints' publishers.
type WorkService struct {
	*Crud[work.Work, work.NewWork, work.PatchWork, uuid.UUID, work.Field]
}

func NewWorkService(bus eventbus.EventBus, owners *persistence.OwnershipResolver, lookups *persistence.LookupRepository) *WorkService {
	checkEnums := func(workType work.Type, workStatus work.Status) error {
		if !workType.Valid() {
			return errInvalidWorkType
		}
		if !workStatus.Valid() {
			return errInvalidWorkStatus
		}
		return nil
	}

	return &WorkService{
		Crud: &Crud[work.Work, work.NewWork, work.PatchWork, uuid.UUID, work.Field]{
			entity:   "work",
			repo:     persistence.NewWorkRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n work.NewWork, now time.Time) work.Work {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p work.PatchWork) uuid.UUID { return p.WorkID },
			applyPatch: func(p work.PatchWork, current work.Work, now time.Time) work.Work {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n work.NewWork) error {
				return canEditOwner(ctx, owners, a, persistence.KindImprint, n.ImprintID)
			},
			updateGate: func(ctx context.Context, a access.Access, current work.Work, p work.PatchWork) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindImprint, current.ImprintID); err != nil {
					return err
				}
				if p.ImprintID != current.ImprintID {
					if err := canEditOwner(ctx, owners, a, persistence.KindImprint, p.ImprintID); err != nil {
						return err
					}
					return checkWorkImprintChange(ctx, lookups, current.WorkID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current work.Work) error {
				return canEditOwner(ctx, owners, a, persistence.KindImprint, current.ImprintID)
			},
			preCreate: func(_ context.Context, n work.NewWork) error {
				if err := checkEnums(n.WorkType, n.WorkStatus); err != nil {
					return err
				}
				return checkChapterPagination(n.WorkType, n.FirstPage, n.LastPage, n.PageInterval)
			},
			preUpdate: func(_ context.Context, _ work.Work, p work.PatchWork) error {
				if err := checkEnums(p.WorkType, p.WorkStatus); err != nil {
					return err
				}
				return checkChapterPagination(p.WorkType, p.FirstPage, p.LastPage, p.PageInterval)
			},
		},
	}
}
