package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/subject"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidSubjectType = serrors.NewError("INVALID_SUBJECT_TYPE", "invalid subject type")

// SubjectService manages subjects. Codes are validated against the shape
// their classification scheme prescribes.
type SubjectService struct {
	*Crud[subject.Subject, subject.NewSubject, subject.PatchSubject, uuid.UUID, subject.Field]
}

func NewSubjectService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *SubjectService {
	checkSubject := func(subjectType subject.Type, code string) error {
		if !subjectType.Valid() {
			return errInvalidSubjectType
		}
		return subject.CheckCode(subjectType, code)
	}

	return &SubjectService{
		Crud: &Crud[subject.Subject, subject.NewSubject, subject.PatchSubject, uuid.UUID, subject.Field]{
			entity:   "subject",
			repo:     persistence.NewSubjectRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n subject.NewSubject, now time.Time) subject.Subject {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p subject.PatchSubject) uuid.UUID { return p.SubjectID },
			applyPatch: func(p subject.PatchSubject, current subject.Subject, now time.Time) subject.Subject {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n subject.NewSubject) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, n.WorkID)
			},
			updateGate: func(ctx context.Context, a access.Access, current subject.Subject, p subject.PatchSubject) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID); err != nil {
					return err
				}
				if p.WorkID != current.WorkID {
					return canEditOwner(ctx, owners, a, persistence.KindWork, p.WorkID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current subject.Subject) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID)
			},
			preCreate: func(_ context.Context, n subject.NewSubject) error {
				return checkSubject(n.SubjectType, n.SubjectCode)
			},
			preUpdate: func(_ context.Context, _ subject.Subject, p subject.PatchSubject) error {
				return checkSubject(p.SubjectType, p.SubjectCode)
			},
		},
	}
}
