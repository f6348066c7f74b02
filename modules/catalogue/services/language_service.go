package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/language"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidLanguageRelation = serrors.NewError("INVALID_LANGUAGE_RELATION", "invalid language relation")

type LanguageService struct {
	*Crud[language.Language, language.NewLanguage, language.PatchLanguage, uuid.UUID, language.Field]
}

func NewLanguageService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *LanguageService {
	return &LanguageService{
		Crud: &Crud[language.Language, language.NewLanguage, language.PatchLanguage, uuid.UUID, language.Field]{
			entity:   "language",
			repo:     persistence.NewLanguageRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n language.NewLanguage, now time.Time) language.Language {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p language.PatchLanguage) uuid.UUID { return p.LanguageID },
			applyPatch: func(p language.PatchLanguage, current language.Language, now time.Time) language.Language {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n language.NewLanguage) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, n.WorkID)
			},
			updateGate: func(ctx context.Context, a access.Access, current language.Language, p language.PatchLanguage) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID); err != nil {
					return err
				}
				if p.WorkID != current.WorkID {
					return canEditOwner(ctx, owners, a, persistence.KindWork, p.WorkID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current language.Language) error {
				return canEditOwner(ctx, owners, a, persistence.KindWork, current.WorkID)
			},
			preCreate: func(_ context.Context, n language.NewLanguage) error {
				if !n.LanguageRelation.Valid() {
					return errInvalidLanguageRelation
				}
				return nil
			},
			preUpdate: func(_ context.Context, _ language.Language, p language.PatchLanguage) error {
				if !p.LanguageRelation.Valid() {
					return errInvalidLanguageRelation
				}
				return nil
			},
		},
	}
}
