package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/colophon-press/colophon/modules/catalogue/domain/series"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/serrors"
)

var errInvalidSeriesType = serrors.NewError("INVALID_SERIES_TYPE", "invalid series type")

type SeriesService struct {
	*Crud[series.Series, series.NewSeries, series.PatchSeries, uuid.UUID, series.Field]
}

func NewSeriesService(bus eventbus.EventBus, owners *persistence.OwnershipResolver) *SeriesService {
	return &SeriesService{
		Crud: &Crud[series.Series, series.NewSeries, series.PatchSeries, uuid.UUID, series.Field]{
			entity:   "series",
			repo:     persistence.NewSeriesRepository(),
			bus:      bus,
			validate: validate,
			newEntity: func(n series.NewSeries, now time.Time) series.Series {
				return n.Entity(uuid.New(), now)
			},
			patchKey: func(p series.PatchSeries) uuid.UUID { return p.SeriesID },
			applyPatch: func(p series.PatchSeries, current series.Series, now time.Time) series.Series {
				return p.Apply(current, now)
			},
			createGate: func(ctx context.Context, a access.Access, n series.NewSeries) error {
				return canEditOwner(ctx, owners, a, persistence.KindImprint, n.ImprintID)
			},
			updateGate: func(ctx context.Context, a access.Access, current series.Series, p series.PatchSeries) error {
				if err := canEditOwner(ctx, owners, a, persistence.KindImprint, current.ImprintID); err != nil {
					return err
				}
				if p.ImprintID != current.ImprintID {
					return canEditOwner(ctx, owners, a, persistence.KindImprint, p.ImprintID)
				}
				return nil
			},
			deleteGate: func(ctx context.Context, a access.Access, current series.Series) error {
				return canEditOwner(ctx, owners, a, persistence.KindImprint, current.ImprintID)
			},
			preCreate: func(_ context.Context, n series.NewSeries) error {
				if !n.SeriesType.Valid() {
					return errInvalidSeriesType
				}
				return nil
			},
			preUpdate: func(_ context.Context, _ series.Series, p series.PatchSeries) error {
				if !p.SeriesType.Valid() {
					return errInvalidSeriesType
				}
				return nil
			},
		},
	}
}
