// Package services implements the catalogue's use cases: validated, gated,
// audited mutations and uniform reads over every entity type. One generic
// engine carries the shared flow; per-entity constructors plug in the
// authorization gates and cross-entity invariants that differ.
package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/eventbus"
	"github.com/colophon-press/colophon/pkg/metrics"
	"github.com/colophon-press/colophon/pkg/repo"
	"github.com/colophon-press/colophon/pkg/serrors"
)

// Crud is the shared service engine. T is the entity row, N and P its
// creation and patch inputs, K its key, F its field enum.
//
// Reads are ungated. Every mutation requires an access descriptor in the
// context, passes the entity's gate, then its invariant checks, and runs
// inside one transaction; updates additionally write the pre-image to the
// entity's history table under the acting account.
type Crud[T any, N any, P any, K any, F comparable] struct {
	entity   string
	repo     *persistence.CrudRepository[T, K, F]
	bus      eventbus.EventBus
	validate *validator.Validate

	newEntity  func(n N, now time.Time) T
	patchKey   func(p P) K
	applyPatch func(p P, current T, now time.Time) T

	createGate func(ctx context.Context, a access.Access, n N) error
	updateGate func(ctx context.Context, a access.Access, current T, p P) error
	deleteGate func(ctx context.Context, a access.Access, current T) error

	preCreate func(ctx context.Context, n N) error
	preUpdate func(ctx context.Context, current T, p P) error
}

func (s *Crud[T, N, P, K, F]) Get(ctx context.Context, key K) (T, error) {
	result, err := s.repo.Get(ctx, key)
	metrics.RecordOperation(s.entity, "get", err)
	return result, err
}

func (s *Crud[T, N, P, K, F]) All(ctx context.Context, params repo.FindParams[F]) ([]T, error) {
	result, err := s.repo.List(ctx, params)
	metrics.RecordOperation(s.entity, "list", err)
	return result, err
}

func (s *Crud[T, N, P, K, F]) Count(ctx context.Context, params repo.FindParams[F]) (int64, error) {
	count, err := s.repo.Count(ctx, params)
	metrics.RecordOperation(s.entity, "count", err)
	return count, err
}

func (s *Crud[T, N, P, K, F]) Create(ctx context.Context, input N) (T, error) {
	result, err := s.create(ctx, input)
	metrics.RecordOperation(s.entity, "create", err)
	return result, err
}

func (s *Crud[T, N, P, K, F]) create(ctx context.Context, input N) (T, error) {
	var zero T
	if err := s.validate.Struct(input); err != nil {
		return zero, err
	}
	a, err := composables.UseAccess(ctx)
	if err != nil {
		return zero, serrors.ErrUnauthorised
	}

	created, err := composables.InTxResult(ctx, func(txCtx context.Context) (T, error) {
		if err := s.createGate(txCtx, a, input); err != nil {
			return zero, err
		}
		if s.preCreate != nil {
			if err := s.preCreate(txCtx, input); err != nil {
				return zero, err
			}
		}
		return s.repo.Create(txCtx, s.newEntity(input, time.Now()))
	})
	if err != nil {
		return zero, err
	}

	s.bus.Publish(CreatedEvent[T]{Entity: s.entity, Result: created})
	return created, nil
}

func (s *Crud[T, N, P, K, F]) Update(ctx context.Context, input P) (T, error) {
	result, err := s.update(ctx, input)
	metrics.RecordOperation(s.entity, "update", err)
	return result, err
}

func (s *Crud[T, N, P, K, F]) update(ctx context.Context, input P) (T, error) {
	var zero T
	if err := s.validate.Struct(input); err != nil {
		return zero, err
	}
	a, err := composables.UseAccess(ctx)
	if err != nil {
		return zero, serrors.ErrUnauthorised
	}
	account, err := composables.UseAccount(ctx)
	if err != nil {
		return zero, serrors.ErrUnauthorised
	}

	key := s.patchKey(input)
	var previous T
	updated, err := composables.InTxResult(ctx, func(txCtx context.Context) (T, error) {
		current, err := s.repo.Get(txCtx, key)
		if err != nil {
			return zero, err
		}
		if err := s.updateGate(txCtx, a, current, input); err != nil {
			return zero, err
		}
		if s.preUpdate != nil {
			if err := s.preUpdate(txCtx, current, input); err != nil {
				return zero, err
			}
		}
		stored, err := s.repo.Update(txCtx, key, s.applyPatch(input, current, time.Now()))
		if err != nil {
			return zero, err
		}
		if err := s.repo.InsertHistory(txCtx, current, account); err != nil {
			return zero, err
		}
		previous = current
		return stored, nil
	})
	if err != nil {
		return zero, err
	}

	s.bus.Publish(UpdatedEvent[T]{Entity: s.entity, Previous: previous, Result: updated})
	return updated, nil
}

func (s *Crud[T, N, P, K, F]) Delete(ctx context.Context, key K) (T, error) {
	result, err := s.delete(ctx, key)
	metrics.RecordOperation(s.entity, "delete", err)
	return result, err
}

func (s *Crud[T, N, P, K, F]) delete(ctx context.Context, key K) (T, error) {
	var zero T
	a, err := composables.UseAccess(ctx)
	if err != nil {
		return zero, serrors.ErrUnauthorised
	}

	deleted, err := composables.InTxResult(ctx, func(txCtx context.Context) (T, error) {
		current, err := s.repo.Get(txCtx, key)
		if err != nil {
			return zero, err
		}
		if err := s.deleteGate(txCtx, a, current); err != nil {
			return zero, err
		}
		return s.repo.Delete(txCtx, key)
	})
	if err != nil {
		return zero, err
	}

	s.bus.Publish(DeletedEvent[T]{Entity: s.entity, Result: deleted})
	return deleted, nil
}
