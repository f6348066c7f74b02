package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/colophon-press/colophon/modules/catalogue/domain/publication"
	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/repo"
	"github.com/colophon-press/colophon/pkg/serrors"
)

// LookupRepository answers the point queries that cross-entity invariants
// depend on.
type LookupRepository struct{}

func NewLookupRepository() *LookupRepository {
	return &LookupRepository{}
}

// CanonicalLocationExists reports whether the publication already carries a
// canonical location.
func (l *LookupRepository) CanonicalLocationExists(ctx context.Context, publicationID uuid.UUID) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	query := repo.Exists("SELECT 1 FROM location WHERE publication_id = $1 AND canonical")
	if err := tx.QueryRow(ctx, query, publicationID).Scan(&exists); err != nil {
		return false, serrors.FromDatabase(err)
	}
	return exists, nil
}

func (l *LookupRepository) PublicationTypeOf(ctx context.Context, publicationID uuid.UUID) (publication.Type, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return "", err
	}
	var t publication.Type
	query := "SELECT publication_type FROM publication WHERE publication_id = $1"
	if err := tx.QueryRow(ctx, query, publicationID).Scan(&t); err != nil {
		if err == pgx.ErrNoRows {
			return "", serrors.ErrEntityNotFound
		}
		return "", serrors.FromDatabase(err)
	}
	return t, nil
}

func (l *LookupRepository) ImprintOfWork(ctx context.Context, workID uuid.UUID) (uuid.UUID, error) {
	return l.scanUUID(ctx, "SELECT imprint_id FROM work WHERE work_id = $1", workID)
}

func (l *LookupRepository) ImprintOfSeries(ctx context.Context, seriesID uuid.UUID) (uuid.UUID, error) {
	return l.scanUUID(ctx, "SELECT imprint_id FROM series WHERE series_id = $1", seriesID)
}

// WorkIssueCount counts the series issues a work appears in.
func (l *LookupRepository) WorkIssueCount(ctx context.Context, workID uuid.UUID) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	query := "SELECT COUNT(*) FROM issue WHERE work_id = $1"
	if err := tx.QueryRow(ctx, query, workID).Scan(&count); err != nil {
		return 0, serrors.FromDatabase(err)
	}
	return count, nil
}

func (l *LookupRepository) scanUUID(ctx context.Context, query string, id uuid.UUID) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	var result uuid.UUID
	if err := tx.QueryRow(ctx, query, id).Scan(&result); err != nil {
		if err == pgx.ErrNoRows {
			return uuid.Nil, serrors.ErrEntityNotFound
		}
		return uuid.Nil, serrors.FromDatabase(err)
	}
	return result, nil
}
