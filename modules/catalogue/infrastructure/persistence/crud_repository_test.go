package persistence_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colophon-press/colophon/modules/catalogue/domain/funder"
	"github.com/colophon-press/colophon/modules/catalogue/domain/work"
	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/repo"
	"github.com/colophon-press/colophon/pkg/serrors"
)

const funderColumns = "funder.funder_id, funder.funder_name, funder.funder_doi, funder.created_at, funder.updated_at"

func newMockCtx(t *testing.T) (context.Context, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	return composables.WithTx(context.Background(), tx), mock
}

func funderRows(ids ...uuid.UUID) *pgxmock.Rows {
	now := time.Now()
	rows := pgxmock.NewRows([]string{"funder_id", "funder_name", "funder_doi", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, "Knowledge Unlatched", (*string)(nil), now, now)
	}
	return rows
}

func TestListWithSearchAndPagination(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	query := "SELECT " + funderColumns + " FROM funder" +
		" WHERE (funder.funder_name ILIKE $1 OR funder.funder_doi ILIKE $1)" +
		" ORDER BY funder.funder_name ASC, funder.funder_id ASC LIMIT 10 OFFSET 20"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("%unlatched%").
		WillReturnRows(funderRows(uuid.New(), uuid.New()))

	result, err := funders.List(ctx, repo.FindParams[funder.Field]{
		Limit:  10,
		Offset: 20,
		Search: "unlatched",
		SortBy: repo.SortBy[funder.Field]{Field: funder.DefaultField()},
	})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Adjacent pages share one ORDER BY with the primary key tiebreak, so they
// partition the result set: no row repeats and none is skipped.
func TestListAdjacentPagesPartition(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	pageQuery := func(offset int) string {
		return "SELECT " + funderColumns + " FROM funder" +
			" ORDER BY funder.funder_name ASC, funder.funder_id ASC" +
			fmt.Sprintf(" LIMIT 2 OFFSET %d", offset)
	}
	mock.ExpectQuery(regexp.QuoteMeta(pageQuery(0))).WillReturnRows(funderRows(ids[0], ids[1]))
	mock.ExpectQuery(regexp.QuoteMeta(pageQuery(2))).WillReturnRows(funderRows(ids[2], ids[3]))
	mock.ExpectQuery(regexp.QuoteMeta(pageQuery(4))).WillReturnRows(funderRows(ids[4]))

	seen := make(map[uuid.UUID]struct{})
	total := 0
	for offset := 0; offset < len(ids); offset += 2 {
		page, err := funders.List(ctx, repo.FindParams[funder.Field]{
			Limit:  2,
			Offset: offset,
			SortBy: repo.SortBy[funder.Field]{Field: funder.DefaultField()},
		})
		require.NoError(t, err)
		total += len(page)
		for _, f := range page {
			seen[f.FunderID] = struct{}{}
		}
	}
	assert.Equal(t, len(ids), total)
	assert.Len(t, seen, len(ids))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListIgnoresPublisherScopeOnUnownedEntity(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	// No join and no scope condition: funders resolve to no publisher.
	query := "SELECT " + funderColumns + " FROM funder ORDER BY funder.funder_name ASC, funder.funder_id ASC"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(funderRows(uuid.New()))

	result, err := funders.List(ctx, repo.FindParams[funder.Field]{
		Publishers: []uuid.UUID{uuid.New()},
		SortBy:     repo.SortBy[funder.Field]{Field: funder.DefaultField()},
	})
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountWithPublisherScope(t *testing.T) {
	ctx, mock := newMockCtx(t)
	works := persistence.NewWorkRepository()

	publisherID := uuid.New()
	query := "SELECT COUNT(*) FROM work" +
		" INNER JOIN imprint ON work.imprint_id = imprint.imprint_id" +
		" WHERE imprint.publisher_id = ANY($1)"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs([]uuid.UUID{publisherID}).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := works.Count(ctx, repo.FindParams[work.Field]{
		Publishers: []uuid.UUID{publisherID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	id := uuid.New()
	query := "SELECT " + funderColumns + " FROM funder WHERE funder.funder_id = $1"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(id).
		WillReturnRows(funderRows())

	_, err := funders.Get(ctx, id)
	assert.ErrorIs(t, err, serrors.ErrEntityNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsStoredRow(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	now := time.Now()
	entity := funder.NewFunder{FunderName: "Knowledge Unlatched"}.Entity(uuid.New(), now)

	query := "INSERT INTO funder (funder_id, funder_name, funder_doi, created_at, updated_at)" +
		" VALUES ($1, $2, $3, $4, $5)" +
		" RETURNING funder_id, funder_name, funder_doi, created_at, updated_at"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(entity.FunderID, entity.FunderName, entity.FunderDOI, entity.CreatedAt, entity.UpdatedAt).
		WillReturnRows(funderRows(entity.FunderID))

	stored, err := funders.Create(ctx, entity)
	require.NoError(t, err)
	assert.Equal(t, entity.FunderID, stored.FunderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSkipsKeyAndCreatedAt(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	now := time.Now()
	entity := funder.NewFunder{FunderName: "Updated Name"}.Entity(uuid.New(), now)

	query := "UPDATE funder SET funder_name = $1, funder_doi = $2, updated_at = $3" +
		" WHERE funder.funder_id = $4" +
		" RETURNING funder_id, funder_name, funder_doi, created_at, updated_at"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(entity.FunderName, entity.FunderDOI, entity.UpdatedAt, entity.FunderID).
		WillReturnRows(funderRows(entity.FunderID))

	_, err := funders.Update(ctx, entity.FunderID, entity)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReturnsPriorState(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	id := uuid.New()
	query := "DELETE FROM funder WHERE funder.funder_id = $1" +
		" RETURNING funder_id, funder_name, funder_doi, created_at, updated_at"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(id).
		WillReturnRows(funderRows(id))

	deleted, err := funders.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.FunderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertHistoryWritesPreImage(t *testing.T) {
	ctx, mock := newMockCtx(t)
	funders := persistence.NewFunderRepository()

	entity := funder.NewFunder{FunderName: "Knowledge Unlatched"}.Entity(uuid.New(), time.Now())
	account := uuid.New()

	query := "INSERT INTO funder_history (funder_history_id, funder_id, account_id, data, timestamp)" +
		" VALUES ($1, $2, $3, $4, $5)"
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(pgxmock.AnyArg(), entity.FunderID, account, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, funders.InsertHistory(ctx, entity, account))
	assert.NoError(t, mock.ExpectationsWereMet())
}
