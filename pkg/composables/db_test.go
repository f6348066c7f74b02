package composables_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/composables"
)

func TestUseTxWithoutPoolOrTx(t *testing.T) {
	_, err := composables.UseTx(context.Background())
	assert.ErrorIs(t, err, composables.ErrNoPool)
}

func TestUseTxReturnsBoundTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ctx := composables.WithTx(context.Background(), tx)
	got, err := composables.UseTx(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestInTxReusesExistingTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ctx := composables.WithTx(context.Background(), tx)
	calls := 0
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		calls++
		inner, err := composables.UseTx(txCtx)
		require.NoError(t, err)
		assert.NotNil(t, inner)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	// No commit expected: the outer owner controls the transaction.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUseAccess(t *testing.T) {
	_, err := composables.UseAccess(context.Background())
	assert.ErrorIs(t, err, composables.ErrNoAccess)

	ctx := composables.WithAccess(context.Background(), access.Superuser())
	a, err := composables.UseAccess(ctx)
	require.NoError(t, err)
	assert.True(t, a.Superuser)
}

func TestUseAccount(t *testing.T) {
	_, err := composables.UseAccount(context.Background())
	assert.ErrorIs(t, err, composables.ErrNoAccount)

	id := uuid.New()
	ctx := composables.WithAccount(context.Background(), id)
	got, err := composables.UseAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
