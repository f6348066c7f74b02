package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colophon-press/colophon/pkg/serrors"
)

func TestFromDatabaseNil(t *testing.T) {
	assert.NoError(t, serrors.FromDatabase(nil))
}

func TestFromDatabaseNoRows(t *testing.T) {
	err := serrors.FromDatabase(pgx.ErrNoRows)
	assert.ErrorIs(t, err, serrors.ErrEntityNotFound)
}

func TestFromDatabaseKnownConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "issue_series_id_work_id_uniq",
	}
	err := serrors.FromDatabase(pgErr)

	require.ErrorIs(t, err, serrors.ErrDatabaseConstraint)
	assert.Equal(t, "An issue on the selected series already exists for this work.", err.Error())
}

func TestFromDatabaseUnknownConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "something_private_uniq",
		Message:        "duplicate key value violates unique constraint",
	}
	err := serrors.FromDatabase(pgErr)

	require.ErrorIs(t, err, serrors.ErrDatabase)
	assert.NotContains(t, err.Error(), "duplicate key")
}

func TestFromDatabaseWrappedPgError(t *testing.T) {
	pgErr := &pgconn.PgError{ConstraintName: "location_url_check"}
	err := serrors.FromDatabase(fmt.Errorf("exec failed: %w", pgErr))
	assert.ErrorIs(t, err, serrors.ErrDatabaseConstraint)
}

func TestFromDatabasePassthrough(t *testing.T) {
	sentinel := errors.New("not a database error")
	assert.Same(t, sentinel, serrors.FromDatabase(sentinel))
}

func TestBaseErrorIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", serrors.ErrUnauthorised)
	assert.ErrorIs(t, wrapped, serrors.ErrUnauthorised)
	assert.NotErrorIs(t, wrapped, serrors.ErrEntityNotFound)

	// Constraint errors share a code but differ in message.
	a := serrors.NewDatabaseConstraintError("first")
	assert.ErrorIs(t, a, serrors.ErrDatabaseConstraint)
}
