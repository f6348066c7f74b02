package access_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/serrors"
)

func TestCanEdit(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()

	a := access.ForPublishers(mine)
	assert.NoError(t, a.CanEdit(mine))
	assert.ErrorIs(t, a.CanEdit(other), serrors.ErrUnauthorised)

	assert.NoError(t, access.Superuser().CanEdit(other))
	assert.ErrorIs(t, access.Access{}.CanEdit(mine), serrors.ErrUnauthorised)
}

func TestRequireSuperuser(t *testing.T) {
	assert.NoError(t, access.Superuser().RequireSuperuser())
	assert.ErrorIs(t, access.ForPublishers(uuid.New()).RequireSuperuser(), serrors.ErrUnauthorised)
}
