package composables

import (
	"context"
	"errors"

	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/constants"
	"github.com/google/uuid"
)

var (
	ErrNoAccess  = errors.New("no access descriptor found in context")
	ErrNoAccount = errors.New("no account ID found in context")
)

func WithAccess(ctx context.Context, a access.Access) context.Context {
	return context.WithValue(ctx, constants.AccessKey, a)
}

func UseAccess(ctx context.Context) (access.Access, error) {
	a, ok := ctx.Value(constants.AccessKey).(access.Access)
	if !ok {
		return access.Access{}, ErrNoAccess
	}
	return a, nil
}

// WithAccount binds the acting account's ID, recorded on every history row.
func WithAccount(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.AccountKey, accountID)
}

func UseAccount(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.AccountKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoAccount
	}
	return id, nil
}
