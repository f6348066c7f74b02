// Package access describes what an authenticated caller may modify. Reads
// are never gated; every mutation must pass through an Access check before
// any row is touched.
package access

import (
	"github.com/colophon-press/colophon/pkg/serrors"
	"github.com/google/uuid"
)

// Access is a caller's permission descriptor: either superuser, or a
// concrete set of publisher IDs the caller may modify.
type Access struct {
	Superuser  bool
	Publishers []uuid.UUID
}

func Superuser() Access {
	return Access{Superuser: true}
}

func ForPublishers(ids ...uuid.UUID) Access {
	return Access{Publishers: ids}
}

// CanEdit reports whether the caller may modify entities owned by the given
// publisher. Rejection is serrors.ErrUnauthorised.
func (a Access) CanEdit(publisherID uuid.UUID) error {
	if a.Superuser {
		return nil
	}
	for _, id := range a.Publishers {
		if id == publisherID {
			return nil
		}
	}
	return serrors.ErrUnauthorised
}

// RequireSuperuser gates operations with no owning publisher, such as
// creating a new top-level publisher.
func (a Access) RequireSuperuser() error {
	if !a.Superuser {
		return serrors.ErrUnauthorised
	}
	return nil
}
