package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/repo"
	"github.com/colophon-press/colophon/pkg/serrors"
)

// Kind names the entity families that hang off the publisher hierarchy.
// Entities with no publisher lineage (contributors, funders) have no Kind.
type Kind string

const (
	KindPublisher   Kind = "publisher"
	KindImprint     Kind = "imprint"
	KindWork        Kind = "work"
	KindPublication Kind = "publication"
	KindSeries      Kind = "series"
)

// chain describes how to walk from an entity's table up to the publisher
// that owns it.
type chain struct {
	from         string
	keyCol       string
	joins        []string
	publisherCol string
}

var chains = map[Kind]chain{
	KindPublisher: {
		from:         "publisher",
		keyCol:       "publisher.publisher_id",
		publisherCol: "publisher.publisher_id",
	},
	KindImprint: {
		from:         "imprint",
		keyCol:       "imprint.imprint_id",
		publisherCol: "imprint.publisher_id",
	},
	KindWork: {
		from:         "work",
		keyCol:       "work.work_id",
		joins:        []string{"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id"},
		publisherCol: "imprint.publisher_id",
	},
	KindPublication: {
		from:   "publication",
		keyCol: "publication.publication_id",
		joins: []string{
			"INNER JOIN work ON publication.work_id = work.work_id",
			"INNER JOIN imprint ON work.imprint_id = imprint.imprint_id",
		},
		publisherCol: "imprint.publisher_id",
	},
	KindSeries: {
		from:         "series",
		keyCol:       "series.series_id",
		joins:        []string{"INNER JOIN imprint ON series.imprint_id = imprint.imprint_id"},
		publisherCol: "imprint.publisher_id",
	},
}

// OwnershipResolver maps an entity reference to the publisher that owns it,
// walking the imprint chain as needed.
type OwnershipResolver struct{}

func NewOwnershipResolver() *OwnershipResolver {
	return &OwnershipResolver{}
}

// OwningPublisher returns the publisher owning the identified entity. A
// missing entity, or a broken link anywhere along the chain, reads as not
// found.
func (o *OwnershipResolver) OwningPublisher(ctx context.Context, kind Kind, id uuid.UUID) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	c, ok := chains[kind]
	if !ok {
		return uuid.Nil, serrors.ErrEntityNotFound
	}

	query := repo.Join(
		"SELECT "+c.publisherCol+" FROM "+c.from,
		strings.Join(c.joins, " "),
		repo.JoinWhere(c.keyCol+" = $1"),
	)

	var publisherID uuid.UUID
	if err := tx.QueryRow(ctx, query, id).Scan(&publisherID); err != nil {
		if err == pgx.ErrNoRows {
			return uuid.Nil, serrors.ErrEntityNotFound
		}
		return uuid.Nil, serrors.FromDatabase(err)
	}
	return publisherID, nil
}
