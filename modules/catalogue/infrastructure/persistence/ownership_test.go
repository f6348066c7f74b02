package persistence_test

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colophon-press/colophon/modules/catalogue/infrastructure/persistence"
	"github.com/colophon-press/colophon/pkg/serrors"
)

func TestOwningPublisherOfPublicationWalksFullChain(t *testing.T) {
	ctx, mock := newMockCtx(t)
	owners := persistence.NewOwnershipResolver()

	publicationID := uuid.New()
	publisherID := uuid.New()

	query := "SELECT imprint.publisher_id FROM publication" +
		" INNER JOIN work ON publication.work_id = work.work_id" +
		" INNER JOIN imprint ON work.imprint_id = imprint.imprint_id" +
		" WHERE publication.publication_id = $1"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(publicationID).
		WillReturnRows(pgxmock.NewRows([]string{"publisher_id"}).AddRow(publisherID))

	got, err := owners.OwningPublisher(ctx, persistence.KindPublication, publicationID)
	require.NoError(t, err)
	assert.Equal(t, publisherID, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwningPublisherOfPublisherIsItself(t *testing.T) {
	ctx, mock := newMockCtx(t)
	owners := persistence.NewOwnershipResolver()

	publisherID := uuid.New()
	query := "SELECT publisher.publisher_id FROM publisher WHERE publisher.publisher_id = $1"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(publisherID).
		WillReturnRows(pgxmock.NewRows([]string{"publisher_id"}).AddRow(publisherID))

	got, err := owners.OwningPublisher(ctx, persistence.KindPublisher, publisherID)
	require.NoError(t, err)
	assert.Equal(t, publisherID, got)
}

func TestOwningPublisherMissingEntity(t *testing.T) {
	ctx, mock := newMockCtx(t)
	owners := persistence.NewOwnershipResolver()

	id := uuid.New()
	mock.ExpectQuery("SELECT imprint.publisher_id FROM work").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"publisher_id"}))

	_, err := owners.OwningPublisher(ctx, persistence.KindWork, id)
	assert.ErrorIs(t, err, serrors.ErrEntityNotFound)
}

func TestOwningPublisherUnknownKind(t *testing.T) {
	ctx, _ := newMockCtx(t)
	owners := persistence.NewOwnershipResolver()

	_, err := owners.OwningPublisher(ctx, persistence.Kind("contributor"), uuid.New())
	assert.ErrorIs(t, err, serrors.ErrEntityNotFound)
}
