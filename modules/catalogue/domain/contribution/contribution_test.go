package contribution_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/modules/catalogue/domain/contribution"
)

func TestKeyRoundTrip(t *testing.T) {
	n := contribution.NewContribution{
		WorkID:              uuid.New(),
		ContributorID:       uuid.New(),
		ContributionType:    contribution.TypeAuthor,
		LastName:            "Doe",
		FullName:            "Jane Doe",
		ContributionOrdinal: 1,
	}
	c := n.Entity(time.Now())

	key := c.Key()
	assert.Equal(t, n.WorkID, key.WorkID)
	assert.Equal(t, n.ContributorID, key.ContributorID)
	assert.Equal(t, contribution.TypeAuthor, key.ContributionType)

	p := contribution.PatchContribution{
		WorkID:           n.WorkID,
		ContributorID:    n.ContributorID,
		ContributionType: n.ContributionType,
	}
	assert.Equal(t, key, p.PatchKey())
}

func TestApplyKeepsKey(t *testing.T) {
	now := time.Now()
	current := contribution.NewContribution{
		WorkID:              uuid.New(),
		ContributorID:       uuid.New(),
		ContributionType:    contribution.TypeEditor,
		LastName:            "Doe",
		FullName:            "Jane Doe",
		ContributionOrdinal: 1,
	}.Entity(now.Add(-time.Hour))

	p := contribution.PatchContribution{
		WorkID:              current.WorkID,
		ContributorID:       current.ContributorID,
		ContributionType:    current.ContributionType,
		MainContribution:    true,
		LastName:            "Doe",
		FullName:            "Dr. Jane Doe",
		ContributionOrdinal: 2,
	}
	updated := p.Apply(current, now)

	assert.Equal(t, current.Key(), updated.Key())
	assert.True(t, updated.MainContribution)
	assert.Equal(t, "Dr. Jane Doe", updated.FullName)
	assert.Equal(t, 2, updated.ContributionOrdinal)
	assert.Equal(t, current.CreatedAt, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestTypeValid(t *testing.T) {
	assert.True(t, contribution.TypeForewordBy.Valid())
	assert.False(t, contribution.Type("ghostwriter").Valid())
}
