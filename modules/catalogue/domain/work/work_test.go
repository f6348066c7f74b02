package work_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/modules/catalogue/domain/work"
)

func TestNewWorkEntity(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	imprintID := uuid.New()

	n := work.NewWork{
		WorkType:        work.TypeMonograph,
		WorkStatus:      work.StatusActive,
		FullTitle:       "A Title: The Subtitle",
		Title:           "A Title",
		Edition:         1,
		ImprintID:       imprintID,
		CopyrightHolder: "The Author",
	}
	w := n.Entity(id, now)

	assert.Equal(t, id, w.WorkID)
	assert.Equal(t, imprintID, w.ImprintID)
	assert.Equal(t, now, w.CreatedAt)
	assert.Equal(t, now, w.UpdatedAt)
}

func TestPatchWorkApplyPreservesIdentity(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	id := uuid.New()
	current := work.Work{
		WorkID:          id,
		WorkType:        work.TypeMonograph,
		WorkStatus:      work.StatusForthcoming,
		FullTitle:       "Old Title",
		Title:           "Old Title",
		Edition:         1,
		ImprintID:       uuid.New(),
		CopyrightHolder: "The Author",
		CreatedAt:       created,
		UpdatedAt:       created,
	}

	now := time.Now()
	p := work.PatchWork{
		WorkID:          id,
		WorkType:        work.TypeMonograph,
		WorkStatus:      work.StatusActive,
		FullTitle:       "New Title",
		Title:           "New Title",
		Edition:         2,
		ImprintID:       current.ImprintID,
		CopyrightHolder: "The Author",
	}
	updated := p.Apply(current, now)

	assert.Equal(t, id, updated.WorkID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.Equal(t, work.StatusActive, updated.WorkStatus)
	assert.Equal(t, "New Title", updated.FullTitle)
	assert.Equal(t, 2, updated.Edition)
}

func TestTypeAndStatusValid(t *testing.T) {
	assert.True(t, work.TypeEditedBook.Valid())
	assert.False(t, work.Type("pamphlet").Valid())
	assert.True(t, work.StatusWithdrawnFromSale.Valid())
	assert.False(t, work.Status("lost").Valid())
}
