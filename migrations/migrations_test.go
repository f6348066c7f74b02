package migrations

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting an entity must take its audit trail with it, so every history
// table references its entity with ON DELETE CASCADE. Without the cascade
// any entity updated once could never be deleted.
func TestHistoryForeignKeysCascade(t *testing.T) {
	data, err := FS.ReadFile("20250901000002_catalogue_history.sql")
	require.NoError(t, err)

	refs := regexp.MustCompile(`REFERENCES [a-z_]+ \([a-z_, ]+\)( ON DELETE CASCADE)?`).
		FindAllString(string(data), -1)
	require.Len(t, refs, 14)
	for _, ref := range refs {
		assert.True(t, strings.HasSuffix(ref, "ON DELETE CASCADE"), ref)
	}
}
