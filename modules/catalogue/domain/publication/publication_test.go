package publication_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/modules/catalogue/domain/publication"
)

func TestTypeDigital(t *testing.T) {
	assert.False(t, publication.TypePaperback.Digital())
	assert.False(t, publication.TypeHardback.Digital())
	assert.True(t, publication.TypePDF.Digital())
	assert.True(t, publication.TypeHTML.Digital())
	assert.True(t, publication.TypeXML.Digital())
	assert.True(t, publication.TypeEpub.Digital())
	assert.True(t, publication.TypeMobi.Digital())
}

func TestTypeValid(t *testing.T) {
	assert.True(t, publication.TypeEpub.Valid())
	assert.False(t, publication.Type("audiobook").Valid())
}
