package subject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/modules/catalogue/domain/subject"
)

func TestCheckCode(t *testing.T) {
	cases := []struct {
		name        string
		subjectType subject.Type
		code        string
		ok          bool
	}{
		{"bic valid", subject.TypeBIC, "AAB", true},
		{"bic lowercase", subject.TypeBIC, "aab", false},
		{"bic digit first", subject.TypeBIC, "1AB", false},
		{"bisac valid", subject.TypeBISAC, "ANT000000", true},
		{"bisac short", subject.TypeBISAC, "ANT0000", false},
		{"bisac lowercase", subject.TypeBISAC, "ant000000", false},
		{"lcc valid", subject.TypeLCC, "NA2500", true},
		{"lcc with cutter", subject.TypeLCC, "NA2500.B5", true},
		{"lcc invalid", subject.TypeLCC, "2500NA", false},
		{"thema valid", subject.TypeThema, "AB", true},
		{"thema regional", subject.TypeThema, "1DDF", true},
		{"thema invalid", subject.TypeThema, "6AB", false},
		{"keyword free-form", subject.TypeKeyword, "anything goes", true},
		{"custom free-form", subject.TypeCustom, "shelf 12 / left", true},
		{"empty code", subject.TypeKeyword, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := subject.CheckCode(tc.subjectType, tc.code)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTypeValid(t *testing.T) {
	assert.True(t, subject.TypeThema.Valid())
	assert.False(t, subject.Type("dewey").Valid())
}
