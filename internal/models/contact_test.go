package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalArea(t *testing.T) {
	assert.Len(t, LegalAreas, 6)
	for _, a := range LegalAreas {
		assert.True(t, a.Valid(), a)
		assert.Contains(t, Categories, a.Label())
	}

	assert.False(t, LegalArea("tax-law").Valid())
	assert.False(t, LegalArea("").Valid())
	assert.Equal(t, "tax-law", LegalArea("tax-law").Label())
	assert.Equal(t, "Family Law", FamilyLawArea.Label())
}
