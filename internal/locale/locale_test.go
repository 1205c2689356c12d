package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTerritoryKnown(t *testing.T) {
	territory, ok := LookupTerritory(2)
	assert.True(t, ok)
	assert.Equal(t, TerritoryAlbania, territory)
	assert.Equal(t, "Albania", territory.String())
}

func TestLookupTerritoryUnknown(t *testing.T) {
	_, ok := LookupTerritory(0xFFFF)
	assert.False(t, ok)
	assert.Equal(t, "Territory(65535)", Territory(0xFFFF).String())
}

func TestLookupLanguageKnown(t *testing.T) {
	language, ok := LookupLanguage(0x3B)
	assert.True(t, ok)
	assert.Equal(t, LanguageJapanese, language)
	assert.Equal(t, "Japanese", language.String())
}

func TestLookupLanguageUnknown(t *testing.T) {
	_, ok := LookupLanguage(0xFFFF)
	assert.False(t, ok)
}
