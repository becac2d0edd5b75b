package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolve_PreferenceWins(t *testing.T) {
	b := New("en")
	tag := b.Resolve("pl", "en-US,en;q=0.9")
	assert.Equal(t, language.Polish, tag)
}

func TestResolve_AcceptHeaderFallback(t *testing.T) {
	b := New("en")
	tag := b.Resolve("", "pl-PL,pl;q=0.9,en;q=0.5")
	assert.Equal(t, language.Polish, tag)
}

func TestResolve_DefaultWhenNothingMatches(t *testing.T) {
	b := New("en")
	assert.Equal(t, language.English, b.Resolve("", ""))
	assert.Equal(t, language.English, b.Resolve("zz-bogus", "not-a-header;;;"))
}

func TestResolve_ConfiguredDefault(t *testing.T) {
	b := New("pl")
	assert.Equal(t, language.Polish, b.Resolve("", ""))

	// Unsupported default falls back to English.
	b = New("de")
	assert.Equal(t, language.English, b.Resolve("", ""))
}

func TestSupported(t *testing.T) {
	b := New("en")
	assert.True(t, b.Supported("en"))
	assert.True(t, b.Supported("pl"))
	assert.False(t, b.Supported("de"))
	assert.False(t, b.Supported("!!"))
}

func TestT(t *testing.T) {
	b := New("en")

	assert.Equal(t, "Enter a positive amount.", b.T(language.English, KeyAmountPositive))
	assert.Equal(t, "Podaj dodatnią kwotę.", b.T(language.Polish, KeyAmountPositive))

	// Unknown language falls back to English.
	assert.Equal(t, "Enter a positive amount.", b.T(language.German, KeyAmountPositive))

	// Unknown key comes back unchanged.
	assert.Equal(t, "no.such.key", b.T(language.English, "no.such.key"))
}
