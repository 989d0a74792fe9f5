package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "jarron grande", Normalize("  Jarrón GRANDE "))
	assert.Equal(t, "", Normalize("   "))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"necesito", "una", "matera"}, Tokenize("Necesito una matera!"))
	assert.Empty(t, Tokenize("¿¡!?"))
}

func TestResolveCanon(t *testing.T) {
	cases := map[string]string{
		"necesito una matera para mi jardín":    CanonMatera,
		"quiero un JARRÓN alto":                 CanonJarron,
		"busco tazas para café":                 CanonPocillo,
		"algo donde beber agua":                 CanonPocillo,
		"una bandeja para servir":               CanonPlato,
		"un juego de platos":                    CanonSet,
		"quiero algo bonito para regalar":       "",
		"":                                      "",
		"lugar para colocar plantas de sombra":  CanonMatera,
		"utensilio para echar agua en la mesa":  CanonJarron,
	}
	for in, want := range cases {
		assert.Equal(t, want, ResolveCanon(in), "ResolveCanon(%q)", in)
	}
}

func TestResolveCanon_PhraseBeforeToken(t *testing.T) {
	// "juego de platos" starts with the set phrase; the phrase match at
	// position 0 wins over the later "platos" token.
	assert.Equal(t, CanonSet, ResolveCanon("juego de platos"))
}

func TestSynonymsFor(t *testing.T) {
	terms := SynonymsFor(CanonMatera)
	assert.Contains(t, terms, "matera")
	assert.Contains(t, terms, "maceta")
	assert.Contains(t, terms, "jardinera")

	seen := map[string]bool{}
	for _, term := range terms {
		assert.False(t, seen[term], "duplicate term %q", term)
		seen[term] = true
	}

	assert.Nil(t, SynonymsFor("lampara"))
}
