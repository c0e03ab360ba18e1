package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAffirmative(t *testing.T) {
	for _, input := range []string{
		"sí",
		"si",
		"Sí!",
		"ok",
		"ok 👍",
		"dale",
		"claro que sí",
		"confirmo",
		"acepto",
	} {
		t.Run(input, func(t *testing.T) {
			assert.True(t, IsAffirmative(input))
			assert.False(t, IsNegative(input))
		})
	}
}

func TestIsNegative(t *testing.T) {
	for _, input := range []string{
		"no",
		"No, gracias",
		"cancela",
		"cancelar",
		"olvídalo",
	} {
		t.Run(input, func(t *testing.T) {
			assert.True(t, IsNegative(input))
			assert.False(t, IsAffirmative(input))
		})
	}
}

func TestUnclearReply(t *testing.T) {
	for _, input := range []string{
		"tal vez",
		"quizas",
		"hola",
		"",
		"🤔",
	} {
		t.Run(input, func(t *testing.T) {
			assert.False(t, IsAffirmative(input))
			assert.False(t, IsNegative(input))
		})
	}
}

func TestAffirmativeIsPrefixMatch(t *testing.T) {
	// "sientate" starts with "si" but is not a word-boundary match.
	assert.False(t, IsAffirmative("sientate"))
	// "nosotros" starts with "no" but is not a word-boundary match.
	assert.False(t, IsNegative("nosotros"))
}
