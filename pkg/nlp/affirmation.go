package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// Confirmation replies arrive as free text ("sí!", "ok 👍", "no, cancela").
// Both detectors normalize the same way the classifier does, additionally
// stripping emoji, and then match small fixed keyword sets. Anything that
// matches neither set is "unclear"; the caller treats unclear as an
// implicit cancellation, so the confirmation loop is bounded to a single
// round-trip.

var (
	emojiPattern = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2190}-\x{27BF}\x{FE0F}\x{2B00}-\x{2BFF}]`)

	affirmativePattern = regexp.MustCompile(`^(si|ok|dale|claro|confirmo|acepto)\b`)
	negativePattern    = regexp.MustCompile(`^(no\b|cancela|olvida)`)
)

// IsAffirmative reports whether the reply is an explicit yes.
func IsAffirmative(text string) bool {
	return affirmativePattern.MatchString(normalizeReply(text))
}

// IsNegative reports whether the reply is an explicit no or cancellation.
func IsNegative(text string) bool {
	return negativePattern.MatchString(normalizeReply(text))
}

func normalizeReply(text string) string {
	text = emojiPattern.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, text)

	return Normalize(text)
}
