package locsync

import "golang.org/x/text/language"

// NormalizeCulture canonicalizes a culture tag ("en-us" -> "en-US") so that
// differently cased spellings of the same locale derive the same keys.
// Unparsable input passes through unchanged; the sync layer never reads
// ambient locale state, so culture is always an explicit caller-supplied
// value.
func NormalizeCulture(culture string) string {
	tag, err := language.Parse(culture)
	if err != nil {
		return culture
	}
	return tag.String()
}
