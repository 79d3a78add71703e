package utils

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^\w\s.-]`)
	filenameWhitespace  = regexp.MustCompile(`\s+`)
)

// SanitizeFilename folds accented letters to ASCII, drops everything except
// word characters, whitespace, dots and dashes, then collapses whitespace runs
// into underscores.
func SanitizeFilename(name string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(folder, name); err == nil {
		name = folded
	}
	safe := unsafeFilenameChars.ReplaceAllString(name, "")
	return filenameWhitespace.ReplaceAllString(safe, "_")
}
