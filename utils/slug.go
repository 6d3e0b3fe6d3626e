package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackSlugBase is used when a title collapses to nothing.
const FallbackSlugBase = "post"

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-safe slug: accents are decomposed and
// stripped, the result is lowercased, and every run of non-alphanumeric
// characters collapses to a single hyphen. May return "" for titles with no
// usable characters; callers fall back to FallbackSlugBase.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, " ", "-")
	result = nonSlugChars.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// SlugBase is Slugify with the empty-result fallback applied.
func SlugBase(title string) string {
	if base := Slugify(title); base != "" {
		return base
	}
	return FallbackSlugBase
}
