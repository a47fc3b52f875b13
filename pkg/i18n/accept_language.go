package i18n

import (
	"slices"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// BestMatch picks the language of an Accept-Language header.
//
// Only the first tag of the header is considered and quality values are
// ignored. The tag is lowercased and returned when it is one of the
// available languages; otherwise, and for empty or malformed headers,
// fallback is returned.
//
// Example header: "de-DE,de;q=0.9,en;q=0.8"
// Available: ["de-de", "en"]
// Returns: "de-de"
func BestMatch(header string, available []string, fallback string) string {
	tag, ok := firstLanguageTag(header)
	if !ok {
		return fallback
	}
	if slices.ContainsFunc(available, func(a string) bool {
		return normalizeLanguageTag(a) == tag
	}) {
		return tag
	}
	return fallback
}

// firstLanguageTag returns the normalized first tag of an Accept-Language
// header. Wildcards and tags with characters outside [A-Za-z0-9_-] are
// reported as malformed.
func firstLanguageTag(header string) (string, bool) {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	tag := normalizeLanguageTag(first)
	if tag == "" || tag == "*" {
		return "", false
	}
	for _, r := range tag {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return "", false
		}
	}
	return tag, true
}

// normalizeLanguageTag normalizes a language tag to lowercase.
func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
