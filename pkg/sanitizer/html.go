package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy      *bluemonday.Policy
	translationPolicy *bluemonday.Policy
	initOnce          sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Translators may emphasize words and link to pages, nothing more.
		translationPolicy = bluemonday.NewPolicy()
		translationPolicy.AllowStandardURLs()
		translationPolicy.AllowElements(
			"br", "span",
			"strong", "b", "em", "i", "u",
			"small", "sub", "sup",
			"code", "kbd", "abbr",
		)
		translationPolicy.AllowAttrs("href", "title").OnElements("a")
		translationPolicy.AllowAttrs("title").OnElements("abbr")
		translationPolicy.AllowAttrs("lang", "dir").Globally()
		translationPolicy.RequireNoFollowOnLinks(true)
	})
}

// TranslationHTML keeps the inline markup allowed in translated messages
// (emphasis, links, line breaks, code) and strips everything else,
// including scripts, event handlers and javascript: URLs.
func TranslationHTML(s string) string {
	initPolicies()
	return translationPolicy.Sanitize(s)
}

// StripHTML removes all markup and returns plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
