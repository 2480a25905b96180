// util/sanitizer.go

package util

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizer cleans user supplied HTML. Post bodies keep safe
// formatting markup; comments and excerpts are reduced to plain text.
type ContentSanitizer struct {
	rich   *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewContentSanitizer() *ContentSanitizer {
	rich := bluemonday.UGCPolicy()
	rich.RequireNoFollowOnLinks(true)
	rich.AddTargetBlankToFullyQualifiedLinks(true)
	return &ContentSanitizer{
		rich:   rich,
		strict: bluemonday.StrictPolicy(),
	}
}

// SanitizeHTML keeps formatting markup and drops scripts, handlers and
// unsafe URLs.
func (s *ContentSanitizer) SanitizeHTML(input string) string {
	return strings.TrimSpace(s.rich.Sanitize(input))
}

// SanitizePlain removes every tag. Remaining text stays HTML escaped so it
// is safe to render as markup.
func (s *ContentSanitizer) SanitizePlain(input string) string {
	return strings.TrimSpace(s.strict.Sanitize(input))
}

// StripTags removes every tag and returns unescaped plain text.
func (s *ContentSanitizer) StripTags(input string) string {
	return strings.TrimSpace(html.UnescapeString(s.strict.Sanitize(input)))
}

// Excerpt returns the first max characters of the plain text, with "..."
// appended when the text was cut.
func (s *ContentSanitizer) Excerpt(input string, max int) string {
	text := strings.Join(strings.Fields(s.StripTags(input)), " ")
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "..."
}

// ReadingTime estimates minutes to read at 200 words per minute, at least 1.
func (s *ContentSanitizer) ReadingTime(input string) int {
	words := len(strings.Fields(s.StripTags(input)))
	minutes := words / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
