package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTMLStripsActiveContent(t *testing.T) {
	s := NewContentSanitizer()

	out := s.SanitizeHTML(`<p>Hello <strong>world</strong></p><script>alert(1)</script>`)
	assert.Contains(t, out, "<strong>world</strong>")
	assert.NotContains(t, out, "<script")

	assert.NotContains(t, s.SanitizeHTML(`<img src="x.png" onerror="alert(1)">`), "onerror")
	assert.NotContains(t, s.SanitizeHTML(`<iframe src="https://evil.example"></iframe>`), "<iframe")
	assert.NotContains(t, s.SanitizeHTML(`<a href="javascript:alert(1)">x</a>`), "javascript:")
}

func TestSanitizePlainRemovesAllTags(t *testing.T) {
	s := NewContentSanitizer()
	out := s.SanitizePlain(`<script>alert(1)</script>Nice article! <b>bold</b>`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "Nice article!")
}

func TestExcerpt(t *testing.T) {
	s := NewContentSanitizer()
	assert.Equal(t, "short text", s.Excerpt("<p>short   text</p>", 200))

	long := "<p>" + strings.Repeat("a", 250) + "</p>"
	out := s.Excerpt(long, 200)
	assert.Equal(t, strings.Repeat("a", 200)+"...", out)
}

func TestReadingTime(t *testing.T) {
	s := NewContentSanitizer()
	assert.Equal(t, 1, s.ReadingTime("<p>just a few words</p>"))
	assert.Equal(t, 3, s.ReadingTime(strings.Repeat("word ", 650)))
}
