// Package textops implements the pure text-manipulation operations exposed
// as tools. Every function here is deterministic, performs no I/O, and
// touches no shared state; lengths and offsets are rune-based so multi-byte
// input behaves the same as ASCII.
package textops

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern      = regexp.MustCompile(`(?i)https?://[^\s<>"')\]]+`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)
)

// Reverse returns the text with its runes in reverse order.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Stats is the character-level breakdown produced by the text_info tool.
type Stats struct {
	Length            int
	WordCount         int
	CharCountNoSpaces int
	UppercaseCount    int
	LowercaseCount    int
	DigitCount        int
	LineCount         int
}

// TextStats computes per-character statistics for text.
func TextStats(text string) Stats {
	s := Stats{
		Length:    utf8.RuneCountInString(text),
		WordCount: len(strings.Fields(text)),
		LineCount: strings.Count(text, "\n") + 1,
	}
	for _, r := range text {
		if r != ' ' {
			s.CharCountNoSpaces++
		}
		switch {
		case unicode.IsUpper(r):
			s.UppercaseCount++
		case unicode.IsLower(r):
			s.LowercaseCount++
		case unicode.IsDigit(r):
			s.DigitCount++
		}
	}
	return s
}

// Slugify converts text into a URL-safe slug: NFKD-decomposed, non-ASCII
// dropped, lower-cased, with non-alphanumeric runs collapsed to single
// hyphens and leading/trailing hyphens trimmed.
func Slugify(text string) string {
	decomposed := norm.NFKD.String(text)
	var ascii strings.Builder
	ascii.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			ascii.WriteRune(r)
		}
	}
	slug := strings.ToLower(ascii.String())
	slug = nonAlnumPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ExtractURLs returns all http/https URLs found in text, in order of
// appearance. Trailing quote, bracket, and whitespace characters terminate a
// match.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// Truncate shortens text so the result, including suffix, does not exceed
// maxLength runes. The cut lands on a word boundary when one exists within
// the limit. The boolean reports whether any truncation occurred.
func Truncate(text string, maxLength int, suffix string) (string, bool) {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text, false
	}

	limit := maxLength - utf8.RuneCountInString(suffix)
	if limit <= 0 {
		// No room for content: the suffix itself is clipped to fit.
		suffixRunes := []rune(suffix)
		if maxLength < len(suffixRunes) {
			return string(suffixRunes[:maxLength]), true
		}
		return suffix, true
	}

	truncated := string(runes[:limit])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		truncated = truncated[:lastSpace]
	}
	truncated = strings.TrimRightFunc(truncated, unicode.IsSpace)
	return truncated + suffix, true
}

// TokenEstimateMethod documents the heuristic used by EstimateTokens. The
// estimate approximates common LLM tokenizers but matches none of them
// exactly.
const TokenEstimateMethod = "words * 1.3"

// EstimateTokens estimates the token count of text from its word count.
func EstimateTokens(text string) (estimated, words int) {
	words = len(strings.Fields(text))
	estimated = int(math.Ceil(float64(words) * 1.3))
	return estimated, words
}
