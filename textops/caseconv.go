package textops

import (
	"fmt"
	"regexp"
	"strings"
)

// Case format names accepted by TransformCase.
const (
	CaseSnake          = "snake_case"
	CaseScreamingSnake = "SCREAMING_SNAKE_CASE"
	CaseCamel          = "camelCase"
	CasePascal         = "PascalCase"
	CaseKebab          = "kebab-case"
	CaseTitle          = "Title Case"

	// CaseUnknown is reported by DetectCase when no format matches.
	CaseUnknown = "unknown"
)

// SupportedCases lists the accepted target formats in presentation order.
var SupportedCases = []string{
	CaseSnake,
	CaseScreamingSnake,
	CaseCamel,
	CasePascal,
	CaseKebab,
	CaseTitle,
}

// Detection order matters: earlier patterns win for ambiguous input, e.g. a
// single lower-case word matches camelCase before PascalCase is considered.
var caseFormats = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{CaseSnake, regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)+$`)},
	{CaseScreamingSnake, regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)+$`)},
	{CaseCamel, regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)},
	{CasePascal, regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)},
	{CaseKebab, regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`)},
	{CaseTitle, regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+)+$`)},
}

var (
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	acronymBoundary    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordSeparator      = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// DetectCase reports which case format text is written in, or CaseUnknown.
func DetectCase(text string) string {
	for _, format := range caseFormats {
		if format.pattern.MatchString(text) {
			return format.name
		}
	}
	return CaseUnknown
}

// SplitWords splits text into lower-cased words regardless of input format,
// handling camelCase boundaries and embedded acronyms.
func SplitWords(text string) []string {
	text = lowerUpperBoundary.ReplaceAllString(text, "${1}_${2}")
	text = acronymBoundary.ReplaceAllString(text, "${1}_${2}")

	parts := wordSeparator.Split(text, -1)
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			words = append(words, strings.ToLower(part))
		}
	}
	return words
}

// TransformCase rewrites text into the target case format and reports the
// detected source format. It fails when the target is not a supported format
// or when the text contains no words to transform.
func TransformCase(text, target string) (transformed, detected string, err error) {
	if !isSupportedCase(target) {
		return "", "", fmt.Errorf("unknown target case '%s'; valid: %s", target, strings.Join(SupportedCases, ", "))
	}

	words := SplitWords(text)
	if len(words) == 0 {
		return "", "", fmt.Errorf("text contains no words to transform")
	}

	return joinWords(words, target), DetectCase(text), nil
}

func joinWords(words []string, target string) string {
	switch target {
	case CaseSnake:
		return strings.Join(words, "_")
	case CaseScreamingSnake:
		upper := make([]string, len(words))
		for i, w := range words {
			upper[i] = strings.ToUpper(w)
		}
		return strings.Join(upper, "_")
	case CaseCamel:
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(capitalize(w))
		}
		return b.String()
	case CasePascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String()
	case CaseKebab:
		return strings.Join(words, "-")
	case CaseTitle:
		titled := make([]string, len(words))
		for i, w := range words {
			titled[i] = capitalize(w)
		}
		return strings.Join(titled, " ")
	default:
		return strings.Join(words, "_")
	}
}

// capitalize upper-cases the first character of an already lower-cased word.
// Split words are ASCII alphanumeric, so byte indexing is safe.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func isSupportedCase(target string) bool {
	for _, c := range SupportedCases {
		if c == target {
			return true
		}
	}
	return false
}
