package textops

import (
	"fmt"
	"unicode/utf8"

	"github.com/petal-labs/textutils/tool"
)

// Registrations returns descriptors for every built-in text tool, in the
// order they are exposed by discovery.
func Registrations() []tool.Descriptor {
	return []tool.Descriptor{
		{
			Name:        "reverse_text",
			Description: "Reverse the characters in a text string.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to reverse", Required: true},
			},
			Handler: reverseText,
		},
		{
			Name:        "text_info",
			Description: "Analyze a text string: word count, character breakdown, line count.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to analyze", Required: true},
			},
			Handler: textInfo,
		},
		{
			Name:        "transform_case",
			Description: "Convert text between case formats: snake_case, SCREAMING_SNAKE_CASE, camelCase, PascalCase, kebab-case, Title Case.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to convert", Required: true},
				{Name: "target_case", Type: tool.TypeString, Description: "Target case format", Required: true},
			},
			Handler: transformCase,
		},
		{
			Name:        "slugify",
			Description: "Convert text into a URL-safe slug.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to slugify", Required: true},
			},
			Handler: slugify,
		},
		{
			Name:        "extract_urls",
			Description: "Extract all URLs from a block of text.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to scan", Required: true},
			},
			Handler: extractURLs,
		},
		{
			Name:        "truncate",
			Description: "Truncate text at a word boundary with a configurable suffix.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to truncate", Required: true},
				{Name: "max_length", Type: tool.TypeInteger, Description: "Maximum result length including suffix", Default: 100},
				{Name: "suffix", Type: tool.TypeString, Description: "Appended when truncation occurs", Default: "..."},
			},
			Handler: truncate,
		},
		{
			Name:        "count_tokens",
			Description: "Estimate the token count for a text string using a word-based heuristic.",
			Params: []tool.ParamSpec{
				{Name: "text", Type: tool.TypeString, Description: "The text to estimate", Required: true},
			},
			Handler: countTokens,
		},
	}
}

// Register adds every built-in tool to the registry, skipping names present
// in the disabled set.
func Register(r *tool.Registry, disabled map[string]bool) error {
	for _, d := range Registrations() {
		if disabled[d.Name] {
			continue
		}
		if err := r.Register(d); err != nil {
			return fmt.Errorf("registering built-in tools: %w", err)
		}
	}
	return nil
}

func reverseText(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	return map[string]any{
		"original": text,
		"reversed": Reverse(text),
		"length":   utf8.RuneCountInString(text),
	}, nil
}

func textInfo(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	stats := TextStats(text)
	return map[string]any{
		"text":                 text,
		"length":               stats.Length,
		"word_count":           stats.WordCount,
		"char_count_no_spaces": stats.CharCountNoSpaces,
		"uppercase_count":      stats.UppercaseCount,
		"lowercase_count":      stats.LowercaseCount,
		"digit_count":          stats.DigitCount,
		"line_count":           stats.LineCount,
	}, nil
}

func transformCase(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	target, _ := args["target_case"].(string)

	transformed, detected, err := TransformCase(text, target)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"original":    text,
		"transformed": transformed,
		"from_format": detected,
		"to_format":   target,
	}, nil
}

func slugify(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	return map[string]any{
		"original": text,
		"slug":     Slugify(text),
	}, nil
}

func extractURLs(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	urls := ExtractURLs(text)
	if urls == nil {
		urls = []string{}
	}
	return map[string]any{
		"text":  text,
		"urls":  urls,
		"count": len(urls),
	}, nil
}

func truncate(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	maxLength, _ := args["max_length"].(int)
	suffix, _ := args["suffix"].(string)

	if maxLength < 1 {
		return nil, fmt.Errorf("max_length must be at least 1, got %d", maxLength)
	}

	truncated, wasTruncated := Truncate(text, maxLength, suffix)
	return map[string]any{
		"original":         text,
		"truncated":        truncated,
		"original_length":  utf8.RuneCountInString(text),
		"truncated_length": utf8.RuneCountInString(truncated),
		"was_truncated":    wasTruncated,
	}, nil
}

func countTokens(args map[string]any) (any, error) {
	text, _ := args["text"].(string)
	estimated, words := EstimateTokens(text)
	return map[string]any{
		"text":             text,
		"estimated_tokens": estimated,
		"word_count":       words,
		"char_count":       utf8.RuneCountInString(text),
		"method":           TokenEstimateMethod,
	}, nil
}
