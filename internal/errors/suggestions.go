package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Command     string `json:"command,omitempty"`
	Example     string `json:"example,omitempty"`
}

// SuggestionContext provides context for generating suggestions
type SuggestionContext struct {
	Names      []string
	ConfigPath string
}

// EntryNotFoundError generates suggestions for a name missing from a table
func EntryNotFoundError(kind, name string, ctx *SuggestionContext) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{
		{
			Title:       "List available entries",
			Description: "See every " + kind + " entry in the catalog",
			Command:     "webref list " + kind,
		},
		{
			Title:       "Search the table",
			Description: "Search matches any part of the name or description",
			Command:     "webref list " + kind + " --search " + name,
		},
	}

	if ctx == nil {
		return suggestions
	}

	for _, candidate := range ClosestNames(name, ctx.Names, 3) {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Did you mean '" + candidate + "'?",
			Description: "Similar entry found",
			Command:     "webref show " + kind + " " + candidate,
		})
	}

	if ctx.ConfigPath != "" {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Add it to your catalog file",
			Description: "Entries can be added through the catalog overlay",
			Example:     kind + ":\n  entries:\n    " + name + ":\n      description: ...\n      example: ...",
		})
	}

	return suggestions
}

// ConfigError generates suggestions for configuration problems
func ConfigError(configError, configPath string) []ErrorSuggestion {
	suggestions := []ErrorSuggestion{
		{
			Title:       "Check configuration file",
			Description: "Verify your configuration file syntax",
			Command:     "cat " + configPath,
		},
	}

	lower := strings.ToLower(configError)
	if strings.Contains(lower, "yaml") || strings.Contains(lower, "unmarshal") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Fix YAML syntax",
			Description: "There's a syntax error in your YAML configuration",
			Example:     "Use proper indentation and avoid tabs",
		})
	}

	if strings.Contains(lower, "style") {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Pick a known highlight style",
			Description: "Highlight styles are chroma style names",
			Example:     "preview:\n  highlight_style: dracula",
		})
	}

	return suggestions
}

// ClosestNames returns up to limit names that contain, are contained in, or
// are within a small edit distance of name. Closer names come first.
func ClosestNames(name string, names []string, limit int) []string {
	type scored struct {
		name  string
		score int
	}

	target := strings.ToLower(name)
	if target == "" {
		return nil
	}

	var matches []scored
	for _, candidate := range names {
		c := strings.ToLower(candidate)
		if c == target {
			continue
		}

		d := levenshtein(target, c)
		switch {
		case strings.Contains(c, target) || strings.Contains(target, c):
			matches = append(matches, scored{candidate, d - 100})
		case d <= maxDistance(target):
			matches = append(matches, scored{candidate, d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score < matches[j].score
		}
		return matches[i].name < matches[j].name
	})

	out := make([]string, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.name)
	}
	return out
}

func maxDistance(s string) int {
	if len(s) <= 4 {
		return 1
	}
	return 2
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n", suggestion.Example))
		}
		output.WriteString("\n")
	}

	return output.String()
}

// EnhancedError wraps an error with suggestions
type EnhancedError struct {
	OriginalError error
	Title         string
	Suggestions   []ErrorSuggestion
}

// Error implements the error interface
func (e *EnhancedError) Error() string {
	return FormatSuggestions(e.Title, e.Suggestions)
}

// Unwrap returns the original error
func (e *EnhancedError) Unwrap() error {
	return e.OriginalError
}

// NewEnhancedError creates a new enhanced error with suggestions
func NewEnhancedError(title string, originalError error, suggestions []ErrorSuggestion) *EnhancedError {
	return &EnhancedError{
		OriginalError: originalError,
		Title:         title,
		Suggestions:   suggestions,
	}
}

// SuggestionsOf returns the suggestions attached anywhere in err's chain.
func SuggestionsOf(err error) []ErrorSuggestion {
	var ee *EnhancedError
	if errors.As(err, &ee) {
		return ee.Suggestions
	}
	return nil
}
