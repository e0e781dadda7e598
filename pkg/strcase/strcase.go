package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// splitWords tokenizes s into words, breaking on whitespace, hyphens,
// underscores and letter-case boundaries. An uppercase run followed by a
// lowercase letter keeps the run as its own word, so "HTTPServer" splits
// into "HTTP" and "Server".
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToCamel converts a string to camelCase: the first word lowercased,
// subsequent words capitalized, separators dropped.
func ToCamel(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToPascal converts a string to PascalCase: every word capitalized,
// separators dropped.
func ToPascal(s string) string {
	var b strings.Builder
	for _, word := range splitWords(s) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToSnake converts a string to snake_case.
func ToSnake(s string) string {
	return join(s, "_", strings.ToLower)
}

// ToScreamingSnake converts a string to SCREAMING_SNAKE_CASE.
func ToScreamingSnake(s string) string {
	return join(s, "_", strings.ToUpper)
}

// ToKebab converts a string to kebab-case.
func ToKebab(s string) string {
	return join(s, "-", strings.ToLower)
}

// ToTitle converts a string to Title Case with single-space separators.
func ToTitle(s string) string {
	caser := cases.Title(language.Und)
	return caser.String(strings.ToLower(strings.Join(splitWords(s), " ")))
}

func join(s, separator string, fold func(string) string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = fold(word)
	}
	return strings.Join(words, separator)
}
