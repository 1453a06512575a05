package template

import (
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes the first letter of a word without lowering the
// rest, the behavior needed for identifier casing.
var titleCaser = cases.Title(language.English, cases.NoLower)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	"pascal": PascalCase,
	"camel":  CamelCase,
	"plural": Plural,
	"upper":  strings.ToUpper,
}

// splitWords splits an input name on spaces, hyphens, and underscores.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
}

// PascalCase converts "user profile" or "user-profile" to "UserProfile".
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// CamelCase converts "user profile" or "user_profile" to "userProfile".
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// Plural naively pluralizes a resource name for route paths and messages.
// Good enough for identifiers; template authors can always spell out the
// path explicitly.
func Plural(s string) string {
	switch {
	case s == "":
		return s
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"),
		strings.HasSuffix(s, "ch"), strings.HasSuffix(s, "sh"):
		return s + "es"
	case strings.HasSuffix(s, "y") && len(s) > 1 && !isVowel(rune(s[len(s)-2])):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}
