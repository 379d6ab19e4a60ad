// Package naming converts free-form names into component-key-safe identifiers.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase drops every character that is not an ASCII letter or digit
// and title-cases each remaining word, keeping inner capitals.
// Example: "user_profile" -> "UserProfile"
// Example: "pet-store.v2" -> "PetStoreV2"
// Example: "HTTPError" -> "HTTPError"
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	if len(words) == 0 {
		return ""
	}
	// Casers are stateful and must not be shared between goroutines.
	titleCaser := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titleCaser.String(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with the first letter lowercased.
// Example: "user_profile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}
