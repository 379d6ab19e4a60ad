package pathutil

import "strings"

// ComponentsPrefix is the fragment prefix shared by every named component
// reference: "#/components/<kind>/<name>".
const ComponentsPrefix = "#/components/"

var (
	tokenEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	tokenUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// EscapeToken escapes a single JSON Pointer reference token per RFC 6901.
func EscapeToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return tokenEscaper.Replace(s)
}

// UnescapeToken reverses EscapeToken. "~1" is replaced before "~0" so that
// "~01" decodes to "~1" and not "/".
func UnescapeToken(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return tokenUnescaper.Replace(s)
}

// SplitPointer splits a JSON Pointer ("/a/b~1c") into unescaped tokens.
// The empty pointer and "/" both denote the root and yield no tokens.
func SplitPointer(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return nil
	}
	parts := strings.Split(pointer, "/")
	for i, part := range parts {
		parts[i] = UnescapeToken(part)
	}
	return parts
}

// JoinPointer renders tokens as an escaped JSON Pointer with a leading "/".
func JoinPointer(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte('/')
		b.WriteString(EscapeToken(tok))
	}
	return b.String()
}
