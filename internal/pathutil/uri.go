package pathutil

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveRef resolves ref against the document location base. Fragment-only
// references ("#/...") are attached to base's document. HTTP(S) bases resolve
// per RFC 3986; anything else is treated as a file path.
func ResolveRef(base, ref string) string {
	baseDoc, _, _ := strings.Cut(base, "#")
	if strings.HasPrefix(ref, "#") {
		return baseDoc + ref
	}
	if IsURL(ref) {
		return ref
	}

	refDoc, fragment, hasFragment := strings.Cut(ref, "#")
	var resolved string
	switch {
	case refDoc == "":
		resolved = baseDoc
	case IsURL(baseDoc):
		bu, err := url.Parse(baseDoc)
		if err != nil {
			return ref
		}
		ru, err := url.Parse(refDoc)
		if err != nil {
			return ref
		}
		resolved = bu.ResolveReference(ru).String()
	case filepath.IsAbs(refDoc) || baseDoc == "":
		resolved = filepath.Clean(refDoc)
	default:
		resolved = filepath.Join(filepath.Dir(baseDoc), refDoc)
	}
	if hasFragment {
		resolved += "#" + fragment
	}
	return resolved
}

// IsURL reports whether s is an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
