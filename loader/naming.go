package loader

import (
	"net/url"
	"path"
	"strings"

	"github.com/erraggy/oaskit/internal/naming"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/openapi"
)

// KeyNaming proposes a component name for the value at uri. The result must
// be a valid component key; Context adds a numeric suffix on collision.
type KeyNaming func(kind openapi.ComponentKind, uri string) string

// PascalCaseNaming names a slot after the referenced document's base name
// and, when present, the last fragment token:
//
//	pet-store.yaml                        -> PetStore
//	common.yaml#/components/schemas/Error -> CommonError
//	https://x.test/v1/user_profile.json   -> UserProfile
func PascalCaseNaming(_ openapi.ComponentKind, uri string) string {
	doc, fragment, _ := strings.Cut(uri, "#")
	if u, err := url.Parse(doc); err == nil && pathutil.IsURL(doc) {
		doc = u.Path
	}
	base := path.Base(strings.ReplaceAll(doc, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))

	name := naming.ToPascalCase(base)
	if tokens := pathutil.SplitPointer(fragment); len(tokens) > 0 {
		name += naming.ToPascalCase(tokens[len(tokens)-1])
	}
	if name == "" {
		return "External"
	}
	return name
}
