package loader

import (
	"fmt"
	"strconv"

	"github.com/erraggy/oaskit/internal/pathutil"
)

// navigate follows a JSON Pointer fragment through a decoded document.
func navigate(doc map[string]any, fragment string) (any, error) {
	var current any = doc
	for i, tok := range pathutil.SplitPointer(fragment) {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[tok]
			if !ok {
				return nil, fmt.Errorf("no key %q at token %d", tok, i)
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil, fmt.Errorf("invalid index %q at token %d (length %d)", tok, i, len(v))
			}
			current = v[idx]
		default:
			return nil, fmt.Errorf("cannot traverse into %T at token %d", v, i)
		}
	}
	return current, nil
}
