package openapi

import "math"

// extractExtensionsFromMap collects x-* keys from a map into an extension map.
// Returns nil if no extensions found (not an empty map).
func extractExtensionsFromMap(m map[string]any) map[string]any {
	var extra map[string]any
	for k, v := range m {
		if isExtensionKey(k) {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}

// stringSlice converts the []any a YAML or JSON decoder produces into a
// []string, dropping non-string items.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// mapGetStringSlice extracts a []string from m[key].
func mapGetStringSlice(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return stringSlice(v)
}

// mapGetFloat64Ptr extracts a *float64 from m[key].
// Handles both float64 (from JSON) and integer (from YAML) values.
func mapGetFloat64Ptr(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case uint:
		f = float64(n)
	default:
		return nil
	}
	return &f
}

// mapGetIntPtr extracts a *int from m[key].
// Handles both float64 (from JSON) and integer (from YAML) values.
func mapGetIntPtr(m map[string]any, key string) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	var i int
	switch n := v.(type) {
	case float64:
		i = int(n)
	case int:
		i = n
	case int64:
		i = int(n)
	case uint64:
		if n > math.MaxInt {
			return nil
		}
		i = int(n)
	case uint:
		if n > math.MaxInt {
			return nil
		}
		i = int(n)
	default:
		return nil
	}
	return &i
}

// mapGetBoolPtr extracts a *bool from m[key].
func mapGetBoolPtr(m map[string]any, key string) *bool {
	v, ok := m[key]
	if !ok {
		return nil
	}
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}

// mapGetStringMap extracts a map[string]string from m[key].
func mapGetStringMap(m map[string]any, key string) map[string]string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	result := make(map[string]string, len(sub))
	for k, val := range sub {
		if s, ok := val.(string); ok {
			result[k] = s
		}
	}
	return result
}
