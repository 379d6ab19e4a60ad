package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// version is a parsed "major.minor[.patch][-prerelease]" string.
type version struct {
	major      int
	minor      int
	patch      int
	prerelease string
}

func parseVersion(s string) (*version, error) {
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > math.MaxInt32 {
			return nil, fmt.Errorf("invalid version component: %q", part)
		}
		nums[i] = n
	}
	return &version{major: nums[0], minor: nums[1], patch: nums[2], prerelease: prerelease}, nil
}

// supportedMajor is the only OpenAPI major version this module reads.
const supportedMajor = 3

// CheckVersion reports whether s is an OpenAPI version this module reads.
// Swagger 2.0 documents and unknown majors are rejected.
func CheckVersion(s string) error {
	if s == "" {
		return fmt.Errorf("parser: missing openapi version field")
	}
	v, err := parseVersion(s)
	if err != nil {
		return fmt.Errorf("parser: %w", err)
	}
	if v.major != supportedMajor {
		return fmt.Errorf("parser: unsupported OpenAPI version %s (want 3.x)", s)
	}
	return nil
}
