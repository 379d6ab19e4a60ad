package openapi

import (
	"regexp"
	"strings"

	"github.com/erraggy/oaskit/oaserrors"
)

var componentKeyRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ComponentKey is a validated component slot name.
// The zero value is not a valid key.
type ComponentKey struct {
	name string
}

// NewComponentKey validates name against ^[A-Za-z0-9._-]+$.
func NewComponentKey(name string) (ComponentKey, error) {
	if !componentKeyRegex.MatchString(name) {
		return ComponentKey{}, &oaserrors.ComponentKeyError{Key: name}
	}
	return ComponentKey{name: name}, nil
}

// MustComponentKey is like NewComponentKey but panics on an invalid name.
// It is intended for literals in tests and static tables.
func MustComponentKey(name string) ComponentKey {
	k, err := NewComponentKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

// IsComponentKey reports whether name is a valid component key.
func IsComponentKey(name string) bool {
	return componentKeyRegex.MatchString(name)
}

// String returns the raw key.
func (k ComponentKey) String() string {
	return k.name
}

// IsZero reports whether k is the zero (invalid) key.
func (k ComponentKey) IsZero() bool {
	return k.name == ""
}

// Compare orders keys by raw string value.
func (k ComponentKey) Compare(other ComponentKey) int {
	return strings.Compare(k.name, other.name)
}

// MarshalText implements encoding.TextMarshaler. Encoding the zero key fails.
func (k ComponentKey) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return nil, &oaserrors.ComponentKeyError{Key: ""}
	}
	return []byte(k.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ComponentKey) UnmarshalText(text []byte) error {
	parsed, err := NewComponentKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
