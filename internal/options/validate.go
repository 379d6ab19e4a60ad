// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"

	"github.com/erraggy/oaskit/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources reports, in order, whether each input named in choices is set.
// The error is a ConfigError for option, listing choices.
func ValidateSingleInputSource(option, choices string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch count {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{Option: option, Message: fmt.Sprintf("must specify an input source (%s)", choices)}
	default:
		return &oaserrors.ConfigError{Option: option, Message: fmt.Sprintf("must specify exactly one input source (%s), got %d", choices, count)}
	}
}
