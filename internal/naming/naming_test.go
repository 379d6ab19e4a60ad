package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"pet-store.v2", "PetStoreV2"},
		{"HTTPError", "HTTPError"},
		{"already Pascal", "AlreadyPascal"},
		{"héllo wörld", "HLloWRld"},
		{"2fa_codes", "2faCodes"},
		{"--", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "userProfile", ToCamelCase("user_profile"))
	assert.Equal(t, "hTTPError", ToCamelCase("HTTPError"))
	assert.Empty(t, ToCamelCase("__"))
}
