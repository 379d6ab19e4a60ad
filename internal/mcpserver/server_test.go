package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	withConfig(t, &serverConfig{ResultLimit: 2, MaxLimit: 3})
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name          string
		offset, limit int
		want          []int
	}{
		{"default limit", 0, 0, []int{1, 2}},
		{"explicit limit", 1, 3, []int{2, 3, 4}},
		{"capped limit", 0, 10, []int{1, 2, 3}},
		{"tail", 4, 3, []int{5}},
		{"offset past end", 5, 1, nil},
		{"negative offset", -1, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(items, tt.offset, tt.limit))
		})
	}
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t, "open <path>: no such file", sanitizeError(errors.New("open /home/me/api.yaml: no such file")))
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("reading /tmp/x/openapi.yaml failed"))
	require.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "reading <path> failed", text.Text)
}
