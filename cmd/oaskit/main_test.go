package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oaskit/internal/testutil"
)

func TestRunExitCodes(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"valid.yaml": "openapi: 3.0.3\ninfo:\n  title: T\n  version: '1'\npaths:\n  /a:\n    get:\n      responses:\n        '200':\n          description: ok\n",
		"dup.yaml":   "openapi: 3.0.3\ninfo:\n  title: T\n  version: '1'\ntags:\n  - name: a\n  - name: a\npaths: {}\n",
	})
	valid := filepath.Join(dir, "valid.yaml")
	dup := filepath.Join(dir, "dup.yaml")

	tests := []struct {
		name    string
		command string
		args    []string
		want    int
	}{
		{"version", "version", nil, 0},
		{"help", "--help", nil, 0},
		{"unknown command", "lint", nil, 1},
		{"validate without input", "validate", nil, 1},
		{"validate passes", "validate", []string{"-q", valid}, 0},
		{"validate fails", "validate", []string{"-q", dup}, 1},
		{"deref passes", "deref", []string{"--format", "json", valid}, 0},
		{"deref missing file", "deref", []string{filepath.Join(dir, "missing.yaml")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.command, tt.args))
		})
	}
}
