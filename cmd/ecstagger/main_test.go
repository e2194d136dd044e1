package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Subtests share the process-wide graft graph; the failing-initialization
// cases run back to back so a stale config from one would leak into the next.
func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		env          map[string]string
		expectedExit int
	}{
		{
			name:         "classify without components",
			args:         []string{"classify", "--stop-code", "TaskFailedToStart"},
			expectedExit: 0,
		},
		{
			name:         "pattern",
			args:         []string{"pattern"},
			expectedExit: 0,
		},
		{
			name:         "unknown command",
			args:         []string{"bogus"},
			expectedExit: 1,
		},
		{
			name:         "invalid configuration fails initialization",
			args:         []string{"replay"},
			env:          map[string]string{"ECSTAGGER_LOG_FORMAT": "xml"},
			expectedExit: 1,
		},
		{
			name:         "missing config file fails initialization",
			args:         []string{"serve"},
			env:          map[string]string{"ECSTAGGER_CONFIG": filepath.Join(os.TempDir(), "ecstagger-missing.yaml")},
			expectedExit: 1,
		},
		{
			name:         "invalid level after missing file",
			args:         []string{"serve"},
			env:          map[string]string{"ECSTAGGER_LOG_LEVEL": "chatty"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
