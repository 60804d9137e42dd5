package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("CC_TEST_HOST", "db.local")
	t.Setenv("CC_TEST_PORT", "5432")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expands single variable",
			input:    "host: {{.CC_TEST_HOST}}",
			expected: "host: db.local",
		},
		{
			name:     "expands multiple variables",
			input:    "dsn: {{.CC_TEST_HOST}}:{{.CC_TEST_PORT}}",
			expected: "dsn: db.local:5432",
		},
		{
			name:     "missing variable expands to empty",
			input:    "token: {{.CC_TEST_DOES_NOT_EXIST}}",
			expected: "token: ",
		},
		{
			name:     "dollar signs pass through",
			input:    "pattern: ^secret.*$ price\\$[0-9]+",
			expected: "pattern: ^secret.*$ price\\$[0-9]+",
		},
		{
			name:     "plain content untouched",
			input:    "chunk_size: 500",
			expected: "chunk_size: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvMalformedTemplate(t *testing.T) {
	// Unclosed braces must not eat the content.
	input := []byte("phrase: {{.UNCLOSED")
	assert.Equal(t, input, ExpandEnv(input))
}
