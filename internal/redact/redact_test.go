package redact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		input       string
		contains    string
		notContains string
	}{
		{
			name:        "anthropic key",
			input:       "authentication failed for sk-ant-REDACTED",
			contains:    RedactedKeyPlaceholder,
			notContains: "abcdefghijklmnop",
		},
		{
			name:        "google key in url",
			input:       "Post https://generativelanguage.googleapis.com/v1beta/models?key=AIzaSyA1234567890abcdefghijk: EOF",
			contains:    RedactedKeyPlaceholder,
			notContains: "AIzaSyA1234567890",
		},
		{
			name:        "query key",
			input:       "GET /models?key=plainsecretvalue&alt=json",
			contains:    "key=" + RedactedKeyPlaceholder,
			notContains: "plainsecretvalue",
		},
		{
			name:        "bearer token",
			input:       "Authorization: Bearer abcdefghijklmnop",
			contains:    RedactedCredentialPlaceholder,
			notContains: "abcdefghijklmnop",
		},
		{
			name:        "x-api-key header",
			input:       "x-api-key: 0123456789abcdef",
			contains:    "x-api-key: " + RedactedCredentialPlaceholder,
			notContains: "0123456789abcdef",
		},
		{
			name:     "no secrets",
			input:    "overloaded_error: Overloaded",
			contains: "overloaded_error: Overloaded",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := String(tc.input)
			assert.Contains(t, got, tc.contains)
			if tc.notContains != "" {
				assert.NotContains(t, got, tc.notContains)
			}
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Error(nil))
	assert.NotContains(t, Error(errors.New("bad key sk-ant-abcdefghijkl")), "abcdefghijkl")
}
