package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgsmith/manifest-pr/env"
)

func TestRead(t *testing.T) {
	tests := []struct {
		description string
		ci          string
		expected    bool
	}{
		{
			description: "true",
			ci:          "true",
			expected:    true,
		},
		{
			description: "mixed case true",
			ci:          "True",
			expected:    true,
		},
		{
			description: "numeric true",
			ci:          "1",
			expected:    true,
		},
		{
			description: "false",
			ci:          "false",
			expected:    false,
		},
		{
			description: "unparseable values are not CI",
			ci:          "yes",
			expected:    false,
		},
		{
			description: "empty value is not CI",
			ci:          "",
			expected:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			t.Setenv("CI", tc.ci)
			t.Setenv("GITHUB_TOKEN", "oauthtoken")

			r := env.Read()
			assert.Equal(t, tc.expected, r.CI)
			assert.Equal(t, "oauthtoken", r.GithubToken)
		})
	}
}
