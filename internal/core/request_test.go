package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// SplitRequestList
// ---------------------------------------------------------------------------

func TestSplitRequestList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "single token",
			input:  "a@^1.0.0",
			expect: []string{"a@^1.0.0"},
		},
		{
			name:   "plain comma list",
			input:  "a@^1.0.0, a@^1.2.0, a@~1.2.3",
			expect: []string{"a@^1.0.0", "a@^1.2.0", "a@~1.2.3"},
		},
		{
			name:   "quoted token protects its comma",
			input:  `a@^1, b@^2, "c@>= 1, < 2"`,
			expect: []string{"a@^1", "b@^2", "c@>= 1, < 2"},
		},
		{
			name:   "fully quoted single token",
			input:  `"left-pad@>= 1.0.0, < 2.0.0"`,
			expect: []string{"left-pad@>= 1.0.0, < 2.0.0"},
		},
		{
			name:   "quoted scoped tokens",
			input:  `"@scope/a@^1.0.0", "@scope/a@^1.1.0"`,
			expect: []string{"@scope/a@^1.0.0", "@scope/a@^1.1.0"},
		},
		{
			name:   "whitespace trimmed",
			input:  "  a@^1.0.0 ,   b@^2.0.0  ",
			expect: []string{"a@^1.0.0", "b@^2.0.0"},
		},
		{
			name:   "empty input is one empty token",
			input:  "",
			expect: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expect, SplitRequestList(tt.input)); diff != "" {
				t.Fatalf("unexpected tokens (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// SplitNameAndSpec
// ---------------------------------------------------------------------------

func TestSplitNameAndSpec(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		expectName string
		expectSpec string
	}{
		{
			name:       "plain name and range",
			token:      "name@^1.2.3",
			expectName: "name",
			expectSpec: "^1.2.3",
		},
		{
			name:       "scoped name and range",
			token:      "@scope/name@^1.2.3",
			expectName: "@scope/name",
			expectSpec: "^1.2.3",
		},
		{
			name:       "git url with semver fragment",
			token:      "@scope/name@git+ssh://user@host/repo#semver:^1.2.3",
			expectName: "@scope/name",
			expectSpec: "^1.2.3",
		},
		{
			name:       "git url with tag fragment",
			token:      "runner@git+https://host/runner.git#v2.1.0",
			expectName: "runner",
			expectSpec: "v2.1.0",
		},
		{
			name:       "url without fragment stays verbatim",
			token:      "runner@https://host/runner-1.0.0.tgz",
			expectName: "runner",
			expectSpec: "https://host/runner-1.0.0.tgz",
		},
		{
			name:       "file spec stays verbatim",
			token:      "@scope/name@file:vendor/name",
			expectName: "@scope/name",
			expectSpec: "file:vendor/name",
		},
		{
			name:       "bare name",
			token:      "name",
			expectName: "name",
			expectSpec: "",
		},
		{
			name:       "bare scoped name",
			token:      "@scope/name",
			expectName: "@scope/name",
			expectSpec: "",
		},
		{
			name:       "empty token",
			token:      "",
			expectName: "",
			expectSpec: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotSpec := SplitNameAndSpec(tt.token)
			assert.Equal(t, tt.expectName, gotName)
			assert.Equal(t, tt.expectSpec, gotSpec)
		})
	}
}

func TestSplitNameAndSpecComposesWithRequestList(t *testing.T) {
	tokens := SplitRequestList(`a@^1.0.0, "a@>= 1.2.0, < 2.0.0"`)
	assert.Len(t, tokens, 2)

	name, spec := SplitNameAndSpec(tokens[0])
	assert.Equal(t, "a", name)
	assert.Equal(t, "^1.0.0", spec)

	name, spec = SplitNameAndSpec(tokens[1])
	assert.Equal(t, "a", name)
	assert.Equal(t, ">= 1.2.0, < 2.0.0", spec)
}
