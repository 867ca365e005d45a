package texpatch_test

import (
	"strings"
	"testing"

	"github.com/eolymp/go-texpatch"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeConfig(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output texpatch.Config
		fail   bool
	}{
		{
			name:   "empty",
			input:  "",
			output: texpatch.Config{},
		},
		{
			name: "all rules",
			input: `
autoNewlines = true
commentMarker = "//"
baseEnvironment = "align*"
equalsSignToAmpersandEquals = true
`,
			output: texpatch.Config{
				AutoNewlines:                true,
				CommentMarker:               "//",
				BaseEnvironment:             "align*",
				EqualsSignToAmpersandEquals: true,
			},
		},
		{
			name:  "unknown key",
			input: "autoNewline = true",
			fail:  true,
		},
		{
			name:  "wrong type",
			input: "autoNewlines = \"yes\"",
			fail:  true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := texpatch.DecodeConfig(strings.NewReader(tc.input))
			if tc.fail {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(tc.output, got) {
				t.Errorf("Config does not match:\n%s\n", cmp.Diff(tc.output, got))
			}
		})
	}
}
