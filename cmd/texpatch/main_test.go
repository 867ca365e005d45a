package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCompileStdin(t *testing.T) {
	out, err := execute(t, "A", "compile", "--base-environment", "X")
	require.NoError(t, err)
	assert.Equal(t, "\\begin{X}\nA\n\\end{X}", out)
}

func TestCompileFiles(t *testing.T) {
	first := writeFile(t, "first.tex", "a=b")
	second := writeFile(t, "second.tex", "c=d")

	out, err := execute(t, "", "compile", "--equals-to-ampersand", first, second)
	require.NoError(t, err)
	assert.Equal(t, "a&=b\nc&=d", out)
}

func TestCompileConfigFile(t *testing.T) {
	cfg := writeFile(t, "texpatch.toml", "autoNewlines = true\ncommentMarker = \"//\"\n")

	out, err := execute(t, "a // c\nb\nc", "compile", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "a % c\nb\\\\\nc", out)

	out, err = execute(t, "a\nb", "compile", "--config", cfg, "--auto-newlines=false")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out, "flags override the config file")
}

func TestCompileBadConfig(t *testing.T) {
	cfg := writeFile(t, "texpatch.toml", "autoNewline = true\n")

	_, err := execute(t, "a", "compile", "--config", cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, cfg, cfgErr.Path)

	_, err = execute(t, "a", "compile", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCompileEnvironment(t *testing.T) {
	t.Setenv(envEquals, "true")
	t.Setenv(envBaseEnvironment, "aligned")

	out, err := execute(t, "a=b", "compile")
	require.NoError(t, err)
	assert.Equal(t, "\\begin{aligned}\na&=b\n\\end{aligned}", out)

	t.Setenv(envAutoNewlines, "maybe")

	_, err = execute(t, "a", "compile")

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, envAutoNewlines, cfgErr.Path)
}

func TestMap(t *testing.T) {
	out, err := execute(t, "a\nb", "map", "--auto-newlines", "-o", "5", "-o", "2", "--offset=-1")
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n0\n", out)

	out, err = execute(t, "a\nb", "map", "--auto-newlines", "--forward", "-o", "2,3")
	require.NoError(t, err)
	assert.Equal(t, "4\n5\n", out)

	_, err = execute(t, "a", "map")
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	out, err := execute(t, "a=b", "tokens")
	require.NoError(t, err)
	assert.Equal(t, "text\t0\t1\t\"a\"\nequals\t1\t2\t\"=\"\ntext\t2\t3\t\"b\"\n", out)

	out, err = execute(t, "x # c", "tokens", "--comment-marker", "#")
	require.NoError(t, err)
	assert.Equal(t, "text\t0\t2\t\"x \"\ncomment\t2\t5\t\"# c\"\n", out)

	out, err = execute(t, "\\begin{align}x\\end{align}", "tokens", "--folds")
	require.NoError(t, err)
	assert.Equal(t, "align\t0\t25\n", out)
}

func TestSignatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "|\\frac{a}{b}|$\\frac{a}{b}$|\n|\\alpha|$\\alpha$|\n")
	}))
	defer srv.Close()

	dir := t.TempDir()
	formats := filepath.Join(dir, "formats.json")
	completions := filepath.Join(dir, "completions.json")

	out, err := execute(t, "", "signatures",
		"--url", srv.URL,
		"--builtin-macros=false",
		"--out", "-",
		"--formats", formats,
		"--completions", completions,
	)
	require.NoError(t, err)
	assert.Equal(t, "[\"alpha\",\"frac\"]\n", out)

	data, err := os.ReadFile(formats)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"curlyBracketParameters": 2`)

	data, err = os.ReadFile(completions)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"insertText":"frac{$1}{$2}"`)
}

func TestSignaturesLocalFiles(t *testing.T) {
	doc := writeFile(t, "table.md", "\\sqrt[n]{x}")
	names := filepath.Join(t.TempDir(), "texFunctionNames.json")

	_, err := execute(t, "", "signatures", "--no-fetch", "--out", names, doc)
	require.NoError(t, err)

	data, err := os.ReadFile(names)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sqrt"`)
	assert.Contains(t, string(data), `"textcolor"`)
}

func TestSignaturesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := execute(t, "", "signatures", "--url", srv.URL, "--out", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
