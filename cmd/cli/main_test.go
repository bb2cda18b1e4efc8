package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL syntax error is guaranteed to cause a startup panic inside
	// app.NewApp().
	invalidHCL := `
		section "hero" {
			props {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "landing.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_RendersPageToWriter(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	siteHCL := `
		site { title = "Smoke" }

		section "features" {
			enabled = true
			props { items = ["One|First."] }
		}
	`
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "landing.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(siteHCL), 0600))
	outputPath := filepath.Join(tempDir, "index.html")

	// Logs go to the writer; the page goes to -out.
	args := []string{"-log-level", "error", "-out", outputPath, configPath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	html, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Contains(t, string(html), "<title>Smoke</title>")
	require.Contains(t, string(html), `id="section-hero"`, "the always-on hero renders even without a config block")
	require.Contains(t, string(html), `id="section-features"`)
}
