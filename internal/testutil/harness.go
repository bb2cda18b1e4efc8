package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/landinggo/internal/app"
	"github.com/vk/landinggo/internal/hcl"
	"github.com/vk/landinggo/internal/registry"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	PageHTML  string
	Err       error
	App       *app.App
}

// RunComposeTest provides a standardized harness: it writes the given HCL
// files into a temp directory, builds a full app over them with the
// provided sections, runs one composition-and-render pass, and returns the
// logs, the rendered page, and any error. Startup panics are recovered
// into the result's Err, matching the entrypoint's behavior.
func RunComposeTest(t *testing.T, files map[string]string, sections ...registry.Section) *HarnessResult {
	t.Helper()
	return RunComposeTestWithConfig(t, files, app.Config{}, sections...)
}

// RunComposeTestWithConfig is RunComposeTest with extra app.Config knobs
// (DevMode in particular). ConfigPath and OutputPath are always managed by
// the harness.
func RunComposeTestWithConfig(t *testing.T, files map[string]string, overrides app.Config, sections ...registry.Section) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	outputPath := filepath.Join(tmpDir, "index.html")
	appConfig := &app.Config{
		ConfigPath: tmpDir,
		OutputPath: outputPath,
		DevMode:    overrides.DevMode,
		LogFormat:  "text",
		LogLevel:   "debug",
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), sections...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background())

	result := &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
	if html, err := os.ReadFile(outputPath); err == nil {
		result.PageHTML = string(html)
	}
	return result
}
