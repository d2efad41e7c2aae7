package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSettings = `
rootProject:
  name: demo
  children:
    - name: api
    - name: web
      children:
        - name: assets
    - name: docs
      dir: shared
    - name: site
      dir: shared
`

func writeSettings(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testSettings), 0644))
	return dir, file
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunPrintsTree(t *testing.T) {
	dir, file := writeSettings(t)

	code, out, errOut := runCLI("-settings", file)
	require.Equal(t, 0, code, errOut)

	want := ": (" + dir + ")\n" +
		"  :api (" + filepath.Join(dir, "api") + ")\n" +
		"  :docs (" + filepath.Join(dir, "shared") + ")\n" +
		"  :site (" + filepath.Join(dir, "shared") + ")\n" +
		"  :web (" + filepath.Join(dir, "web") + ")\n" +
		"    :web:assets (" + filepath.Join(dir, "web", "assets") + ")\n"
	require.Equal(t, want, out)
}

func TestRunPathQuery(t *testing.T) {
	_, file := writeSettings(t)

	code, out, errOut := runCLI("-settings", file, "-path", ":web")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "sub-projects: :web:assets\nall projects: :web :web:assets\n", out)

	code, _, errOut = runCLI("-settings", file, "-path", ":missing")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "no project with path :missing")
}

func TestRunDirQuery(t *testing.T) {
	dir, file := writeSettings(t)

	code, out, errOut := runCLI("-settings", file, "-dir", filepath.Join(dir, "web", "assets"))
	require.Equal(t, 0, code, errOut)
	require.Equal(t, ":web:assets\n", out)

	code, _, errOut = runCLI("-settings", file, "-dir", filepath.Join(dir, "shared"))
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "found multiple projects with project directory")
	require.Contains(t, errOut, "[:docs, :site]")

	code, _, errOut = runCLI("-settings", file, "-dir", "/nowhere")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "no project with directory /nowhere")
}

func TestRunSettingsFromEnv(t *testing.T) {
	_, file := writeSettings(t)
	t.Setenv(settingsEnv, file)

	code, out, errOut := runCLI("-path", ":")
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "sub-projects: :api :docs :site :web")
}

func TestRunMissingSettings(t *testing.T) {
	code, _, errOut := runCLI("-settings", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "reading settings")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCLI("-version")
	require.Equal(t, 0, code)
	require.Contains(t, out, "projects version")
}

func TestRunBadFlag(t *testing.T) {
	code, _, _ := runCLI("-nope")
	require.Equal(t, 2, code)
}
