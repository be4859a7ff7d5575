// Package e2e provides end-to-end tests for the skelgen CLI.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skelgenBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "skelgen-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	skelgenBinary = filepath.Join(tmpDir, "skelgen")

	// Build the binary
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", skelgenBinary, "../../cmd/skelgen")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build skelgen binary: " + err.Error())
	}
	cancel() // Call cancel explicitly before os.Exit

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runSkelgen runs the skelgen binary with the given arguments and returns output
func runSkelgen(t *testing.T, workDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, skelgenBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+workDir)

	stdoutBytes, err := cmd.Output()
	var stderrBytes []byte
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderrBytes = exitErr.Stderr
	}

	return string(stdoutBytes), string(stderrBytes), err
}

func TestE2E_Gen_Default(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runSkelgen(t, tmpDir, "gen")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "Flutter project structure generated successfully!")
	assert.FileExists(t, filepath.Join(tmpDir, "lib", "main.dart"))
	assert.FileExists(t, filepath.Join(tmpDir, "lib", "core", "theme", "app_theme.dart"))

	// Generated files are empty placeholders
	info, statErr := os.Stat(filepath.Join(tmpDir, "lib", "main.dart"))
	require.NoError(t, statErr)
	assert.Zero(t, info.Size())
}

func TestE2E_Gen_AdminPanel(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runSkelgen(t, tmpDir, "gen", "admin-panel")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "Admin panel project structure created successfully!")
	assert.FileExists(t, filepath.Join(tmpDir, "admin-panel", "app", "page.tsx"))
	assert.DirExists(t, filepath.Join(tmpDir, "admin-panel", "public", "images"))
}

func TestE2E_Gen_CustomDir(t *testing.T) {
	tmpDir := t.TempDir()
	customDir := filepath.Join(tmpDir, "custom", "path")

	_, stderr, err := runSkelgen(t, tmpDir, "gen", "flutter-app", "--dir", customDir)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(customDir, "lib", "main.dart"))
}

func TestE2E_Gen_All(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runSkelgen(t, tmpDir, "gen", "--all")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(tmpDir, "lib", "main.dart"))
	assert.FileExists(t, filepath.Join(tmpDir, "admin-panel", "app", "page.tsx"))
}

func TestE2E_Gen_UnknownLayout(t *testing.T) {
	tmpDir := t.TempDir()

	_, _, err := runSkelgen(t, tmpDir, "gen", "rails-app")
	assert.Error(t, err)

	// Check exit code is 4 (not found)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 4, exitErr.ExitCode(), "expected exit code 4 for unknown layout")
	}
}

func TestE2E_Gen_AllWithArgs(t *testing.T) {
	tmpDir := t.TempDir()

	_, _, err := runSkelgen(t, tmpDir, "gen", "flutter-app", "--all")
	assert.Error(t, err)

	// Check exit code is 2 (validation error)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 2, exitErr.ExitCode(), "expected exit code 2 for validation error")
	}
}

func TestE2E_Tree(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runSkelgen(t, tmpDir, "tree", "admin-panel")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "admin-panel/")
	assert.Contains(t, stdout, "107 directories, 239 files")

	// Preview writes nothing
	entries, readErr := os.ReadDir(tmpDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestE2E_Layouts(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runSkelgen(t, tmpDir, "layouts")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "flutter-app (default)")
	assert.Contains(t, stdout, "admin-panel")
}

func TestE2E_ConfigInitThenVet(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runSkelgen(t, tmpDir, "config", "init")
	require.NoError(t, err, "config init failed: %s", stderr)

	assert.FileExists(t, filepath.Join(tmpDir, ".skelgen", "config.yaml"))

	_, stderr, err = runSkelgen(t, tmpDir, "config", "vet")
	require.NoError(t, err, "config vet failed: %s", stderr)
}

func TestE2E_Version(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runSkelgen(t, tmpDir, "version")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "skelgen")
	assert.Contains(t, stdout, "Version:")
}

func TestE2E_Help(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runSkelgen(t, tmpDir, "--help")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "gen")
	assert.Contains(t, stdout, "tree")
	assert.Contains(t, stdout, "layouts")
	assert.Contains(t, stdout, "config")
	assert.Contains(t, stdout, "version")
}
