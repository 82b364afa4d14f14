package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runLGCTL(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	// No config file: commands fail fast with a config fault, before any
	// connection attempt.
	_, stderr, err = runLGCTL(t, binaryPath, home, "brightness", "get")
	require.Error(t, err)
	assert.Contains(t, stderr, "tv config not found")

	// Cached brightness is served without touching the TV.
	require.NoError(t, writeConfigFixture(home))
	require.NoError(t, writeBrightnessFixture(home))

	stdout, stderr, err = runLGCTL(t, binaryPath, home, "brightness", "get")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "64")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "lgctl-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/lgctl")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build lgctl binary: %s", string(output))
	return binaryPath
}

func runLGCTL(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".config", "lgtv")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `{"MyTV": {"ip": "127.0.0.1", "key": "test-key"}}`
	return os.WriteFile(filepath.Join(configDir, "config.json"), []byte(config), 0o600)
}

func writeBrightnessFixture(home string) error {
	cacheDir := filepath.Join(home, ".cache", "lgtv")
	if err := os.MkdirAll(cacheDir, 0o700); err != nil {
		return err
	}

	cache := `[brightness]
value = 64
captured_at = "2026-01-01T00:00:00Z"
`
	return os.WriteFile(filepath.Join(cacheDir, "brightness.toml"), []byte(cache), 0o600)
}
