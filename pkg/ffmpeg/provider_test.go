package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProviderBinary lays out a site-packages tree the way pip installs
// imageio-ffmpeg and returns the path to the fake bundled binary.
func writeProviderBinary(t *testing.T, root string) string {
	t.Helper()

	binariesDir := filepath.Join(root, "lib", "python3.12", "site-packages", "imageio_ffmpeg", "binaries")
	require.NoError(t, os.MkdirAll(binariesDir, 0o755))

	binary := filepath.Join(binariesDir, "ffmpeg-linux-x86_64-v7.0.2")
	require.NoError(t, os.WriteFile(binary, []byte("fake"), 0o755))
	return binary
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("IMAGEIO_FFMPEG_EXE", "")
	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_PREFIX", "")
	t.Setenv("HOME", t.TempDir())
}

func TestProviderStrategyEnvOverride(t *testing.T) {
	clearProviderEnv(t)

	tmpDir := t.TempDir()
	exe := filepath.Join(tmpDir, "ffmpeg")
	require.NoError(t, os.WriteFile(exe, []byte("fake"), 0o755))
	t.Setenv("IMAGEIO_FFMPEG_EXE", exe)

	path, err := ProviderStrategy().Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, exe, path)
}

func TestProviderStrategyEnvOverrideMissingFile(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("IMAGEIO_FFMPEG_EXE", filepath.Join(t.TempDir(), "nonexistent"))

	_, err := ProviderStrategy().Resolve(context.Background())
	assert.Error(t, err)
}

func TestProviderStrategyVirtualEnv(t *testing.T) {
	clearProviderEnv(t)

	venv := t.TempDir()
	binary := writeProviderBinary(t, venv)
	t.Setenv("VIRTUAL_ENV", venv)

	path, err := ProviderStrategy().Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, binary, path)
}

func TestProviderStrategyCondaEnv(t *testing.T) {
	clearProviderEnv(t)

	conda := t.TempDir()
	binary := writeProviderBinary(t, conda)
	t.Setenv("CONDA_PREFIX", conda)

	path, err := ProviderStrategy().Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, binary, path)
}

func TestProviderStrategyUserSite(t *testing.T) {
	clearProviderEnv(t)

	home := t.TempDir()
	binary := writeProviderBinary(t, filepath.Join(home, ".local"))
	t.Setenv("HOME", home)

	path, err := ProviderStrategy().Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, binary, path)
}

func TestProviderStrategyVirtualEnvTakesPrecedence(t *testing.T) {
	clearProviderEnv(t)

	venv := t.TempDir()
	venvBinary := writeProviderBinary(t, venv)
	t.Setenv("VIRTUAL_ENV", venv)

	conda := t.TempDir()
	writeProviderBinary(t, conda)
	t.Setenv("CONDA_PREFIX", conda)

	path, err := ProviderStrategy().Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, venvBinary, path)
}

func TestProviderStrategyNotInstalled(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("VIRTUAL_ENV", t.TempDir())

	_, err := ProviderStrategy().Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")
}

func TestProviderStrategySkipsDirectories(t *testing.T) {
	clearProviderEnv(t)

	venv := t.TempDir()
	binariesDir := filepath.Join(venv, "lib", "python3.12", "site-packages", "imageio_ffmpeg", "binaries")
	require.NoError(t, os.MkdirAll(filepath.Join(binariesDir, "ffmpeg-extracted"), 0o755))
	t.Setenv("VIRTUAL_ENV", venv)

	_, err := ProviderStrategy().Resolve(context.Background())
	assert.Error(t, err)
}
