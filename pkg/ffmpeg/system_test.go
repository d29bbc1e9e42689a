package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemStrategy(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH fixture uses a shell script")
	}

	binDir := t.TempDir()
	fakeFfmpeg := filepath.Join(binDir, "ffmpeg")
	require.NoError(t, os.WriteFile(fakeFfmpeg, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", binDir)

	path, err := SystemStrategy().Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fakeFfmpeg, path)
}

func TestSystemStrategyNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := SystemStrategy().Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PATH")
}
