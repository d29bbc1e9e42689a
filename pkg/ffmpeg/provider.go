package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// envProviderExe mirrors the override honored by imageio-ffmpeg itself.
const envProviderExe = "IMAGEIO_FFMPEG_EXE"

// ProviderStrategy probes the imageio-ffmpeg pip package for its bundled
// ffmpeg binary. The package is optional; its absence is a skip, not an
// error. Probing is filesystem-only, no interpreter is invoked.
func ProviderStrategy() Strategy {
	return Strategy{
		Name:    "imageio-ffmpeg",
		Resolve: resolveProvider,
	}
}

func resolveProvider(_ context.Context) (string, error) {
	if exe := os.Getenv(envProviderExe); exe != "" {
		if fileExists(exe) {
			return exe, nil
		}
		return "", errors.Errorf("%s points to %s which does not exist", envProviderExe, exe)
	}

	for _, root := range providerSearchRoots() {
		path, err := globProviderBinary(root)
		if err != nil {
			continue
		}
		if path != "" {
			return path, nil
		}
	}

	return "", errors.New("imageio-ffmpeg is not installed")
}

// providerSearchRoots returns the python environment roots to probe for an
// installed imageio_ffmpeg package, in precedence order: active virtualenv,
// active conda env, then the user site directory.
func providerSearchRoots() []string {
	var roots []string

	if venv := os.Getenv("VIRTUAL_ENV"); venv != "" {
		roots = append(roots, venv)
	}
	if conda := os.Getenv("CONDA_PREFIX"); conda != "" {
		roots = append(roots, conda)
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".local"))
	}

	return roots
}

// globProviderBinary looks for imageio_ffmpeg/binaries/ffmpeg-* under the
// site-packages layout of the given environment root.
func globProviderBinary(root string) (string, error) {
	patterns := []string{
		filepath.Join(root, "lib", "python*", "site-packages", "imageio_ffmpeg", "binaries", "ffmpeg-*"),
	}
	if runtime.GOOS == "windows" {
		patterns = append(patterns, filepath.Join(root, "Lib", "site-packages", "imageio_ffmpeg", "binaries", "ffmpeg-*"))
	}

	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return "", errors.Wrap(err, "failed to glob for imageio-ffmpeg binary")
		}
		matches = append(matches, found...)
	}

	// Deterministic pick when multiple python versions are installed
	sort.Strings(matches)

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		return match, nil
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
