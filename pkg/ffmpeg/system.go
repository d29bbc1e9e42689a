package ffmpeg

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// SystemStrategy resolves ffmpeg through the operating system's executable
// search path.
func SystemStrategy() Strategy {
	return Strategy{
		Name: "system-path",
		Resolve: func(_ context.Context) (string, error) {
			path, err := exec.LookPath(ExecutableName)
			if err != nil {
				return "", errors.Wrapf(err, "no system %s in PATH", ExecutableName)
			}
			return path, nil
		},
	}
}
