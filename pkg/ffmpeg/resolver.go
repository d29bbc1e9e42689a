// Package ffmpeg locates the ffmpeg executable that media skills depend on.
// It tries an ordered list of discovery strategies and returns the first
// path found: the imageio-ffmpeg bundled binary first, then the system PATH.
// Resolution is stateless; every call probes the environment fresh.
package ffmpeg

import (
	"context"
	"fmt"

	"github.com/skillforge/skillet/pkg/logger"
)

// ExecutableName is the canonical command name being resolved.
const ExecutableName = "ffmpeg"

// Strategy is a single named discovery procedure. Resolve either produces a
// non-empty path to the executable or reports that the source is unavailable.
// An error or an empty path both mean "not available here" and cause the
// resolver to move on to the next strategy.
type Strategy struct {
	Name    string
	Resolve func(ctx context.Context) (string, error)
}

// NotFoundError indicates that every discovery strategy was exhausted without
// producing a path. The message tells the user how to fix it.
type NotFoundError struct {
	Executable string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"%s not found. Install with: pip install imageio-ffmpeg\nOr install %s system-wide: https://ffmpeg.org/download.html",
		e.Executable, e.Executable,
	)
}

// Resolver resolves the ffmpeg executable path by trying strategies in order.
type Resolver struct {
	strategies []Strategy
}

// Option is a function that configures a Resolver
type Option func(*Resolver) error

// WithStrategies sets a custom strategy list, replacing the defaults
func WithStrategies(strategies ...Strategy) Option {
	return func(r *Resolver) error {
		r.strategies = strategies
		return nil
	}
}

// WithDefaultStrategies initializes the default discovery order:
// imageio-ffmpeg bundled binary first, system PATH second.
func WithDefaultStrategies() Option {
	return func(r *Resolver) error {
		r.strategies = []Strategy{
			ProviderStrategy(),
			SystemStrategy(),
		}
		return nil
	}
}

// NewResolver creates a new resolver instance
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{}

	if len(opts) == 0 {
		if err := WithDefaultStrategies()(r); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(r); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// Resolve returns the path to the ffmpeg executable. Strategies are tried in
// order and the first one that yields a non-empty path wins; strategies after
// it are not attempted. A strategy failure is a skip, not a fatal error. If
// every strategy is exhausted, Resolve returns a *NotFoundError.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	for _, strategy := range r.strategies {
		path, err := strategy.Resolve(ctx)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("strategy", strategy.Name).Debug("Discovery strategy unavailable")
			continue
		}
		if path == "" {
			logger.G(ctx).WithField("strategy", strategy.Name).Debug("Discovery strategy returned no path")
			continue
		}

		logger.G(ctx).WithField("strategy", strategy.Name).WithField("path", path).Debug("Resolved ffmpeg executable")
		return path, nil
	}

	return "", &NotFoundError{Executable: ExecutableName}
}

// Resolve resolves ffmpeg using the default strategy order.
func Resolve(ctx context.Context) (string, error) {
	resolver, err := NewResolver()
	if err != nil {
		return "", err
	}
	return resolver.Resolve(ctx)
}
