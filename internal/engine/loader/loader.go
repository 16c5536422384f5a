// Package loader obtains build settings from xcodebuild despite its known
// failure modes.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/zerr"
)

// workaroundArguments is the fixed invocation tail. xcodebuild can hang
// indefinitely when -showBuildSettings is combined with certain actions, so
// the archive action plus -skipUnavailableActions is always used regardless
// of the caller's logical action. The logical action is attached to records
// as metadata only; do not substitute it into the invocation.
var workaroundArguments = []string{"archive", "-showBuildSettings", "-skipUnavailableActions"}

// Loader drives the invoker with a timeout and bounded retry and parses the
// captured output into records. Successful loads are memoized per arguments
// fingerprint and action for the process lifetime.
type Loader struct {
	invoker ports.Invoker
	logger  ports.Logger
	opts    domain.Options

	cache sync.Map // cacheKey -> []domain.Record
}

type cacheKey struct {
	fingerprint uint64
	action      domain.Action
}

// New creates a new Loader with the given options.
func New(invoker ports.Invoker, logger ports.Logger, opts domain.Options) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = domain.DefaultTimeout
	}
	if opts.Attempts < 1 {
		opts.Attempts = domain.DefaultAttempts
	}
	if opts.Executable == "" {
		opts.Executable = domain.DefaultExecutable
	}
	return &Loader{
		invoker: invoker,
		logger:  logger,
		opts:    opts,
	}
}

// Load obtains the settings records for the given arguments, tagging each
// record with the supplied arguments and logical action.
func (l *Loader) Load(ctx context.Context, args domain.Arguments, action domain.Action) ([]domain.Record, error) {
	key := cacheKey{fingerprint: args.Fingerprint(), action: action}
	if cached, ok := l.cache.Load(key); ok {
		return cached.([]domain.Record), nil
	}

	records, err := l.load(ctx, args, action)
	if err != nil {
		return nil, err
	}

	cached, _ := l.cache.LoadOrStore(key, records)
	return cached.([]domain.Record), nil
}

// load runs the invoke-decode-parse pipeline, retrying from scratch on
// timeout. Attempts are strictly sequential; a new attempt starts only after
// the previous process has fully terminated.
func (l *Loader) load(ctx context.Context, args domain.Arguments, action domain.Action) ([]domain.Record, error) {
	var lastErr error
	for attempt := 1; attempt <= l.opts.Attempts; attempt++ {
		if ctx.Err() != nil {
			// Caller cancellation aborts the retry loop.
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, zerr.Wrap(ctx.Err(), "settings load cancelled")
		}

		records, err := l.attempt(ctx, args, action)
		if err == nil {
			return records, nil
		}
		if !errors.Is(err, domain.ErrTimeout) {
			// Spawn, exit and decode failures are not transient.
			return nil, err
		}
		lastErr = err
		if attempt < l.opts.Attempts {
			l.logger.Warn(fmt.Sprintf("xcodebuild timed out for %s, retrying (attempt %d of %d)",
				args.ProjectName(), attempt+1, l.opts.Attempts))
		}
	}
	return nil, lastErr
}

func (l *Loader) attempt(parent context.Context, args domain.Arguments, action domain.Action) ([]domain.Record, error) {
	ctx, cancel := context.WithTimeout(parent, l.opts.Timeout)
	defer cancel()

	invokeArgs := append(args.List(), workaroundArguments...)
	output, err := l.invoker.Run(ctx, l.opts.Executable, invokeArgs, args.Environment)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && parent.Err() == nil {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrTimeout, "invocation exceeded deadline"), "project", args.ProjectName()),
				"timeout", l.opts.Timeout.String(),
			)
		}
		return nil, err
	}

	if !utf8.Valid(output) {
		return nil, zerr.With(zerr.Wrap(domain.ErrDecode, "output is not valid UTF-8"), "project", args.ProjectName())
	}

	var records []domain.Record
	for record := range Parse(string(output), args, action) {
		records = append(records, record)
	}
	return records, nil
}

var _ ports.SettingsLoader = (*Loader)(nil)
