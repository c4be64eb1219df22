// Package filesystem exposes the sandboxed file operations as a Go API.
//
// Every method validates its path arguments against the allowed roots
// before touching the filesystem. Rejections carry fsbox.ErrAccessDenied or
// fsbox.ErrNotFound, and operating system failures carry
// fsbox.ErrIOFailure (or fsbox.ErrNotFound when the OS reports a missing
// file) with the original error kept in the chain.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/log"
	"github.com/deepnoodle-ai/fsbox/sandbox"
)

// Service performs file operations confined to a validator's roots. It has
// no mutable state and is safe for concurrent use.
type Service struct {
	validator *sandbox.Validator
	logger    log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for diagnostics, including entries that
// searches skip.
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New returns a Service that confines every operation with v.
func New(v *sandbox.Validator, opts ...Option) *Service {
	s := &Service{validator: v}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validator returns the validator the service confines paths with.
func (s *Service) Validator() *sandbox.Validator {
	return s.validator
}

// ListAllowedDirectories returns the configured roots.
func (s *Service) ListAllowedDirectories() []string {
	return s.validator.Roots()
}

// withLogger attaches the service logger so that helpers reading the logger
// from the context use it.
func (s *Service) withLogger(ctx context.Context) context.Context {
	if s.logger == nil {
		return ctx
	}
	return log.WithLogger(ctx, s.logger)
}

func (s *Service) validate(path string) (sandbox.Path, error) {
	p, err := s.validator.Validate(path)
	if err != nil && s.logger != nil {
		s.logger.Debug("path rejected", "path", path, "error", err)
	}
	return p, err
}

// wrapIOError classifies an operating system error. Errors that already
// carry one of the fsbox kinds are returned unchanged.
func wrapIOError(op string, path sandbox.Path, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fsbox.ErrAccessDenied),
		errors.Is(err, fsbox.ErrNotFound),
		errors.Is(err, fsbox.ErrEditMismatch),
		errors.Is(err, fsbox.ErrIOFailure),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to %s %s: %w: %w", op, path, fsbox.ErrNotFound, err)
	default:
		return fmt.Errorf("failed to %s %s: %w: %w", op, path, fsbox.ErrIOFailure, err)
	}
}
