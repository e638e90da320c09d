// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level document store errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"net"

	"github.com/taibuivan/scriptwriter/internal/platform/apperr"
)

// ErrUnavailable marks a failure to reach the document store at all.
// Store adapters wrap connection-level failures with it.
var ErrUnavailable = errors.New("document store unavailable")

// Wrap inspects a store error and wraps it into a meaningful [apperr.AppError].
// It hides internal store details from the client while classifying the error type.
//
// Errors that already are an [apperr.AppError] pass through untouched.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Connectivity failures map to 503
	if IsUnavailable(err) {
		return apperr.ServiceUnavailable("Document store is unavailable", &actionError{action: action, err: err})
	}

	// 2. Everything else is an unexpected server error
	return apperr.Internal(&actionError{action: action, err: err})
}

// IsUnavailable reports whether err means the store could not be reached.
func IsUnavailable(err error) bool {
	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, net.ErrClosed) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// actionError tags a cause with the store action that produced it, for logs.
type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }
