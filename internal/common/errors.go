// Package common defines the sentinel errors shared by the CV pipeline and
// its adapters. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Content fetch errors.
	ErrDataUnavailable = errors.New("content unavailable")
	ErrMissingProfile  = errors.New("profile missing")

	// Rendering errors.
	ErrRenderFailure = errors.New("render failure")

	// Published CV slot errors.
	ErrPublishFailure  = errors.New("publish failure")
	ErrNotPublished    = errors.New("no CV published yet")
	ErrInvalidDocument = errors.New("not a PDF document")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
