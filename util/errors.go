package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Index errors
	ErrNoIndex      = errors.New("index not found")
	ErrIndexVersion = errors.New("index written by an incompatible version")
	ErrEmptyKey     = errors.New("index entry has an empty key")
)
