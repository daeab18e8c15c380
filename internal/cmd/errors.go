package cmd

import "errors"

var (
	ErrOverlappingPaths = errors.New("input and output directories overlap")
	ErrJobsFailed       = errors.New("some resources failed to convert")
	ErrInspectFailed    = errors.New("packed tree does not match its index")
)
