package catalog

import "errors"

var (
	// ErrUnknownSection is returned for a section name outside the known
	// content collections.
	ErrUnknownSection = errors.New("catalog.service: unknown section")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("catalog.service: internal error")
)
