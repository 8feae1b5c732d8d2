package main

import "errors"

var (
	// ErrUnsupportedFormat is returned for formats other than json and yaml.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownOperation is returned when asked about an operation that
	// does not exist.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrNotScalar is returned when an identity-based operation meets an
	// object or array, which have no identity once decoded.
	ErrNotScalar = errors.New("element is not a scalar")

	// ErrUnexpectedShape is returned when the document does not have the
	// structure an operation needs.
	ErrUnexpectedShape = errors.New("unexpected document shape")

	// ErrPathNotFound is returned when --path matches nothing.
	ErrPathNotFound = errors.New("path not found")
)
