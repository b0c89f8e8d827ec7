package sierraecg

import "github.com/pkg/errors"

// Package errors. Context is attached with errors.Wrap / errors.Wrapf at the
// point of failure.
var (
	ErrUnsupportedFormat = errors.New("unsupported sierra ecg document")
	ErrMissingElement    = errors.New("required element is missing")
	ErrMissingAttribute  = errors.New("required attribute is missing")
)
