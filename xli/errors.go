package xli

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
// ErrCodeWidth and ErrNoInput are configuration errors returned before any decoding
// starts; the rest are format errors that fail the whole decode.
var (
	ErrCodeWidth      = errors.New("code width out of range [10, 16]")
	ErrNoInput        = errors.New("input is empty")
	ErrInvalidCode    = errors.New("code not in dictionary")
	ErrChunkTruncated = errors.New("chunk exceeds remaining input")
)
