// errors.go: structured error handling for foldcache operations
//
// This mirrors the teacher's approach of structured, code-bearing errors
// instead of sentinel values or ad-hoc fmt.Errorf strings, scaled down to
// the taxonomy this cache actually needs: every failure is an invalid
// argument, reported synchronously with no state mutation.
//
// Copyright (c) 2025 the foldcache authors.
// SPDX-License-Identifier: MPL-2.0
package foldcache

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for foldcache operations. All of them are invalid-argument
// errors — foldcache has no I/O, so there is no other error category.
const (
	ErrCodeInvalidCapacity  errors.ErrorCode = "FOLDCACHE_INVALID_CAPACITY"
	ErrCodeInvalidFoldCount errors.ErrorCode = "FOLDCACHE_INVALID_FOLD_COUNT"
	ErrCodeZeroKey          errors.ErrorCode = "FOLDCACHE_ZERO_KEY"
)

const (
	msgInvalidCapacity  = "invalid total capacity: must be greater than 0"
	msgInvalidFoldCount = "invalid fold count: must be between 1 and total capacity"
	msgZeroKey          = "key cannot be zero: zero is the reserved free-slot sentinel"
)

// NewErrInvalidCapacity reports a non-positive TotalCapacity passed to New.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithField(ErrCodeInvalidCapacity, msgInvalidCapacity, "total_capacity", capacity)
}

// NewErrInvalidFoldCount reports a negative FoldCount, or one exceeding
// TotalCapacity, passed to New. A zero FoldCount never reaches it:
// Validate replaces zero with DefaultFoldCount.
func NewErrInvalidFoldCount(foldCount, totalCapacity int) error {
	return errors.NewWithContext(ErrCodeInvalidFoldCount, msgInvalidFoldCount, map[string]interface{}{
		"fold_count":     foldCount,
		"total_capacity": totalCapacity,
	})
}

// NewErrZeroKey reports a zero key passed to Get, Put, or Remove.
func NewErrZeroKey(operation string) error {
	return errors.NewWithField(ErrCodeZeroKey, msgZeroKey, "operation", operation)
}

// IsInvalidArgument reports whether err is, or wraps, one of the
// FOLDCACHE_* errors above.
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		switch coder.ErrorCode() {
		case ErrCodeInvalidCapacity, ErrCodeInvalidFoldCount, ErrCodeZeroKey:
			return true
		}
	}
	return false
}

// GetErrorCode extracts the structured error code from err (or from an
// error it wraps), or "" if err is nil or carries no error code.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
