// SPDX-License-Identifier: MIT
// Package convert: sentinel and structured conversion errors.

package convert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/value"
)

// ErrConversion is matched by every *ConversionError.
var ErrConversion = errors.New("convert: conversion failed")

// ConversionError reports a failed attempt to convert a value between kinds,
// either because no conversion is registered or because this particular value
// cannot be converted under the configured policy.
type ConversionError struct {
	From   value.Kind
	To     value.Kind
	Reason string
	Err    error // underlying backend error, if any
}

// Error implements error.
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("convert: cannot convert %s to %s", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is(err, ErrConversion) match.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// Unwrap exposes the backend error.
func (e *ConversionError) Unwrap() error { return e.Err }

func conversionError(from, to value.Kind, reason string, err error) *ConversionError {
	return &ConversionError{From: from, To: to, Reason: reason, Err: err}
}
