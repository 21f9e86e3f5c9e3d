// SPDX-License-Identifier: MIT
// Package dispatch: sentinel errors and the structured argument/type errors.
//
// ERROR PRIORITY (enforced by Resolve):
// unknown operation -> arity -> unsupported kinds.
// Conversion errors surface only when every conversion candidate failed.

package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/value"
)

var (
	// ErrUnknownOperation is returned when no operation of that name is defined.
	ErrUnknownOperation = errors.New("dispatch: unknown operation")

	// ErrArguments is matched by every *ArgumentsError.
	ErrArguments = errors.New("dispatch: wrong number of arguments")

	// ErrUnsupportedType is matched by every *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("dispatch: unsupported type")
)

// ArgumentsError reports an operand count outside [Min, Max].
type ArgumentsError struct {
	Op       string
	Got      int
	Min, Max int
}

// Error implements error.
func (e *ArgumentsError) Error() string {
	want := fmt.Sprintf("%d", e.Min)
	if e.Max != e.Min {
		want = fmt.Sprintf("%d..%d", e.Min, e.Max)
	}
	return fmt.Sprintf("dispatch: %s: wrong number of arguments (%d provided, %s expected)", e.Op, e.Got, want)
}

// Is lets errors.Is(err, ErrArguments) match.
func (e *ArgumentsError) Is(target error) bool { return target == ErrArguments }

// UnsupportedTypeError reports that no kernel, conversion path or collection
// strategy accepts the operand kinds.
type UnsupportedTypeError struct {
	Op    string
	Kinds []value.Kind
}

// Error implements error.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("dispatch: %s: unsupported type of argument(s) (%s)", e.Op, kindList(e.Kinds))
}

// Is lets errors.Is(err, ErrUnsupportedType) match.
func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

func kindList(ks []value.Kind) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// dispatchErrorf tags err with the operation name, keeping errors.Is intact.
func dispatchErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
