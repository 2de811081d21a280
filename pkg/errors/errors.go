// Package errors provides structured error reporting for span tweens.
//
// Errors that happen inside a frame (for example an inconsistent span
// transition or a panicking effect) cannot be returned to a caller, so they
// are reported to a global [ErrorHandler]. The default [LogHandler] prints
// them to stderr.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSpan indicates an invalid time span.
	KindSpan
	// KindResolve indicates a span transition the resolver could not map.
	KindResolve
	// KindScene indicates a scene file that failed to load or build.
	KindScene
	// KindEffect indicates an effect that failed to apply.
	KindEffect
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindSpan:
		return "span"
	case KindResolve:
		return "resolve"
	case KindScene:
		return "scene"
	case KindEffect:
		return "effect"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TweenError represents a structured error raised while ticking tweens.
type TweenError struct {
	// Op is the operation that failed (e.g., "span.System.Update").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Entity names the entity involved, if any.
	Entity string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TweenError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TweenError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "world.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported during ticking.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TweenError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
