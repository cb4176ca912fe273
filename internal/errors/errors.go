// Package errors defines the stage-tagged error taxonomy shared by the
// processing pipeline. Every failure that crosses the batch-driver boundary
// carries a Kind so outcomes can be classified without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind categorizes a processing failure by the stage that produced it.
type Kind string

const (
	// KindConfig marks invalid configuration (fatal, pre-flight).
	KindConfig Kind = "config"
	// KindDecode marks an unreadable, corrupt, or unsupported source image.
	KindDecode Kind = "decode"
	// KindDimensions marks a source with a zero-sized axis.
	KindDimensions Kind = "dimensions"
	// KindComposition marks a defensive canvas-bounds violation. Seeing one
	// means a geometry invariant was broken and should be treated as a bug.
	KindComposition Kind = "composition"
	// KindEncode marks a codec or output-write failure.
	KindEncode Kind = "encode"
)

// ProcessError is a structured, kind-tagged error.
type ProcessError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *ProcessError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *ProcessError {
	return &ProcessError{Kind: KindConfig, Message: message, Cause: cause}
}

// NewDecodeError creates a new decode error.
func NewDecodeError(message string, cause error) *ProcessError {
	return &ProcessError{Kind: KindDecode, Message: message, Cause: cause}
}

// NewDimensionsError creates a new invalid-dimensions error.
func NewDimensionsError(message string, cause error) *ProcessError {
	return &ProcessError{Kind: KindDimensions, Message: message, Cause: cause}
}

// NewCompositionError creates a new composition error.
func NewCompositionError(message string, cause error) *ProcessError {
	return &ProcessError{Kind: KindComposition, Message: message, Cause: cause}
}

// NewEncodeError creates a new encode error.
func NewEncodeError(message string, cause error) *ProcessError {
	return &ProcessError{Kind: KindEncode, Message: message, Cause: cause}
}

// IsKind checks if the error (or anything it wraps) is of a specific kind.
func IsKind(err error, kind Kind) bool {
	var pe *ProcessError
	if stderrors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// KindOf extracts the kind from an error, or "" for untagged errors.
func KindOf(err error) Kind {
	var pe *ProcessError
	if stderrors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
