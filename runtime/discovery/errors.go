package discovery

import (
	"errors"
	"fmt"

	"github.com/natepiano/bevy-brp-extras/runtime/registry"
)

// Reason identifies the failure class of a discovery error. Every error the
// engine produces maps onto exactly one reason.
type Reason string

// Failure classes for discovery operations.
const (
	ReasonTypeNotFound     Reason = "Type not found in registry"
	ReasonUnsupportedType  Reason = "Unsupported type"
	ReasonFormatGeneration Reason = "Format generation error"
)

// Error is the unified error type for all discovery operations. Callers
// always receive exactly one Error (or none) per requested type, with a
// human-readable reason and details, never a partial example.
type Error struct {
	Reason  Reason `json:"reason"`  // Failure class
	Details string `json:"details"` // Human-readable explanation
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Details)
}

// newTypeNotFound wraps a registry miss.
func newTypeNotFound(typeName string) *Error {
	return &Error{
		Reason:  ReasonTypeNotFound,
		Details: fmt.Sprintf("Type '%s' is not registered with the type registry", typeName),
	}
}

// newUnsupportedType builds an unsupported-type error with a custom message.
func newUnsupportedType(format string, args ...any) *Error {
	return &Error{
		Reason:  ReasonUnsupportedType,
		Details: fmt.Sprintf(format, args...),
	}
}

// newFormatGeneration builds a format-generation error with a custom message.
func newFormatGeneration(format string, args ...any) *Error {
	return &Error{
		Reason:  ReasonFormatGeneration,
		Details: fmt.Sprintf(format, args...),
	}
}

// typeNotSupportedFor is the standardized error for an operation that a
// descriptor category cannot participate in.
func typeNotSupportedFor(typeName, operation string) *Error {
	return newUnsupportedType("%s not supported for type: %s", operation, typeName)
}

// asDiscoveryError normalizes any error into an *Error, converting registry
// lookup misses into the TypeNotFound reason.
func asDiscoveryError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	var nf *registry.NotFoundError
	if errors.As(err, &nf) {
		return newTypeNotFound(nf.TypeName)
	}
	return &Error{Reason: ReasonFormatGeneration, Details: err.Error()}
}
