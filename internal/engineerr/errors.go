// Package engineerr implements the engine's error taxonomy (§7): a closed
// set of error kinds rather than ad-hoc string errors, so callers can
// branch on kind via errors.As instead of string matching.
package engineerr

import "fmt"

// Kind names one of the seven error kinds §7 defines.
type Kind int

const (
	// KindParseError: malformed rules text, surfaced to content authors
	// with spans and suggestions; not reachable at runtime once content
	// ships.
	KindParseError Kind = iota
	// KindIllegalAction: the action is not in the legal-action set;
	// rejected without mutating state.
	KindIllegalAction
	// KindInvariantViolation: a mutator detected a broken invariant. Fatal;
	// the caller should capture a panic-snapshot and terminate the battle.
	KindInvariantViolation
	// KindPromptMismatch: a response does not match the active prompt;
	// treated as IllegalAction by propagation policy.
	KindPromptMismatch
	// KindStaleTarget: a target's object ID no longer matches; recovered
	// locally during effect application, never returned to callers except
	// via SkipEffect.
	KindStaleTarget
	// KindSkipEffect: an effect explicitly required a target that turned
	// out stale; the whole effect (not just one target) is skipped.
	KindSkipEffect
	// KindSearchError: the AI found no legal action. Should be impossible;
	// treated as InvariantViolation by propagation policy.
	KindSearchError
)

func (k Kind) String() string {
	switch k {
	case KindParseError:
		return "ParseError"
	case KindIllegalAction:
		return "IllegalAction"
	case KindInvariantViolation:
		return "InvariantViolation"
	case KindPromptMismatch:
		return "PromptMismatch"
	case KindStaleTarget:
		return "StaleTarget"
	case KindSkipEffect:
		return "SkipEffect"
	case KindSearchError:
		return "SearchError"
	default:
		return "Unknown"
	}
}

// Error is the concrete type every engine error kind shares: a kind, a
// human-readable message, and the wrapped cause if any.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, satisfying
// errors.Is(err, engineerr.IllegalAction("")) style checks against a
// freshly constructed sentinel of the same kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// IllegalAction constructs a KindIllegalAction error.
func IllegalAction(message string) *Error {
	return &Error{Kind: KindIllegalAction, Message: message}
}

// PromptMismatch constructs a KindPromptMismatch error.
func PromptMismatch(message string) *Error {
	return &Error{Kind: KindPromptMismatch, Message: message}
}

// InvariantViolation constructs a KindInvariantViolation error wrapping
// cause.
func InvariantViolation(message string, cause error) *Error {
	return &Error{Kind: KindInvariantViolation, Message: message, Cause: cause}
}

// StaleTarget constructs a KindStaleTarget error.
func StaleTarget(message string) *Error {
	return &Error{Kind: KindStaleTarget, Message: message}
}

// SkipEffect constructs a KindSkipEffect error.
func SkipEffect(message string) *Error {
	return &Error{Kind: KindSkipEffect, Message: message}
}

// SearchError constructs a KindSearchError error.
func SearchError(message string) *Error {
	return &Error{Kind: KindSearchError, Message: message}
}

// ParseErrorDetail is the optional source span and suggested fix a
// ParseError carries.
type ParseErrorDetail struct {
	Line       int
	Column     int
	Suggestion string
}

// ParseError constructs a KindParseError error, optionally carrying a
// source span and a suggested fix for content authors.
func ParseError(message string, detail ParseErrorDetail) *Error {
	msg := message
	if detail.Suggestion != "" {
		msg = fmt.Sprintf("%s (line %d, col %d; did you mean %q?)", message, detail.Line, detail.Column, detail.Suggestion)
	} else if detail.Line != 0 {
		msg = fmt.Sprintf("%s (line %d, col %d)", message, detail.Line, detail.Column)
	}
	return &Error{Kind: KindParseError, Message: msg}
}
