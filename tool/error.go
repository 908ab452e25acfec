package tool

import (
	"fmt"
	"strings"
)

// ErrorKind classifies every dispatch failure. The four kinds are the
// complete taxonomy: no other failure representation crosses the dispatch
// boundary.
type ErrorKind string

const (
	// KindMethodNotFound is returned when the requested tool name is not
	// in the registry.
	KindMethodNotFound ErrorKind = "METHOD_NOT_FOUND"
	// KindInvalidParams is returned when the validator rejects arguments.
	KindInvalidParams ErrorKind = "INVALID_PARAMS"
	// KindToolExecution is returned when a handler rejects its normalized
	// input for domain reasons.
	KindToolExecution ErrorKind = "TOOL_EXECUTION_ERROR"
	// KindInternal is returned for any unexpected failure during
	// invocation. The caller only ever sees a generic message.
	KindInternal ErrorKind = "INTERNAL_ERROR"
)

// CallError is the structured failure half of a CallResult. Message is safe
// to surface to callers; Cause retains the underlying error for logs.
type CallError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *CallError) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *CallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newCallError(kind ErrorKind, message string, cause error) *CallError {
	msg := strings.TrimSpace(message)
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &CallError{
		Kind:    kind,
		Message: msg,
		Cause:   cause,
	}
}
