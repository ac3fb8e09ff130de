// Package errors defines the diagnostic error types of the evaluation
// core.
package errors

import (
	"fmt"
)

// EvaluationError is the interface implemented by every error this module
// raises. It always carries a Kind (used by the driver/CLI to decide how
// loud to be about it) and, for failures that occur mid-evaluation, a
// Snapshot of the evaluation state that produced them.
type EvaluationError interface {
	error
	Kind() string
	Message() string
	Unwrap() error
}

// CompileError describes a failure to lower an AST node — a malformed
// reference, an unresolved super-call target, or a violation of the
// compiler's own referential-transparency contract (§4.1). The compiler
// package reports its own failures (super outside a method body, an
// unsupported node type) as plain errors, not as CompileError.
type CompileError struct {
	Msg   string
	Cause error
}

func (e *CompileError) Error() string   { return fmt.Sprintf("compile error: %s", e.Msg) }
func (e *CompileError) Kind() string    { return "Compile" }
func (e *CompileError) Message() string { return e.Msg }
func (e *CompileError) Unwrap() error   { return e.Cause }

// HostError signals a bug in the interpreter or an invalid AST: popping an
// empty operand stack, an undefined instance or field, an unhandled
// interruption, a missing constructor, an out-of-bounds jump, and so on
// (§7). It always carries a Snapshot of the evaluation that failed.
type HostError struct {
	Msg      string
	Snapshot Snapshot
	Cause    error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("host failure: %s\n%s", e.Msg, e.Snapshot.String())
}
func (e *HostError) Kind() string    { return "Host" }
func (e *HostError) Message() string { return e.Msg }
func (e *HostError) Unwrap() error   { return e.Cause }

// LanguageError wraps a Language-level exception (an `exception`
// interruption that reached the outermost frame unhandled). Per §7 the
// interpreter must try to log the exception's `message` field before
// surfacing this as a host-level failure.
type LanguageError struct {
	ExceptionModule  string
	ExceptionMessage string // best-effort read of the exception's `message` field
	Snapshot         Snapshot
}

func (e *LanguageError) Error() string {
	if e.ExceptionMessage != "" {
		return fmt.Sprintf("unhandled exception %s: %s", e.ExceptionModule, e.ExceptionMessage)
	}
	return fmt.Sprintf("unhandled exception %s", e.ExceptionModule)
}
func (e *LanguageError) Kind() string    { return "Language" }
func (e *LanguageError) Message() string { return e.Error() }
func (e *LanguageError) Unwrap() error   { return nil }
