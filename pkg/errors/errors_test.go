package errors

import (
	"errors"
	"testing"
)

func TestCompileError_KindAndMessage(t *testing.T) {
	cause := errors.New("boom")
	e := &CompileError{Msg: "unresolved super target", Cause: cause}

	if e.Kind() != "Compile" {
		t.Errorf("expected Kind() = Compile, got %q", e.Kind())
	}
	if e.Message() != "unresolved super target" {
		t.Errorf("expected Message() to return Msg, got %q", e.Message())
	}
	if e.Unwrap() != cause {
		t.Error("expected Unwrap() to return the wrapped cause")
	}
}

func TestHostError_ErrorIncludesSnapshot(t *testing.T) {
	e := &HostError{
		Msg: "no local named x",
		Snapshot: Snapshot{Frames: []FrameSnapshot{
			{NextInstruction: 2, InstructionLen: 5, Locals: map[string]string{"x": "id-1"}},
		}},
	}
	if e.Kind() != "Host" {
		t.Errorf("expected Kind() = Host, got %q", e.Kind())
	}
	got := e.Error()
	if got == "" {
		t.Fatal("expected a non-empty error message")
	}
	if got == e.Msg {
		t.Error("expected Error() to include the snapshot rendering, not just Msg")
	}
}

func TestLanguageError_ErrorUsesMessageWhenPresent(t *testing.T) {
	withMessage := &LanguageError{ExceptionModule: "wollok.example.BoomException", ExceptionMessage: "kaboom"}
	if got := withMessage.Error(); got != "unhandled exception wollok.example.BoomException: kaboom" {
		t.Errorf("unexpected Error(): %q", got)
	}

	withoutMessage := &LanguageError{ExceptionModule: "wollok.example.BoomException"}
	if got := withoutMessage.Error(); got != "unhandled exception wollok.example.BoomException" {
		t.Errorf("unexpected Error() without a message: %q", got)
	}

	if withMessage.Unwrap() != nil {
		t.Error("expected LanguageError.Unwrap() to always be nil")
	}
	if withMessage.Kind() != "Language" {
		t.Errorf("expected Kind() = Language, got %q", withMessage.Kind())
	}
}

func TestLanguageError_MessageMatchesError(t *testing.T) {
	e := &LanguageError{ExceptionModule: "wollok.lang.Exception"}
	if e.Message() != e.Error() {
		t.Error("expected LanguageError.Message() to mirror Error()")
	}
}
