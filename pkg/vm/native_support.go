package vm

import "github.com/Aliandi/wollok-ts/pkg/ast"

// PushFrame pushes f onto the evaluation's frame stack — exposed for the
// driver, which pushes the top-level frame executing a program's or a
// test's body directly (§6, "run").
func (e *Evaluation) PushFrame(f *Frame) { e.pushFrame(f) }

// Exhausted reports whether f has run past its last instruction.
func (f *Frame) Exhausted() bool { return f.exhausted() }

// PopResult pops the top operand off f's stack — the driver uses this to
// read the value a completed top-level frame produced (§6, "run").
func (f *Frame) PopResult() (Id, error) { return f.pop() }

// PushResult pushes id onto the top frame's operand stack — the
// mechanism a NativeFunc uses to hand a result back to its caller
// (§6, "Natives registry").
func (e *Evaluation) PushResult(id Id) {
	e.Top().push(id)
}

// RaiseException delivers id as an `exception` interruption, unwinding
// frames until one resumes it (§4.6). Exposed so a NativeFunc can raise
// a language-level exception the same way Throw does.
func (e *Evaluation) RaiseException(id Id) error {
	return interrupt(e, InterruptException, id)
}

// NewException allocates an instance of exceptionModule with its
// `message` field set to a fresh String wrapping msg, the shape every
// wollok.lang.Exception subtype is expected to have.
func (e *Evaluation) NewException(exceptionModule, msg string) (Id, error) {
	msgId := e.Heap.AddInstance(ast.StringFQN, msg)
	id := e.Heap.AddInstance(exceptionModule, nil)
	obj, err := e.Heap.GetInstance(id)
	if err != nil {
		return "", err
	}
	obj.Fields["message"] = msgId
	return id, nil
}
