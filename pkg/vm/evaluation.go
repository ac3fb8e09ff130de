package vm

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
)

// Evaluation is the whole VM state (§3). The Environment is shared and
// read-only; the Heap and frame stack are exclusively owned.
type Evaluation struct {
	Environment *ast.Environment
	Heap        *Heap
	frameStack  []*Frame
}

// NewEvaluation builds an Evaluation around a freshly seeded heap and a
// single frame, ready to be stepped.
func NewEvaluation(env *ast.Environment, heap *Heap, initial *Frame) *Evaluation {
	return &Evaluation{
		Environment: env,
		Heap:        heap,
		frameStack:  []*Frame{initial},
	}
}

// Top returns the innermost frame. Panics only if the frame stack was
// allowed to go empty, which step() never permits.
func (e *Evaluation) Top() *Frame {
	return e.frameStack[len(e.frameStack)-1]
}

func (e *Evaluation) pushFrame(f *Frame) {
	e.frameStack = append(e.frameStack, f)
}

func (e *Evaluation) popFrame() *Frame {
	n := len(e.frameStack)
	f := e.frameStack[n-1]
	e.frameStack = e.frameStack[:n-1]
	return f
}

// FrameCount reports the current depth of the frame stack, so a caller
// can enforce a recursion bound the VM itself is agnostic to.
func (e *Evaluation) FrameCount() int { return len(e.frameStack) }

// Done reports whether the outermost frame has run to completion.
func (e *Evaluation) Done() bool {
	return len(e.frameStack) == 1 && e.Top().exhausted()
}

// FindBinding returns the innermost frame (top-down) that binds name,
// or nil if none does (§4.1 LOAD/STORE).
func (e *Evaluation) FindBinding(name string) *Frame {
	for i := len(e.frameStack) - 1; i >= 0; i-- {
		if _, ok := e.frameStack[i].Locals[name]; ok {
			return e.frameStack[i]
		}
	}
	return nil
}

// Snapshot renders a diagnostic view of the frame stack, excluding the
// Environment (§7).
func (e *Evaluation) Snapshot() wollokerrors.Snapshot {
	frames := make([]wollokerrors.FrameSnapshot, len(e.frameStack))
	for i, f := range e.frameStack {
		s := f.snapshot()
		frames[i] = wollokerrors.FrameSnapshot{
			NextInstruction: s.NextInstruction,
			InstructionLen:  s.InstructionLen,
			Locals:          s.Locals,
			OperandStack:    s.OperandStack,
			Resume:          s.Resume,
		}
	}
	return wollokerrors.Snapshot{Frames: frames}
}

func (e *Evaluation) hostError(msg string) error {
	return &wollokerrors.HostError{Msg: msg, Snapshot: e.Snapshot()}
}

// Clone deep-clones the evaluation: every RuntimeObject and every Frame
// is duplicated, the Environment and each frame's instruction sequence
// are shared by reference (§5). Used to give each test a fresh
// evaluation derived from a common bootstrap state.
func (e *Evaluation) Clone() *Evaluation {
	frames := make([]*Frame, len(e.frameStack))
	for i, f := range e.frameStack {
		frames[i] = f.clone()
	}
	return &Evaluation{
		Environment: e.Environment,
		Heap:        e.Heap.clone(),
		frameStack:  frames,
	}
}
