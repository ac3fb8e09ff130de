// Package driver assembles a compiler, a natives registry and a linked
// Environment into a runnable evaluation, and steps it to completion —
// the buildEvaluationFor/run/runTests surface spec.md §6 names as the
// driver-exposed API.
package driver

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/compiler"
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// Driver owns the pieces a single program run or test suite needs: the
// compiler (so its memoization cache is shared across every evaluation
// derived from the same environment), the natives registry, and a frame
// depth bound analogous to nooga-paserati's vm.MaxFrames.
type Driver struct {
	Compiler  *compiler.Compiler
	Natives   vm.Natives
	MaxFrames int
}

// New builds a Driver around a fresh compiler.
func New(natives vm.Natives, maxFrames int) *Driver {
	return &Driver{Compiler: compiler.New(), Natives: natives, MaxFrames: maxFrames}
}

// BuildEvaluationFor allocates the heap with the four well-known
// instances and every named global singleton, then runs each
// singleton's constructor-chain (superclass constructor + field
// initialization) in bootstrap order (§6, "buildEvaluationFor").
func (d *Driver) BuildEvaluationFor(env *ast.Environment) (*vm.Evaluation, error) {
	heap := vm.NewHeap()
	locals := map[string]vm.Id{}
	var instructions []vm.Instruction

	for _, s := range env.Singletons() {
		id := singletonId(s)
		heap.AddInstanceWithId(id, s.FQN, nil)
		locals[s.FQN] = id

		for _, arg := range s.SuperArgs {
			instrs, err := d.Compiler.Compile(env, arg)
			if err != nil {
				return nil, err
			}
			instructions = append(instructions, instrs...)
		}
		superFQN := ""
		if s.Superclass != nil {
			superFQN = s.Superclass.FQN
		}
		instructions = append(instructions,
			vm.Instruction{Op: vm.OpLoad, Name: s.FQN},
			vm.Instruction{Op: vm.OpInit, Arity: len(s.SuperArgs), LookupStart: superFQN, HasLookupStart: true, InitFields: true},
		)
	}

	bootstrap := vm.NewFrame(instructions, locals)
	evaluation := vm.NewEvaluation(env, heap, bootstrap)

	compile := d.Compiler.Bind(env)
	log.Debug("bootstrapping evaluation", "singletons", len(env.Singletons()))
	for !evaluation.Done() {
		if err := d.step(evaluation, compile); err != nil {
			return nil, err
		}
	}
	return evaluation, nil
}

// singletonId derives a stable, process-unique id for a named singleton
// from its AST node id, so every clone of the bootstrap evaluation
// addresses the same singleton instance across runs of the same program.
func singletonId(s *ast.Singleton) vm.Id {
	return vm.Id("singleton:" + strconv.FormatUint(s.NodeID(), 10))
}

// Run pushes a frame executing body on top of evaluation and steps until
// that frame completes, returning the instance popped from its operand
// stack (§6, "run").
func (d *Driver) Run(evaluation *vm.Evaluation, body *ast.Body) (*vm.RuntimeObject, error) {
	instrs, err := d.Compiler.Compile(evaluation.Environment, body)
	if err != nil {
		return nil, err
	}
	frame := vm.NewFrame(instrs, nil)
	evaluation.PushFrame(frame)

	compile := d.Compiler.Bind(evaluation.Environment)
	for evaluation.Top() != frame || !frame.Exhausted() {
		if err := d.step(evaluation, compile); err != nil {
			return nil, err
		}
	}
	resultId, err := frame.PopResult()
	if err != nil {
		return nil, err
	}
	return evaluation.Heap.GetInstance(resultId)
}

func (d *Driver) step(e *vm.Evaluation, compile vm.CompileFunc) error {
	if d.MaxFrames > 0 && e.FrameCount() > d.MaxFrames {
		return &wollokerrors.HostError{Msg: "maximum frame depth exceeded", Snapshot: e.Snapshot()}
	}
	if err := vm.Step(e, d.Natives, compile); err != nil {
		if unhandled, ok := err.(*vm.UnhandledInterruption); ok {
			return d.reportUnhandled(e, unhandled)
		}
		return err
	}
	return nil
}

// reportUnhandled converts an unhandled `exception` interruption into a
// LanguageError, logging the exception's message field first (§7).
func (d *Driver) reportUnhandled(e *vm.Evaluation, u *vm.UnhandledInterruption) error {
	if u.Kind != vm.InterruptException {
		return &wollokerrors.HostError{Msg: u.Error(), Snapshot: e.Snapshot()}
	}
	obj, err := e.Heap.GetInstance(u.Value)
	if err != nil {
		return &wollokerrors.LanguageError{Snapshot: e.Snapshot()}
	}
	message := ""
	if msgId, ok := obj.Fields["message"]; ok {
		if msgObj, err := e.Heap.GetInstance(msgId); err == nil {
			if s, ok := msgObj.AsString(); ok {
				message = s
			}
		}
	}
	log.Error("unhandled exception", "module", obj.Module, "message", message)
	return &wollokerrors.LanguageError{ExceptionModule: obj.Module, ExceptionMessage: message, Snapshot: e.Snapshot()}
}
