package vm

import (
	"fmt"

	"github.com/Aliandi/wollok-ts/pkg/ast"
)

// UnhandledInterruption is returned by interrupt() when unwinding empties
// the frame stack without finding a frame willing to resume Kind (§4.6:
// "If the stack empties, fail with Unhandled <kind>"). The driver
// inspects Kind/Value to build the right diagnostic — an unhandled
// `exception` gets its message logged before being surfaced as a host
// failure (§7).
type UnhandledInterruption struct {
	Kind  InterruptKind
	Value Id
}

func (e *UnhandledInterruption) Error() string {
	return fmt.Sprintf("unhandled %s", e.Kind)
}

func stepInterrupt(e *Evaluation, frame *Frame, instr Instruction) error {
	v, err := frame.pop()
	if err != nil {
		return err
	}
	return interrupt(e, instr.InterruptKind, v)
}

func stepResumeInterruption(e *Evaluation, frame *Frame) error {
	v, err := frame.pop()
	if err != nil {
		return err
	}
	kind, ok := frame.Resume.Missing()
	if !ok {
		return e.hostError("cannot infer interruption kind to resume")
	}
	return interrupt(e, kind, v)
}

// interrupt repeatedly pops frames until one resumes kind, then delivers
// v onto its operand stack (§4.6).
func interrupt(e *Evaluation, kind InterruptKind, v Id) error {
	for {
		top := e.Top()
		if top.Resume.Has(kind) {
			top.Resume = top.Resume.Without(kind)
			top.push(v)
			return nil
		}
		if len(e.frameStack) == 1 {
			return &UnhandledInterruption{Kind: kind, Value: v}
		}
		e.popFrame()
	}
}

// raiseBadParameter allocates a wollok.lang.BadParameterException and
// raises it as an `exception` interruption — the only exception the VM
// raises directly (§7).
func raiseBadParameter(e *Evaluation, msg string) error {
	msgId := e.Heap.AddInstance(ast.StringFQN, msg)
	excId := e.Heap.AddInstance(ast.BadParameterExceptionFQN, nil)
	exc, err := e.Heap.GetInstance(excId)
	if err != nil {
		return err
	}
	exc.Fields["message"] = msgId
	return interrupt(e, InterruptException, excId)
}
