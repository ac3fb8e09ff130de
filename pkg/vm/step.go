package vm

import (
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
)

// NativeFunc is a native method implementation: given the evaluation,
// the receiver id and the argument ids (already resolved to
// RuntimeObjects is the caller's job, not the signature's — natives are
// free to call e.Heap.GetInstance themselves), it mutates the evaluation
// in place, typically by pushing a result onto the top frame's operand
// stack (§6, "Natives registry").
type NativeFunc func(e *Evaluation, self Id, args []Id) error

// Natives is the fully qualified method identity -> implementation map
// CALL consults when the resolved method is declared native (§6).
type Natives map[string]NativeFunc

// NativeKey builds the registry key CALL looks natives up by.
func NativeKey(fqn string, arity int) string {
	return fqn + "/" + itoa(arity)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Step interprets one instruction from the top frame, mutating operand
// stack / locals / heap / frame stack in place (§2). CALL/INIT/
// IF_THEN_ELSE/TRY_CATCH_ALWAYS push new frames (a CALL to a native
// method runs in place instead), INTERRUPT/RESUME_INTERRUPTION may pop
// several, CONDITIONAL_JUMP advances NextInstruction by one plus Offset
// when its condition is false, and everything else advances it by one.
func Step(e *Evaluation, natives Natives, compile CompileFunc) error {
	frame := e.Top()
	instr, err := frame.current()
	if err != nil {
		return err
	}

	switch instr.Op {
	case OpLoad:
		return stepLoad(e, frame, instr)
	case OpStore:
		return stepStore(e, frame, instr)
	case OpPush:
		frame.push(instr.Value)
		frame.NextInstruction++
		return nil
	case OpGet:
		return stepGet(e, frame, instr)
	case OpSet:
		return stepSet(e, frame, instr)
	case OpSwap:
		return stepSwap(frame)
	case OpInstantiate:
		return stepInstantiate(e, frame, instr)
	case OpInherits:
		return stepInherits(e, frame, instr)
	case OpConditionalJump:
		return stepConditionalJump(e, frame, instr)
	case OpCall:
		return stepCall(e, natives, compile, instr)
	case OpInit:
		return stepInit(e, compile, instr)
	case OpIfThenElse:
		return stepIfThenElse(e, frame, instr)
	case OpTryCatchAlways:
		return stepTryCatchAlways(e, frame, instr)
	case OpInterrupt:
		return stepInterrupt(e, frame, instr)
	case OpResumeInterruption:
		return stepResumeInterruption(e, frame)
	default:
		return e.hostError("unknown opcode")
	}
}

func stepLoad(e *Evaluation, frame *Frame, instr Instruction) error {
	owner := e.FindBinding(instr.Name)
	if owner == nil {
		return e.hostError("no local named " + instr.Name)
	}
	frame.push(owner.Locals[instr.Name])
	frame.NextInstruction++
	return nil
}

func stepStore(e *Evaluation, frame *Frame, instr Instruction) error {
	v, err := frame.pop()
	if err != nil {
		return err
	}
	target := frame
	if instr.Lookup {
		if owner := e.FindBinding(instr.Name); owner != nil {
			target = owner
		}
	}
	target.Locals[instr.Name] = v
	frame.NextInstruction++
	return nil
}

func stepGet(e *Evaluation, frame *Frame, instr Instruction) error {
	selfId, err := frame.pop()
	if err != nil {
		return err
	}
	self, err := e.Heap.GetInstance(selfId)
	if err != nil {
		return err
	}
	fieldId, ok := self.Fields[instr.Name]
	if !ok {
		return e.hostError("undefined field " + instr.Name + " on " + self.Module)
	}
	frame.push(fieldId)
	frame.NextInstruction++
	return nil
}

func stepSet(e *Evaluation, frame *Frame, instr Instruction) error {
	v, err := frame.pop()
	if err != nil {
		return err
	}
	selfId, err := frame.pop()
	if err != nil {
		return err
	}
	self, err := e.Heap.GetInstance(selfId)
	if err != nil {
		return err
	}
	self.Fields[instr.Name] = v
	frame.NextInstruction++
	return nil
}

func stepSwap(frame *Frame) error {
	n := len(frame.OperandStack)
	if n < 2 {
		return &wollokerrors.HostError{Msg: "SWAP needs two operands"}
	}
	frame.OperandStack[n-1], frame.OperandStack[n-2] = frame.OperandStack[n-2], frame.OperandStack[n-1]
	frame.NextInstruction++
	return nil
}

func stepInstantiate(e *Evaluation, frame *Frame, instr Instruction) error {
	var innerValue interface{}
	if instr.HasInnerValue {
		innerValue = instr.InnerValue
	}
	id := e.Heap.AddInstance(instr.Module, innerValue)
	frame.push(id)
	frame.NextInstruction++
	return nil
}

func stepInherits(e *Evaluation, frame *Frame, instr Instruction) error {
	selfId, err := frame.pop()
	if err != nil {
		return err
	}
	self, err := e.Heap.GetInstance(selfId)
	if err != nil {
		return err
	}
	if e.Environment.Inherits(self.Module, instr.Module) {
		frame.push(TrueId)
	} else {
		frame.push(FalseId)
	}
	frame.NextInstruction++
	return nil
}

func stepConditionalJump(e *Evaluation, frame *Frame, instr Instruction) error {
	cId, err := frame.pop()
	if err != nil {
		return err
	}
	cond, err := e.Heap.GetInstance(cId)
	if err != nil {
		return err
	}
	b, ok := cond.AsBoolean()
	if !ok || cond.Module != "wollok.lang.Boolean" {
		return raiseBadParameter(e, "CONDITIONAL_JUMP requires a Boolean")
	}
	if instr.Offset < 0 {
		return e.hostError("negative CONDITIONAL_JUMP offset")
	}
	target := frame.NextInstruction + 1
	if !b {
		target += instr.Offset
	}
	if target > len(frame.Instructions) {
		return e.hostError("CONDITIONAL_JUMP target out of bounds")
	}
	frame.NextInstruction = target
	return nil
}
