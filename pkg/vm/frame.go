package vm

import (
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
)

// Frame is one activation record (§3).
type Frame struct {
	Instructions    []Instruction
	NextInstruction int
	Locals          map[string]Id
	OperandStack    []Id
	Resume          ResumeSet
}

// NewFrame builds a frame ready to execute instructions from the top,
// with the given locals seeded in and no operands yet pushed.
func NewFrame(instructions []Instruction, locals map[string]Id) *Frame {
	if locals == nil {
		locals = map[string]Id{}
	}
	return &Frame{
		Instructions: instructions,
		Locals:       locals,
	}
}

func (f *Frame) push(id Id) {
	f.OperandStack = append(f.OperandStack, id)
}

// pop removes and returns the top operand, failing with a HostError on
// an empty stack (§7: "popping an empty stack").
func (f *Frame) pop() (Id, error) {
	n := len(f.OperandStack)
	if n == 0 {
		return "", &wollokerrors.HostError{Msg: "pop from empty operand stack"}
	}
	id := f.OperandStack[n-1]
	f.OperandStack = f.OperandStack[:n-1]
	return id, nil
}

// popN pops n operands, returning them in their original (bottom-to-top)
// order, as CALL and INIT require (§4.3, §4.4).
func (f *Frame) popN(n int) ([]Id, error) {
	ids := make([]Id, n)
	for i := n - 1; i >= 0; i-- {
		id, err := f.pop()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func (f *Frame) exhausted() bool {
	return f.NextInstruction >= len(f.Instructions)
}

func (f *Frame) current() (Instruction, error) {
	if f.exhausted() {
		return Instruction{}, &wollokerrors.HostError{Msg: "instruction list exhausted"}
	}
	return f.Instructions[f.NextInstruction], nil
}

func (f *Frame) clone() *Frame {
	locals := make(map[string]Id, len(f.Locals))
	for k, v := range f.Locals {
		locals[k] = v
	}
	operands := make([]Id, len(f.OperandStack))
	copy(operands, f.OperandStack)
	return &Frame{
		Instructions:    f.Instructions, // immutable, shared by reference (§5)
		NextInstruction: f.NextInstruction,
		Locals:          locals,
		OperandStack:    operands,
		Resume:          f.Resume,
	}
}

func (f *Frame) snapshot() (out struct {
	NextInstruction int
	InstructionLen  int
	Locals          map[string]string
	OperandStack    []string
	Resume          []string
}) {
	out.NextInstruction = f.NextInstruction
	out.InstructionLen = len(f.Instructions)
	out.Locals = make(map[string]string, len(f.Locals))
	for k, v := range f.Locals {
		out.Locals[k] = string(v)
	}
	out.OperandStack = make([]string, len(f.OperandStack))
	for i, id := range f.OperandStack {
		out.OperandStack[i] = string(id)
	}
	out.Resume = f.Resume.kinds()
	return out
}
