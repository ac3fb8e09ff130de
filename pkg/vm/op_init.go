package vm

import "github.com/Aliandi/wollok-ts/pkg/ast"

func stepInit(e *Evaluation, compile CompileFunc, instr Instruction) error {
	frame := e.Top()
	selfId, err := frame.pop()
	if err != nil {
		return err
	}
	argIds, err := frame.popN(instr.Arity)
	if err != nil {
		return err
	}
	self, err := e.Heap.GetInstance(selfId)
	if err != nil {
		return err
	}

	ctor, class, found := e.Environment.ConstructorLookupByFQN(instr.Arity, instr.LookupStart)
	if !found {
		return e.hostError("no constructor found for " + instr.LookupStart)
	}

	locals := bindParameters(e.Heap, ctor.Params, argIds)
	locals["self"] = selfId

	var instructions []Instruction

	if instr.InitFields {
		for _, field := range e.Environment.FieldsInInitOrder(self.Module) {
			initExpr, err := fieldInitializer(compile, field)
			if err != nil {
				return err
			}
			instructions = append(instructions, Instruction{Op: OpLoad, Name: "self"})
			instructions = append(instructions, initExpr...)
			instructions = append(instructions, Instruction{Op: OpSet, Name: field.Name})
		}
	}

	baseCallInstrs, err := compileBaseCall(compile, ctor, class)
	if err != nil {
		return err
	}
	instructions = append(instructions, baseCallInstrs...)

	bodyInstrs, err := compile(ctor.Body)
	if err != nil {
		return err
	}
	instructions = append(instructions, bodyInstrs...)

	instructions = append(instructions,
		Instruction{Op: OpLoad, Name: "self"},
		Instruction{Op: OpInterrupt, InterruptKind: InterruptReturn},
	)

	frame.Resume = frame.Resume.With(InterruptReturn)
	frame.NextInstruction++

	newFrame := NewFrame(instructions, locals)
	newFrame.Resume = NewResumeSet(InterruptReturn)
	e.pushFrame(newFrame)
	return nil
}

func fieldInitializer(compile CompileFunc, field *ast.Field) ([]Instruction, error) {
	if field.Initializer == nil {
		return []Instruction{{Op: OpPush, Value: NullId}}, nil
	}
	return compile(field.Initializer)
}

// compileBaseCall emits the constructor-chaining instructions of §4.4
// step 2. A constructor without a BaseCall makes an implicit,
// argument-less super call. It is skipped only for a root class's
// constructor that calls super — there is no superclass to delegate to.
func compileBaseCall(compile CompileFunc, ctor *ast.Constructor, class *ast.Class) ([]Instruction, error) {
	bc := ctor.BaseCall
	if bc == nil {
		bc = &ast.BaseCall{CallsSuper: true}
	}
	if class.Superclass == nil && bc.CallsSuper {
		return nil, nil
	}

	var instructions []Instruction
	for _, arg := range bc.Args {
		argInstrs, err := compile(arg)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, argInstrs...)
	}

	target := class.FQN
	if bc.CallsSuper && class.Superclass != nil {
		target = class.Superclass.FQN
	}

	instructions = append(instructions,
		Instruction{Op: OpLoad, Name: "self"},
		Instruction{Op: OpInit, Arity: len(bc.Args), LookupStart: target, HasLookupStart: true, InitFields: false},
	)
	return instructions, nil
}
