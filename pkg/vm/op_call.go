package vm

import "github.com/Aliandi/wollok-ts/pkg/ast"

func stepCall(e *Evaluation, natives Natives, compile CompileFunc, instr Instruction) error {
	frame := e.Top()
	argIds, err := frame.popN(instr.Arity)
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

	var (
		method *ast.Method
		found  bool
	)
	if instr.HasLookupStart {
		method, _, found = e.Environment.MethodLookupAbove(instr.Message, instr.Arity, self.Module, instr.LookupStart)
	} else {
		method, _, found = e.Environment.MethodLookup(instr.Message, instr.Arity, self.Module)
	}

	if !found {
		return dispatchMessageNotUnderstood(e, natives, compile, frame, self, selfId, instr.Message, argIds)
	}
	return dispatchMethod(e, natives, compile, frame, method, selfId, argIds)
}

// dispatchMessageNotUnderstood implements the CALL fallback of §4.3.
// Resolution here always starts at the receiver's own module, never at
// a super-call's lookupStart (§9 Open Questions).
func dispatchMessageNotUnderstood(e *Evaluation, natives Natives, compile CompileFunc, frame *Frame, self *RuntimeObject, selfId Id, message string, argIds []Id) error {
	msgId := e.Heap.AddInstance(ast.StringFQN, message)
	listId := e.Heap.AddInstance(ast.ListFQN, append([]Id{}, argIds...))

	method, _, found := e.Environment.MethodLookup(ast.MessageNotUnderstoodName, ast.MessageNotUnderstoodArity, self.Module)
	if !found {
		return e.hostError("no messageNotUnderstood found on " + self.Module)
	}

	frame.Resume = frame.Resume.With(InterruptReturn)
	frame.NextInstruction++

	if method.Native {
		return invokeNative(e, natives, method, selfId, []Id{msgId, listId})
	}

	locals := map[string]Id{"self": selfId, "name": msgId, "args": listId}
	return pushMethodFrame(e, compile, method, locals)
}

func dispatchMethod(e *Evaluation, natives Natives, compile CompileFunc, frame *Frame, method *ast.Method, selfId Id, argIds []Id) error {
	frame.Resume = frame.Resume.With(InterruptReturn)
	frame.NextInstruction++

	if method.Native {
		return invokeNative(e, natives, method, selfId, argIds)
	}

	locals := bindParameters(e.Heap, method.Params, argIds)
	locals["self"] = selfId
	return pushMethodFrame(e, compile, method, locals)
}

func invokeNative(e *Evaluation, natives Natives, method *ast.Method, selfId Id, argIds []Id) error {
	key := NativeKey(method.NativeFQN, method.Arity())
	fn, ok := natives[key]
	if !ok {
		return e.hostError("no native registered for " + key)
	}
	return fn(e, selfId, argIds)
}

// pushMethodFrame compiles method.Body (memoized by compile) and pushes
// a frame that returns void if control falls off the end of the body
// (§4.3).
func pushMethodFrame(e *Evaluation, compile CompileFunc, method *ast.Method, locals map[string]Id) error {
	body, err := compile(method.Body)
	if err != nil {
		return err
	}
	instructions := append(append([]Instruction{}, body...),
		Instruction{Op: OpPush, Value: VoidId},
		Instruction{Op: OpInterrupt, InterruptKind: InterruptReturn},
	)
	frame := NewFrame(instructions, locals)
	frame.Resume = NewResumeSet(InterruptReturn)
	e.pushFrame(frame)
	return nil
}
