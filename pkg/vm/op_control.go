package vm

func stepIfThenElse(e *Evaluation, frame *Frame, instr Instruction) error {
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
		return raiseBadParameter(e, "IF_THEN_ELSE requires a Boolean condition")
	}

	branch := instr.Else
	if b {
		branch = instr.Then
	}

	instructions := make([]Instruction, 0, len(branch)+2)
	instructions = append(instructions, Instruction{Op: OpPush, Value: VoidId})
	instructions = append(instructions, branch...)
	instructions = append(instructions, Instruction{Op: OpInterrupt, InterruptKind: InterruptResult})

	frame.Resume = frame.Resume.With(InterruptResult)
	frame.NextInstruction++

	e.pushFrame(NewFrame(instructions, nil))
	return nil
}

// stepTryCatchAlways pushes the always/catch/body frame triple of §4.5,
// bottom-to-top so the body frame runs first, and marks the current frame
// as resuming on result so the always frame's final re-raise lands here.
func stepTryCatchAlways(e *Evaluation, frame *Frame, instr Instruction) error {
	frame.Resume = frame.Resume.With(InterruptResult)
	frame.NextInstruction++

	alwaysInstrs := make([]Instruction, 0, len(instr.TryAlways)+3)
	alwaysInstrs = append(alwaysInstrs, Instruction{Op: OpStore, Name: "<previous_interruption>"})
	alwaysInstrs = append(alwaysInstrs, instr.TryAlways...)
	alwaysInstrs = append(alwaysInstrs,
		Instruction{Op: OpLoad, Name: "<previous_interruption>"},
		Instruction{Op: OpResumeInterruption},
	)
	alwaysFrame := NewFrame(alwaysInstrs, nil)
	alwaysFrame.Resume = NewResumeSet(InterruptResult, InterruptReturn, InterruptException)

	catchInstrs := make([]Instruction, 0, len(instr.TryCatch)+3)
	catchInstrs = append(catchInstrs, Instruction{Op: OpStore, Name: "<exception>"})
	catchInstrs = append(catchInstrs, instr.TryCatch...)
	catchInstrs = append(catchInstrs,
		Instruction{Op: OpLoad, Name: "<exception>"},
		Instruction{Op: OpInterrupt, InterruptKind: InterruptException},
	)
	catchFrame := NewFrame(catchInstrs, nil)
	catchFrame.Resume = NewResumeSet(InterruptException)

	bodyInstrs := make([]Instruction, 0, len(instr.TryBody)+2)
	bodyInstrs = append(bodyInstrs, Instruction{Op: OpPush, Value: VoidId})
	bodyInstrs = append(bodyInstrs, instr.TryBody...)
	bodyInstrs = append(bodyInstrs, Instruction{Op: OpInterrupt, InterruptKind: InterruptResult})
	bodyFrame := NewFrame(bodyInstrs, nil)

	e.pushFrame(alwaysFrame)
	e.pushFrame(catchFrame)
	e.pushFrame(bodyFrame)
	return nil
}
