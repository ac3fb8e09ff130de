package vm

import "testing"

func TestFrame_PushPop(t *testing.T) {
	f := NewFrame(nil, nil)
	f.push(TrueId)
	f.push(FalseId)

	got, err := f.pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != FalseId {
		t.Errorf("expected LIFO pop to return FalseId, got %v", got)
	}
	got, _ = f.pop()
	if got != TrueId {
		t.Errorf("expected TrueId, got %v", got)
	}
}

func TestFrame_Pop_EmptyStack(t *testing.T) {
	f := NewFrame(nil, nil)
	if _, err := f.pop(); err == nil {
		t.Error("expected an error popping an empty operand stack")
	}
}

func TestFrame_PopN_PreservesOrder(t *testing.T) {
	f := NewFrame(nil, nil)
	f.push(NullId)
	f.push(TrueId)
	f.push(FalseId)

	ids, err := f.popN(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Id{NullId, TrueId, FalseId}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("popN[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
}

func TestFrame_PopN_PropagatesUnderflow(t *testing.T) {
	f := NewFrame(nil, nil)
	f.push(NullId)
	if _, err := f.popN(2); err == nil {
		t.Error("expected an error when popN exceeds the stack depth")
	}
}

func TestFrame_Exhausted(t *testing.T) {
	f := NewFrame([]Instruction{{Op: OpPush, Value: NullId}}, nil)
	if f.exhausted() {
		t.Error("a fresh frame with instructions left should not be exhausted")
	}
	f.NextInstruction = 1
	if !f.exhausted() {
		t.Error("expected a frame past its last instruction to report exhausted")
	}
}

func TestFrame_Clone_DeepCopiesLocalsAndStack(t *testing.T) {
	f := NewFrame([]Instruction{{Op: OpPush, Value: NullId}}, map[string]Id{"self": TrueId})
	f.push(NullId)

	clone := f.clone()
	clone.Locals["self"] = FalseId
	clone.OperandStack[0] = FalseId

	if f.Locals["self"] != TrueId {
		t.Error("mutating a clone's locals must not affect the original frame")
	}
	if f.OperandStack[0] != NullId {
		t.Error("mutating a clone's operand stack must not affect the original frame")
	}
	if len(clone.Instructions) != 1 || &clone.Instructions[0] != &f.Instructions[0] {
		t.Error("expected the instruction slice to be shared by reference across clones")
	}
}
