package vm

import "testing"

func newTestEvaluation() *Evaluation {
	heap := NewHeap()
	bootstrap := NewFrame(nil, map[string]Id{"wollok.example.foo": NullId})
	return NewEvaluation(nil, heap, bootstrap)
}

func TestEvaluation_Done(t *testing.T) {
	e := newTestEvaluation()
	if !e.Done() {
		t.Error("expected a single exhausted frame to be Done")
	}
	e.pushFrame(NewFrame([]Instruction{{Op: OpPush, Value: NullId}}, nil))
	if e.Done() {
		t.Error("expected Done to be false once a second frame is pushed")
	}
}

func TestEvaluation_FrameCount(t *testing.T) {
	e := newTestEvaluation()
	if e.FrameCount() != 1 {
		t.Errorf("expected FrameCount 1, got %d", e.FrameCount())
	}
	e.pushFrame(NewFrame(nil, nil))
	if e.FrameCount() != 2 {
		t.Errorf("expected FrameCount 2 after pushing a frame, got %d", e.FrameCount())
	}
	e.popFrame()
	if e.FrameCount() != 1 {
		t.Errorf("expected FrameCount 1 after popping, got %d", e.FrameCount())
	}
}

func TestEvaluation_FindBinding_WalksTopDown(t *testing.T) {
	e := newTestEvaluation()
	e.pushFrame(NewFrame(nil, map[string]Id{"self": TrueId}))

	f := e.FindBinding("self")
	if f == nil || f.Locals["self"] != TrueId {
		t.Fatal("expected FindBinding to locate 'self' in the innermost frame")
	}

	f = e.FindBinding("wollok.example.foo")
	if f == nil || f.Locals["wollok.example.foo"] != NullId {
		t.Fatal("expected FindBinding to fall through to the bootstrap frame")
	}

	if e.FindBinding("nonexistent") != nil {
		t.Error("expected FindBinding to return nil for an unbound name")
	}
}

func TestEvaluation_Clone_IsolatesHeapAndFrames(t *testing.T) {
	e := newTestEvaluation()
	e.Top().push(NullId)

	clone := e.Clone()
	if clone.Heap == e.Heap {
		t.Error("expected Clone to allocate a fresh heap")
	}
	clone.Top().push(TrueId)
	if len(e.Top().OperandStack) != 1 {
		t.Error("pushing onto the clone's frame must not affect the original")
	}

	id := e.Heap.AddInstance("wollok.example.Counter", nil)
	obj, _ := e.Heap.GetInstance(id)
	obj.Fields["n"] = NullId

	cloneObj, err := clone.Heap.GetInstance(id)
	if err == nil {
		t.Fatal("expected the clone taken before AddInstance to not see instances allocated afterward")
	}
	_ = cloneObj
}

func TestEvaluation_Snapshot_ExcludesEnvironment(t *testing.T) {
	e := newTestEvaluation()
	e.Top().push(TrueId)
	snap := e.Snapshot()
	if len(snap.Frames) != 1 {
		t.Fatalf("expected one frame in the snapshot, got %d", len(snap.Frames))
	}
	if len(snap.Frames[0].OperandStack) != 1 || snap.Frames[0].OperandStack[0] != string(TrueId) {
		t.Errorf("expected operand stack to render TrueId, got %v", snap.Frames[0].OperandStack)
	}
}
