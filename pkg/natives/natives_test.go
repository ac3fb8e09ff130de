package natives

import (
	"testing"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

func newTestEvaluation() (*vm.Evaluation, *vm.Heap) {
	heap := vm.NewHeap()
	frame := vm.NewFrame(nil, nil)
	return vm.NewEvaluation(nil, heap, frame), heap
}

func callNative(t *testing.T, table vm.Natives, fqn string, arity int, self vm.Id, args []vm.Id, e *vm.Evaluation) {
	t.Helper()
	fn, ok := table[vm.NativeKey(fqn, arity)]
	if !ok {
		t.Fatalf("no native registered for %s/%d", fqn, arity)
	}
	if err := fn(e, self, args); err != nil {
		t.Fatalf("unexpected error calling %s/%d: %v", fqn, arity, err)
	}
}

func TestNumber_Arithmetic(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	a := heap.AddInstance(ast.NumberFQN, 3.0)
	b := heap.AddInstance(ast.NumberFQN, 4.0)

	callNative(t, table, ast.NumberFQN+".+", 1, a, []vm.Id{b}, e)
	result, err := e.Top().PopResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, _ := heap.GetInstance(result)
	if n, _ := obj.AsNumber(); n != 7.0 {
		t.Errorf("expected 3 + 4 = 7, got %v", n)
	}
}

func TestNumber_DivisionAndModulo(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	a := heap.AddInstance(ast.NumberFQN, 10.0)
	b := heap.AddInstance(ast.NumberFQN, 3.0)

	callNative(t, table, ast.NumberFQN+"./", 1, a, []vm.Id{b}, e)
	result, _ := e.Top().PopResult()
	obj, _ := heap.GetInstance(result)
	n, _ := obj.AsNumber()
	if n < 3.3332 || n > 3.3334 {
		t.Errorf("expected roughly 3.3333, got %v", n)
	}

	callNative(t, table, ast.NumberFQN+".%", 1, a, []vm.Id{b}, e)
	result, _ = e.Top().PopResult()
	obj, _ = heap.GetInstance(result)
	n, _ = obj.AsNumber()
	if n != 1.0 {
		t.Errorf("expected 10 %% 3 = 1, got %v", n)
	}
}

func TestNumber_ComparisonPushesWellKnownBooleanIds(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	a := heap.AddInstance(ast.NumberFQN, 5.0)
	b := heap.AddInstance(ast.NumberFQN, 3.0)

	callNative(t, table, ast.NumberFQN+".>", 1, a, []vm.Id{b}, e)
	result, _ := e.Top().PopResult()
	if result != vm.TrueId {
		t.Errorf("expected 5 > 3 to push TrueId, got %v", result)
	}
}

func TestNumber_ToString_TrimsTrailingZeros(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	whole := heap.AddInstance(ast.NumberFQN, 4.0)
	callNative(t, table, ast.NumberFQN+".toString", 0, whole, nil, e)
	result, _ := e.Top().PopResult()
	obj, _ := heap.GetInstance(result)
	if s, _ := obj.AsString(); s != "4" {
		t.Errorf("expected whole number to render without a decimal point, got %q", s)
	}

	e2, heap2 := newTestEvaluation()
	fractional := heap2.AddInstance(ast.NumberFQN, 4.5)
	callNative(t, table, ast.NumberFQN+".toString", 0, fractional, nil, e2)
	result2, _ := e2.Top().PopResult()
	obj2, _ := heap2.GetInstance(result2)
	if s, _ := obj2.AsString(); s != "4.5" {
		t.Errorf("expected 4.5 to render trimmed of trailing zeros, got %q", s)
	}
}

func TestBoolean_AndOr(t *testing.T) {
	table := Register()
	e, _ := newTestEvaluation()

	callNative(t, table, ast.BooleanFQN+".&&", 1, vm.TrueId, []vm.Id{vm.FalseId}, e)
	result, _ := e.Top().PopResult()
	if result != vm.FalseId {
		t.Errorf("expected true && false to be FalseId, got %v", result)
	}

	callNative(t, table, ast.BooleanFQN+".||", 1, vm.FalseId, []vm.Id{vm.TrueId}, e)
	result, _ = e.Top().PopResult()
	if result != vm.TrueId {
		t.Errorf("expected false || true to be TrueId, got %v", result)
	}
}

func TestBoolean_Negate(t *testing.T) {
	table := Register()
	e, _ := newTestEvaluation()

	callNative(t, table, ast.BooleanFQN+".negate", 0, vm.TrueId, nil, e)
	result, _ := e.Top().PopResult()
	if result != vm.FalseId {
		t.Errorf("expected negate(true) to be FalseId, got %v", result)
	}
}

func TestString_ConcatenationAndCase(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	a := heap.AddInstance(ast.StringFQN, "hello, ")
	b := heap.AddInstance(ast.StringFQN, "world")

	callNative(t, table, ast.StringFQN+".+", 1, a, []vm.Id{b}, e)
	result, _ := e.Top().PopResult()
	obj, _ := heap.GetInstance(result)
	if s, _ := obj.AsString(); s != "hello, world" {
		t.Errorf("expected concatenation, got %q", s)
	}

	callNative(t, table, ast.StringFQN+".toUpperCase", 0, result, nil, e)
	upper, _ := e.Top().PopResult()
	upperObj, _ := heap.GetInstance(upper)
	if s, _ := upperObj.AsString(); s != "HELLO, WORLD" {
		t.Errorf("expected uppercased string, got %q", s)
	}
}

func TestList_AddSizeGet(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	list := heap.AddInstance(ast.ListFQN, []vm.Id{})
	item := heap.AddInstance(ast.NumberFQN, 1.0)

	callNative(t, table, ast.ListFQN+".add", 1, list, []vm.Id{item}, e)

	callNative(t, table, ast.ListFQN+".size", 0, list, nil, e)
	sizeId, _ := e.Top().PopResult()
	sizeObj, _ := heap.GetInstance(sizeId)
	if n, _ := sizeObj.AsNumber(); n != 1.0 {
		t.Errorf("expected size 1 after one add, got %v", n)
	}

	callNative(t, table, ast.ListFQN+".get", 1, list, []vm.Id{heap.AddInstance(ast.NumberFQN, 0.0)}, e)
	got, _ := e.Top().PopResult()
	if got != item {
		t.Errorf("expected get(0) to return the added item id, got %v", got)
	}
}

func TestObject_MessageNotUnderstood_RaisesException(t *testing.T) {
	table := Register()
	e, heap := newTestEvaluation()

	receiver := heap.AddInstance("wollok.example.Foo", nil)
	name := heap.AddInstance(ast.StringFQN, "bar")
	argsList := heap.AddInstance(ast.ListFQN, []vm.Id{})

	fn := table[vm.NativeKey(ast.ObjectFQN+"."+ast.MessageNotUnderstoodName, ast.MessageNotUnderstoodArity)]
	if fn == nil {
		t.Fatal("expected messageNotUnderstood to be registered")
	}
	err := fn(e, receiver, []vm.Id{name, argsList})
	if err == nil {
		t.Fatal("expected messageNotUnderstood to raise/propagate an exception")
	}
}
