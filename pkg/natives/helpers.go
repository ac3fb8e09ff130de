package natives

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

func numberArg(e *vm.Evaluation, id vm.Id) (float64, error) {
	obj, err := e.Heap.GetInstance(id)
	if err != nil {
		return 0, err
	}
	n, ok := obj.AsNumber()
	if !ok {
		return 0, &wollokerrors.HostError{Msg: "expected a Number, got " + obj.Module}
	}
	return n, nil
}

func stringArg(e *vm.Evaluation, id vm.Id) (string, error) {
	obj, err := e.Heap.GetInstance(id)
	if err != nil {
		return "", err
	}
	s, ok := obj.AsString()
	if !ok {
		return "", &wollokerrors.HostError{Msg: "expected a String, got " + obj.Module}
	}
	return s, nil
}

func listArg(e *vm.Evaluation, id vm.Id) ([]vm.Id, error) {
	obj, err := e.Heap.GetInstance(id)
	if err != nil {
		return nil, err
	}
	list, ok := obj.AsList()
	if !ok {
		return nil, &wollokerrors.HostError{Msg: "expected a List, got " + obj.Module}
	}
	return list, nil
}

func boolId(b bool) vm.Id {
	if b {
		return vm.TrueId
	}
	return vm.FalseId
}

func pushNumber(e *vm.Evaluation, n float64) {
	e.PushResult(e.Heap.AddInstance(ast.NumberFQN, n))
}

func pushString(e *vm.Evaluation, s string) {
	e.PushResult(e.Heap.AddInstance(ast.StringFQN, s))
}

func pushBool(e *vm.Evaluation, b bool) {
	e.PushResult(boolId(b))
}

func pushList(e *vm.Evaluation, ids []vm.Id) {
	e.PushResult(e.Heap.AddInstance(ast.ListFQN, ids))
}
