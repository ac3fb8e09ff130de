package natives

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// registerList wires the List primitives named in SPEC_FULL.md's
// supplemented-features section. add/remove/get/size/isEmpty/contains
// only — forEach and other higher-order iteration natives would need to
// re-enter method dispatch from inside a NativeFunc, which the registry
// signature (self, args) → void deliberately does not expose (§6); those
// stay with the external native registry this core defers to.
func registerList(natives vm.Natives) {
	fqn := ast.ListFQN

	natives[key(fqn+".add", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		obj, err := e.Heap.GetInstance(self)
		if err != nil {
			return err
		}
		list, ok := obj.AsList()
		if !ok {
			return &wollokerrors.HostError{Msg: "expected a List, got " + obj.Module}
		}
		obj.InnerValue = append(list, args[0])
		e.PushResult(vm.VoidId)
		return nil
	}
	natives[key(fqn+".remove", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		obj, err := e.Heap.GetInstance(self)
		if err != nil {
			return err
		}
		list, ok := obj.AsList()
		if !ok {
			return &wollokerrors.HostError{Msg: "expected a List, got " + obj.Module}
		}
		out := list[:0]
		for _, id := range list {
			if id != args[0] {
				out = append(out, id)
			}
		}
		obj.InnerValue = out
		e.PushResult(vm.VoidId)
		return nil
	}
	natives[key(fqn+".size", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		list, err := listArg(e, self)
		if err != nil {
			return err
		}
		pushNumber(e, float64(len(list)))
		return nil
	}
	natives[key(fqn+".isEmpty", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		list, err := listArg(e, self)
		if err != nil {
			return err
		}
		pushBool(e, len(list) == 0)
		return nil
	}
	natives[key(fqn+".get", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		list, err := listArg(e, self)
		if err != nil {
			return err
		}
		idx, err := numberArg(e, args[0])
		if err != nil {
			return err
		}
		i := int(idx)
		if i < 0 || i >= len(list) {
			return &wollokerrors.HostError{Msg: "list index out of bounds"}
		}
		e.PushResult(list[i])
		return nil
	}
	natives[key(fqn+".contains", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		list, err := listArg(e, self)
		if err != nil {
			return err
		}
		found := false
		for _, id := range list {
			if id == args[0] {
				found = true
				break
			}
		}
		pushBool(e, found)
		return nil
	}
	natives[key(fqn+".toString", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		list, err := listArg(e, self)
		if err != nil {
			return err
		}
		pushString(e, listToString(list))
		return nil
	}
}

func listToString(list []vm.Id) string {
	out := "["
	for i, id := range list {
		if i > 0 {
			out += ", "
		}
		out += string(id)
	}
	return out + "]"
}
