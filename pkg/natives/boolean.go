package natives

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

func registerBoolean(natives vm.Natives) {
	fqn := ast.BooleanFQN

	boolArg := func(e *vm.Evaluation, id vm.Id) (bool, error) {
		obj, err := e.Heap.GetInstance(id)
		if err != nil {
			return false, err
		}
		b, _ := obj.AsBoolean()
		return b, nil
	}

	natives[key(fqn+".&&", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := boolArg(e, self)
		if err != nil {
			return err
		}
		b, err := boolArg(e, args[0])
		if err != nil {
			return err
		}
		pushBool(e, a && b)
		return nil
	}
	natives[key(fqn+".||", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := boolArg(e, self)
		if err != nil {
			return err
		}
		b, err := boolArg(e, args[0])
		if err != nil {
			return err
		}
		pushBool(e, a || b)
		return nil
	}
	natives[key(fqn+".negate", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := boolArg(e, self)
		if err != nil {
			return err
		}
		pushBool(e, !a)
		return nil
	}
	natives[key(fqn+".toString", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := boolArg(e, self)
		if err != nil {
			return err
		}
		if a {
			pushString(e, "true")
		} else {
			pushString(e, "false")
		}
		return nil
	}
}
