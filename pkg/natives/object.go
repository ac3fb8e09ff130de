package natives

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// registerObject wires wollok.lang.Object's own native surface: the
// default messageNotUnderstood, invoked by CALL when a receiver's
// hierarchy declares no override (§4.3, "CALL fallback").
func registerObject(natives vm.Natives) {
	fqn := ast.ObjectFQN

	natives[key(fqn+"."+ast.MessageNotUnderstoodName, ast.MessageNotUnderstoodArity)] =
		func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
			name, err := stringArg(e, args[0])
			if err != nil {
				return err
			}
			selfObj, err := e.Heap.GetInstance(self)
			if err != nil {
				return err
			}
			excId, err := e.NewException(ast.ExceptionFQN, selfObj.Module+" does not understand "+name)
			if err != nil {
				return err
			}
			return e.RaiseException(excId)
		}

	natives[key(fqn+".==", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		pushBool(e, self == args[0])
		return nil
	}
	natives[key(fqn+".identity", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		pushString(e, string(self))
		return nil
	}
	natives[key(fqn+".toString", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		obj, err := e.Heap.GetInstance(self)
		if err != nil {
			return err
		}
		pushString(e, obj.Module)
		return nil
	}
}
