package natives

import (
	"strings"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

func registerString(natives vm.Natives) {
	fqn := ast.StringFQN

	natives[key(fqn+".+", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := stringArg(e, self)
		if err != nil {
			return err
		}
		b, err := stringArg(e, args[0])
		if err != nil {
			return err
		}
		pushString(e, a+b)
		return nil
	}
	natives[key(fqn+".length", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		s, err := stringArg(e, self)
		if err != nil {
			return err
		}
		pushNumber(e, float64(len(s)))
		return nil
	}
	natives[key(fqn+".toUpperCase", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		s, err := stringArg(e, self)
		if err != nil {
			return err
		}
		pushString(e, strings.ToUpper(s))
		return nil
	}
	natives[key(fqn+".toLowerCase", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		s, err := stringArg(e, self)
		if err != nil {
			return err
		}
		pushString(e, strings.ToLower(s))
		return nil
	}
	natives[key(fqn+".trim", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		s, err := stringArg(e, self)
		if err != nil {
			return err
		}
		pushString(e, strings.TrimSpace(s))
		return nil
	}
	natives[key(fqn+".==", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := stringArg(e, self)
		if err != nil {
			return err
		}
		b, err := stringArg(e, args[0])
		if err != nil {
			return err
		}
		pushBool(e, a == b)
		return nil
	}
	natives[key(fqn+".contains", 1)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		a, err := stringArg(e, self)
		if err != nil {
			return err
		}
		b, err := stringArg(e, args[0])
		if err != nil {
			return err
		}
		pushBool(e, strings.Contains(a, b))
		return nil
	}
	natives[key(fqn+".toString", 0)] = func(e *vm.Evaluation, self vm.Id, args []vm.Id) error {
		s, err := stringArg(e, self)
		if err != nil {
			return err
		}
		pushString(e, s)
		return nil
	}
}
