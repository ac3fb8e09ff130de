package compiler

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// compileSelf: [LOAD(self)] (§4.1).
func compileSelf() []vm.Instruction {
	return []vm.Instruction{{Op: vm.OpLoad, Name: "self"}}
}

// compileReference: field target -> [LOAD(self), GET(name)]; module
// target -> [LOAD(fqn)]; otherwise -> [LOAD(name)] (§4.1).
func compileReference(env *ast.Environment, r *ast.Reference) []vm.Instruction {
	target := env.ResolveTarget(r)
	switch t := target.(type) {
	case *ast.Field:
		return []vm.Instruction{
			{Op: vm.OpLoad, Name: "self"},
			{Op: vm.OpGet, Name: t.Name},
		}
	case *ast.Class:
		return []vm.Instruction{{Op: vm.OpLoad, Name: env.FullyQualifiedName(t)}}
	case *ast.Singleton:
		return []vm.Instruction{{Op: vm.OpLoad, Name: env.FullyQualifiedName(t)}}
	default:
		return []vm.Instruction{{Op: vm.OpLoad, Name: r.Name}}
	}
}

// compileSend: [compile(receiver), compile(args)…, CALL(message, arity)]
// (§4.1).
func (c *Compiler) compileSend(env *ast.Environment, s *ast.Send) ([]vm.Instruction, error) {
	receiver, err := c.Compile(env, s.Receiver)
	if err != nil {
		return nil, err
	}
	args, err := c.compileMany(env, s.Args)
	if err != nil {
		return nil, err
	}
	out := append(receiver, args...)
	return append(out, vm.Instruction{Op: vm.OpCall, Message: s.Message, Arity: len(s.Args)}), nil
}

// compileNew: [compile(args)…, INSTANTIATE(fqn), INIT(argCount, fqn, true)]
// (§4.1).
func (c *Compiler) compileNew(env *ast.Environment, n *ast.New) ([]vm.Instruction, error) {
	args, err := c.compileMany(env, n.Args)
	if err != nil {
		return nil, err
	}
	fqn := env.FullyQualifiedName(n.Class)
	out := append(args, vm.Instruction{Op: vm.OpInstantiate, Module: fqn})
	return append(out, vm.Instruction{
		Op: vm.OpInit, Arity: len(n.Args), LookupStart: fqn, HasLookupStart: true, InitFields: true,
	}), nil
}
