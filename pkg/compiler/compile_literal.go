package compiler

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// compileLiteral lowers a primitive constant. Null/Boolean push one of
// the four well-known ids; Number/String allocate a fresh instance
// carrying the primitive payload (§4.1, "Literal primitive").
func compileLiteral(l *ast.Literal) []vm.Instruction {
	switch l.Kind {
	case ast.LiteralNull:
		return []vm.Instruction{{Op: vm.OpPush, Value: vm.NullId}}
	case ast.LiteralBoolean:
		if l.Bool {
			return []vm.Instruction{{Op: vm.OpPush, Value: vm.TrueId}}
		}
		return []vm.Instruction{{Op: vm.OpPush, Value: vm.FalseId}}
	case ast.LiteralNumber:
		return []vm.Instruction{{Op: vm.OpInstantiate, Module: ast.NumberFQN, InnerValue: l.Num, HasInnerValue: true}}
	case ast.LiteralString:
		return []vm.Instruction{{Op: vm.OpInstantiate, Module: ast.StringFQN, InnerValue: l.Str, HasInnerValue: true}}
	default:
		return []vm.Instruction{{Op: vm.OpPush, Value: vm.NullId}}
	}
}

// compileInlineSingleton lowers a literal `object ... {}` expression. The
// synthetic singleton contributes no constructor of its own: INIT is
// aimed straight at the superclass constructor matching SuperArgs'
// arity, and InitFields still runs across the singleton's own fields
// plus every inherited one (§4.1, "Literal singleton inline").
func (c *Compiler) compileInlineSingleton(env *ast.Environment, n *ast.InlineSingleton) ([]vm.Instruction, error) {
	args, err := c.compileMany(env, n.SuperArgs)
	if err != nil {
		return nil, err
	}
	fqn := env.FullyQualifiedName(n.Singleton)
	superFQN := n.Singleton.Superclass.FQN
	out := append(args, vm.Instruction{Op: vm.OpInstantiate, Module: fqn})
	return append(out, vm.Instruction{
		Op: vm.OpInit, Arity: len(n.SuperArgs), LookupStart: superFQN, HasLookupStart: true, InitFields: true,
	}), nil
}

// compileClosureLiteral lowers a literal `{ ... }` block/other-object
// expression the same way New does: instantiate then run the matching
// constructor (§4.1, "Literal closure/other object").
func (c *Compiler) compileClosureLiteral(env *ast.Environment, n *ast.ClosureLiteral) ([]vm.Instruction, error) {
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
