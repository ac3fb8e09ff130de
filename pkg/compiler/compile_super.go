package compiler

import (
	"fmt"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// compileSuper lowers a `super(...)` call from within a method body. The
// enclosing method and its owning module are found by walking Parent()
// pointers rather than carried on the node itself, so the same super
// node always compiles the same way regardless of the receiver's actual
// runtime class (§4.1's Super lowering rule).
func (c *Compiler) compileSuper(env *ast.Environment, s *ast.Super) ([]vm.Instruction, error) {
	method, owner, err := enclosingMethod(env, s)
	if err != nil {
		return nil, err
	}

	self := []vm.Instruction{{Op: vm.OpLoad, Name: "self"}}
	args, err := c.compileMany(env, s.Args)
	if err != nil {
		return nil, err
	}
	out := append(self, args...)
	return append(out, vm.Instruction{
		Op: vm.OpCall, Message: method.Name, Arity: len(s.Args),
		LookupStart: owner, HasLookupStart: true,
	}), nil
}

// enclosingMethod walks up from n until it finds the *ast.Method that
// contains it and the fully qualified name of the class or singleton
// declaring that method.
func enclosingMethod(env *ast.Environment, n ast.Node) (*ast.Method, string, error) {
	var method *ast.Method
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if m, ok := cur.(*ast.Method); ok {
			method = m
			break
		}
	}
	if method == nil {
		return nil, "", fmt.Errorf("compiler: super used outside of a method body")
	}
	switch owner := method.Parent().(type) {
	case *ast.Class:
		return method, owner.FQN, nil
	case *ast.Singleton:
		return method, owner.FQN, nil
	default:
		return nil, "", fmt.Errorf("compiler: method has no enclosing class or singleton")
	}
}
