// Package compiler lowers a linked AST into the linear instruction
// sequences the virtual machine executes (§4.1). Compilation is
// referentially transparent and memoized per (environment, node): the
// same node always compiles to the same sequence, and instruction
// sequences are shared by reference across every frame and every cloned
// Evaluation that ends up executing them.
package compiler

import (
	"fmt"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

const debugCompiler = false

func debugPrintf(format string, args ...interface{}) {
	if debugCompiler {
		fmt.Printf(format, args...)
	}
}

type cacheKey struct {
	env    *ast.Environment
	nodeID uint64
}

// Compiler is a stateful compilation service, mirroring the teacher's
// NewCompiler()-returns-a-service convention: it owns the memoization
// cache so repeated dispatch to the same method body across many CALLs
// (and across cloned evaluations sharing the same environment) does not
// re-lower anything.
type Compiler struct {
	cache map[cacheKey][]vm.Instruction
}

func New() *Compiler {
	return &Compiler{cache: map[cacheKey][]vm.Instruction{}}
}

// Compile lowers node against env, memoizing on (env, node.NodeID()).
func (c *Compiler) Compile(env *ast.Environment, node ast.Node) ([]vm.Instruction, error) {
	if node == nil {
		return nil, nil
	}
	key := cacheKey{env: env, nodeID: node.NodeID()}
	if cached, ok := c.cache[key]; ok {
		debugPrintf("compiler: cache hit for node %d\n", node.NodeID())
		return cached, nil
	}
	instrs, err := c.lower(env, node)
	if err != nil {
		return nil, err
	}
	c.cache[key] = instrs
	return instrs, nil
}

// Bind returns a vm.CompileFunc closed over env, the shape the VM's
// CALL/INIT step handlers expect (see pkg/vm/compile_func.go).
func (c *Compiler) Bind(env *ast.Environment) vm.CompileFunc {
	return func(node ast.Node) ([]vm.Instruction, error) {
		return c.Compile(env, node)
	}
}

func (c *Compiler) lower(env *ast.Environment, node ast.Node) ([]vm.Instruction, error) {
	switch n := node.(type) {
	case *ast.Body:
		return c.compileBody(env, n)
	case *ast.Variable:
		return c.compileVariable(env, n)
	case *ast.Return:
		return c.compileReturn(env, n)
	case *ast.Assignment:
		return c.compileAssignment(env, n)
	case *ast.Self:
		return compileSelf(), nil
	case *ast.Reference:
		return compileReference(env, n), nil
	case *ast.Literal:
		return compileLiteral(n), nil
	case *ast.InlineSingleton:
		return c.compileInlineSingleton(env, n)
	case *ast.ClosureLiteral:
		return c.compileClosureLiteral(env, n)
	case *ast.Send:
		return c.compileSend(env, n)
	case *ast.Super:
		return c.compileSuper(env, n)
	case *ast.New:
		return c.compileNew(env, n)
	case *ast.If:
		return c.compileIf(env, n)
	case *ast.Throw:
		return c.compileThrow(env, n)
	case *ast.Try:
		return c.compileTry(env, n)
	default:
		return nil, fmt.Errorf("compiler: unsupported node type %T", node)
	}
}

func (c *Compiler) compileMany(env *ast.Environment, exprs []ast.Expression) ([]vm.Instruction, error) {
	var out []vm.Instruction
	for _, e := range exprs {
		instrs, err := c.Compile(env, e)
		if err != nil {
			return nil, err
		}
		out = append(out, instrs...)
	}
	return out, nil
}
