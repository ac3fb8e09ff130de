package compiler

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// compileThrow: [compile(arg), INTERRUPT(exception)] (§4.1).
func (c *Compiler) compileThrow(env *ast.Environment, t *ast.Throw) ([]vm.Instruction, error) {
	arg, err := c.Compile(env, t.Arg)
	if err != nil {
		return nil, err
	}
	return append(arg, vm.Instruction{Op: vm.OpInterrupt, InterruptKind: vm.InterruptException}), nil
}

// compileTry lowers a try/catch/always block to a single TRY_CATCH_ALWAYS
// instruction carrying three independently-lowered instruction bodies
// (§4.1, §4.5). The catch body is a type-guarded chain: each clause tests
// INHERITS against the already-bound `<exception>` local and jumps past
// its own handler when the guard fails, falling through to the next
// clause (or, if none match, to the implicit rethrow TRY_CATCH_ALWAYS
// appends itself).
func (c *Compiler) compileTry(env *ast.Environment, t *ast.Try) ([]vm.Instruction, error) {
	body, err := c.compileBody(env, t.Body)
	if err != nil {
		return nil, err
	}
	always, err := c.compileBody(env, t.Always)
	if err != nil {
		return nil, err
	}
	catch, err := c.compileCatchChain(env, t.Catches)
	if err != nil {
		return nil, err
	}
	return []vm.Instruction{{
		Op:        vm.OpTryCatchAlways,
		TryBody:   body,
		TryCatch:  catch,
		TryAlways: always,
	}}, nil
}

func (c *Compiler) compileCatchChain(env *ast.Environment, catches []*ast.Catch) ([]vm.Instruction, error) {
	var out []vm.Instruction
	for _, catch := range catches {
		handler, err := c.compileCatchHandler(env, catch)
		if err != nil {
			return nil, err
		}
		out = append(out,
			vm.Instruction{Op: vm.OpLoad, Name: "<exception>"},
			vm.Instruction{Op: vm.OpInherits, Module: catch.Type.FQN},
			vm.Instruction{Op: vm.OpConditionalJump, Offset: len(handler)},
		)
		out = append(out, handler...)
	}
	return out, nil
}

func (c *Compiler) compileCatchHandler(env *ast.Environment, catch *ast.Catch) ([]vm.Instruction, error) {
	body, err := c.compileBody(env, catch.Body)
	if err != nil {
		return nil, err
	}
	out := []vm.Instruction{
		{Op: vm.OpLoad, Name: "<exception>"},
		{Op: vm.OpStore, Name: catch.Parameter.Name, Lookup: false},
		{Op: vm.OpPush, Value: vm.VoidId},
	}
	out = append(out, body...)
	out = append(out, vm.Instruction{Op: vm.OpInterrupt, InterruptKind: vm.InterruptResult})
	return out, nil
}
