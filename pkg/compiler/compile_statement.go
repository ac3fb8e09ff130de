package compiler

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// compileBody concatenates the lowering of every sentence (§4.1, Body).
func (c *Compiler) compileBody(env *ast.Environment, body *ast.Body) ([]vm.Instruction, error) {
	var out []vm.Instruction
	for _, s := range body.Sentences {
		instrs, err := c.Compile(env, s)
		if err != nil {
			return nil, err
		}
		out = append(out, instrs...)
	}
	return out, nil
}

// compileVariable: [compile(value), STORE(name, false)] (§4.1).
func (c *Compiler) compileVariable(env *ast.Environment, v *ast.Variable) ([]vm.Instruction, error) {
	value, err := c.Compile(env, v.Value)
	if err != nil {
		return nil, err
	}
	return append(value, vm.Instruction{Op: vm.OpStore, Name: v.Name, Lookup: false}), nil
}

// compileReturn: [compile(value) or PUSH(void), INTERRUPT(return)] (§4.1).
func (c *Compiler) compileReturn(env *ast.Environment, r *ast.Return) ([]vm.Instruction, error) {
	var value []vm.Instruction
	if r.Value != nil {
		v, err := c.Compile(env, r.Value)
		if err != nil {
			return nil, err
		}
		value = v
	} else {
		value = []vm.Instruction{{Op: vm.OpPush, Value: vm.VoidId}}
	}
	return append(value, vm.Instruction{Op: vm.OpInterrupt, InterruptKind: vm.InterruptReturn}), nil
}

// compileAssignment: field target -> [LOAD(self), compile(value), SET(name)];
// otherwise -> [compile(value), STORE(name, true)] (§4.1).
func (c *Compiler) compileAssignment(env *ast.Environment, a *ast.Assignment) ([]vm.Instruction, error) {
	value, err := c.Compile(env, a.Value)
	if err != nil {
		return nil, err
	}
	if _, isField := env.ResolveTarget(a.Target).(*ast.Field); isField {
		out := []vm.Instruction{{Op: vm.OpLoad, Name: "self"}}
		out = append(out, value...)
		out = append(out, vm.Instruction{Op: vm.OpSet, Name: a.Target.Name})
		return out, nil
	}
	return append(value, vm.Instruction{Op: vm.OpStore, Name: a.Target.Name, Lookup: true}), nil
}

// compileIf: [compile(condition), IF_THEN_ELSE(compile(then), compile(else))]
// (§4.1).
func (c *Compiler) compileIf(env *ast.Environment, i *ast.If) ([]vm.Instruction, error) {
	cond, err := c.Compile(env, i.Condition)
	if err != nil {
		return nil, err
	}
	then, err := c.Compile(env, i.Then)
	if err != nil {
		return nil, err
	}
	els, err := c.Compile(env, i.Else)
	if err != nil {
		return nil, err
	}
	return append(cond, vm.Instruction{Op: vm.OpIfThenElse, Then: then, Else: els}), nil
}
