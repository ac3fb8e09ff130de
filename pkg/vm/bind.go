package vm

import "github.com/Aliandi/wollok-ts/pkg/ast"

// bindParameters binds actual argument ids to formal parameter names,
// handling the varargs case where the last parameter absorbs every
// trailing actual into a freshly allocated List (§4.3, §4.4).
func bindParameters(heap *Heap, params []*ast.Parameter, argIds []Id) map[string]Id {
	locals := map[string]Id{}
	if len(params) == 0 {
		return locals
	}
	last := params[len(params)-1]
	if !last.IsVararg {
		for i, p := range params {
			locals[p.Name] = argIds[i]
		}
		return locals
	}
	fixedCount := len(params) - 1
	for i := 0; i < fixedCount; i++ {
		locals[params[i].Name] = argIds[i]
	}
	var tail []Id
	if len(argIds) > fixedCount {
		tail = append(tail, argIds[fixedCount:]...)
	}
	listId := heap.AddInstance(ast.ListFQN, tail)
	locals[last.Name] = listId
	return locals
}
