package natives

import "github.com/Aliandi/wollok-ts/pkg/ast"

// Bootstrap registers the well-known module hierarchy every evaluation
// needs regardless of the user program: wollok.lang.Object at the root,
// Boolean/Number/String/List/Exception/BadParameterException beneath it,
// each declaring exactly the native methods this registry implements.
// A real package loader (§1, out of scope) would parse these from
// source; this core needs them present so CALL's hierarchy walk and
// method lookup have somewhere to land.
func Bootstrap(env *ast.Environment) {
	object := ast.NewClass(ast.ObjectFQN, "Object", nil)
	object.AddConstructor(ast.NewConstructor(nil, nil, ast.NewBody()))
	object.AddMethod(nativeMethod(ast.MessageNotUnderstoodName, 2, ast.ObjectFQN))
	object.AddMethod(nativeMethod("==", 1, ast.ObjectFQN))
	object.AddMethod(nativeMethod("identity", 0, ast.ObjectFQN))
	object.AddMethod(nativeMethod("toString", 0, ast.ObjectFQN))
	env.AddClass(object)

	boolean := ast.NewClass(ast.BooleanFQN, "Boolean", object)
	for _, m := range []struct {
		name  string
		arity int
	}{{"&&", 1}, {"||", 1}, {"negate", 0}, {"toString", 0}} {
		boolean.AddMethod(nativeMethod(m.name, m.arity, ast.BooleanFQN))
	}
	env.AddClass(boolean)

	number := ast.NewClass(ast.NumberFQN, "Number", object)
	for _, m := range []struct {
		name  string
		arity int
	}{
		{"+", 1}, {"-", 1}, {"*", 1}, {"/", 1}, {"%", 1},
		{">", 1}, {"<", 1}, {">=", 1}, {"<=", 1}, {"==", 1},
		{"negated", 0}, {"abs", 0}, {"toString", 0},
	} {
		number.AddMethod(nativeMethod(m.name, m.arity, ast.NumberFQN))
	}
	env.AddClass(number)

	str := ast.NewClass(ast.StringFQN, "String", object)
	for _, m := range []struct {
		name  string
		arity int
	}{
		{"+", 1}, {"length", 0}, {"toUpperCase", 0}, {"toLowerCase", 0},
		{"trim", 0}, {"==", 1}, {"contains", 1}, {"toString", 0},
	} {
		str.AddMethod(nativeMethod(m.name, m.arity, ast.StringFQN))
	}
	env.AddClass(str)

	list := ast.NewClass(ast.ListFQN, "List", object)
	for _, m := range []struct {
		name  string
		arity int
	}{
		{"add", 1}, {"remove", 1}, {"size", 0}, {"isEmpty", 0},
		{"get", 1}, {"contains", 1}, {"toString", 0},
	} {
		list.AddMethod(nativeMethod(m.name, m.arity, ast.ListFQN))
	}
	env.AddClass(list)

	exception := ast.NewClass(ast.ExceptionFQN, "Exception", object)
	exception.AddField(ast.NewField("message", ast.NewStringLiteral(""), false))
	exception.AddConstructor(ast.NewConstructor(nil, nil, ast.NewBody()))
	env.AddClass(exception)

	badParameter := ast.NewClass(ast.BadParameterExceptionFQN, "BadParameterException", exception)
	badParameter.AddConstructor(ast.NewConstructor(nil, &ast.BaseCall{CallsSuper: true}, ast.NewBody()))
	env.AddClass(badParameter)
}

func nativeMethod(name string, arity int, moduleFQN string) *ast.Method {
	params := make([]*ast.Parameter, arity)
	for i := range params {
		params[i] = ast.NewParameter(paramName(i), false)
	}
	return ast.NewNativeMethod(name, params, moduleFQN+"."+name)
}

func paramName(i int) string {
	return string(rune('a' + i))
}
