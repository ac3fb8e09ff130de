package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/natives"
)

func newTestEnvironment(t *testing.T) *ast.Environment {
	t.Helper()
	env := ast.NewEnvironment()
	natives.Bootstrap(env)
	return env
}

func objectClass(t *testing.T, env *ast.Environment) *ast.Class {
	t.Helper()
	c, ok := env.ResolveClass(ast.ObjectFQN)
	require.True(t, ok)
	return c
}

func TestDriver_Run_ArithmeticLiteral(t *testing.T) {
	env := newTestEnvironment(t)
	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	body := ast.NewBody(
		ast.NewSend(ast.NewNumberLiteral(3), "+", ast.NewNumberLiteral(4)),
	)
	result, err := d.Run(evaluation, body)
	require.NoError(t, err)
	n, ok := result.AsNumber()
	require.True(t, ok)
	require.Equal(t, 7.0, n)
}

func TestDriver_Run_FieldAccessAndAssignment(t *testing.T) {
	env := newTestEnvironment(t)
	object := objectClass(t, env)

	energy := ast.NewField("energy", ast.NewNumberLiteral(100), false)
	bird := ast.NewClass("wollok.example.Bird", "Bird", object)
	bird.AddField(energy)
	bird.AddConstructor(ast.NewConstructor(nil, nil, ast.NewBody()))
	bird.AddMethod(ast.NewMethod("fly", nil, ast.NewBody(
		ast.NewAssignment(
			ast.NewReference("energy", energy),
			ast.NewSend(ast.NewReference("energy", energy), "-", ast.NewNumberLiteral(10)),
		),
	)))
	bird.AddMethod(ast.NewMethod("energy", nil, ast.NewBody(
		ast.NewReturn(ast.NewReference("energy", energy)),
	)))
	env.AddClass(bird)

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	body := ast.NewBody(
		ast.NewVariable("b", ast.NewNew(bird)),
		ast.NewSend(ast.NewReference("b", nil), "fly"),
		ast.NewSend(ast.NewReference("b", nil), "energy"),
	)
	result, err := d.Run(evaluation, body)
	require.NoError(t, err)
	n, ok := result.AsNumber()
	require.True(t, ok)
	require.Equal(t, 90.0, n)
}

func TestDriver_Run_SuperDispatch(t *testing.T) {
	env := newTestEnvironment(t)
	object := objectClass(t, env)

	base := ast.NewClass("wollok.example.Bird", "Bird", object)
	base.AddConstructor(ast.NewConstructor(nil, nil, ast.NewBody()))
	base.AddMethod(ast.NewMethod("fly", nil, ast.NewBody(
		ast.NewReturn(ast.NewStringLiteral("flapping")),
	)))
	env.AddClass(base)

	sub := ast.NewClass("wollok.example.Pigeon", "Pigeon", base)
	sub.AddConstructor(ast.NewConstructor(nil, &ast.BaseCall{CallsSuper: true}, ast.NewBody()))
	sub.AddMethod(ast.NewMethod("fly", nil, ast.NewBody(
		ast.NewReturn(ast.NewSuper()),
	)))
	env.AddClass(sub)

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	body := ast.NewBody(
		ast.NewVariable("p", ast.NewNew(sub)),
		ast.NewSend(ast.NewReference("p", nil), "fly"),
	)
	result, err := d.Run(evaluation, body)
	require.NoError(t, err)
	s, ok := result.AsString()
	require.True(t, ok)
	require.Equal(t, "flapping", s)
}

func TestDriver_Run_TryCatchAlways(t *testing.T) {
	env := newTestEnvironment(t)

	exceptionField := ast.NewParameter("e", false)
	exceptionClass, ok := env.ResolveClass(ast.ExceptionFQN)
	require.True(t, ok)

	body := ast.NewBody(
		ast.NewVariable("log", ast.NewStringLiteral("")),
		ast.NewTry(
			ast.NewBody(ast.NewThrow(ast.NewNew(exceptionClass))),
			ast.NewBody(
				ast.NewAssignment(
					ast.NewReference("log", nil),
					ast.NewSend(ast.NewReference("log", nil), "+", ast.NewStringLiteral("always")),
				),
			),
			ast.NewCatch(exceptionField, exceptionClass, ast.NewBody(
				ast.NewAssignment(
					ast.NewReference("log", nil),
					ast.NewSend(ast.NewReference("log", nil), "+", ast.NewStringLiteral("caught")),
				),
			)),
		),
		ast.NewReference("log", nil),
	)

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	result, err := d.Run(evaluation, body)
	require.NoError(t, err)
	s, ok := result.AsString()
	require.True(t, ok)
	require.Equal(t, "caughtalways", s)
}

func TestDriver_Run_UnhandledExceptionSurfacesAsLanguageError(t *testing.T) {
	env := newTestEnvironment(t)
	exceptionClass, ok := env.ResolveClass(ast.ExceptionFQN)
	require.True(t, ok)

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	body := ast.NewBody(ast.NewThrow(ast.NewNew(exceptionClass)))
	_, err = d.Run(evaluation, body)
	require.Error(t, err)
}

func TestDriver_Run_MessageNotUnderstoodRaisesException(t *testing.T) {
	env := newTestEnvironment(t)
	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	body := ast.NewBody(ast.NewSend(ast.NewNumberLiteral(1), "nonexistentMessage"))
	_, err = d.Run(evaluation, body)
	require.Error(t, err)
}

func TestDriver_BuildEvaluationFor_BootstrapsSingletons(t *testing.T) {
	env := newTestEnvironment(t)
	object := objectClass(t, env)

	flights := ast.NewField("flights", ast.NewNumberLiteral(0), false)
	skyMonitor := ast.NewSingleton("wollok.example.skyMonitor", "skyMonitor", object)
	skyMonitor.AddField(flights)
	skyMonitor.AddMethod(ast.NewMethod("flights", nil, ast.NewBody(
		ast.NewReturn(ast.NewReference("flights", flights)),
	)))
	env.AddSingleton(skyMonitor)

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	body := ast.NewBody(ast.NewSend(ast.NewReference("skyMonitor", skyMonitor), "flights"))
	result, err := d.Run(evaluation, body)
	require.NoError(t, err)
	n, ok := result.AsNumber()
	require.True(t, ok)
	require.Equal(t, 0.0, n)
}

func TestDriver_RunTests_ClonesIsolatePerTest(t *testing.T) {
	env := newTestEnvironment(t)
	object := objectClass(t, env)

	counter := ast.NewField("count", ast.NewNumberLiteral(0), false)
	singleton := ast.NewSingleton("wollok.example.counter", "counter", object)
	singleton.AddField(counter)
	singleton.AddMethod(ast.NewMethod("increment", nil, ast.NewBody(
		ast.NewAssignment(
			ast.NewReference("count", counter),
			ast.NewSend(ast.NewReference("count", counter), "+", ast.NewNumberLiteral(1)),
		),
	)))
	singleton.AddMethod(ast.NewMethod("count", nil, ast.NewBody(
		ast.NewReturn(ast.NewReference("count", counter)),
	)))
	env.AddSingleton(singleton)

	env.AddTest(ast.NewTest("first test increments once", ast.NewBody(
		ast.NewSend(ast.NewReference("counter", singleton), "increment"),
	)))
	env.AddTest(ast.NewTest("second test starts from the same bootstrap state", ast.NewBody(
		ast.NewSend(ast.NewReference("counter", singleton), "increment"),
	)))

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	results := d.RunTests(evaluation, env)
	require.Len(t, results, 2)
	for _, r := range results {
		require.True(t, r.Passed(), "expected %q to pass, got %v", r.Name, r.Err)
	}

	original, err := d.Run(evaluation, ast.NewBody(ast.NewSend(ast.NewReference("counter", singleton), "count")))
	require.NoError(t, err)
	n, ok := original.AsNumber()
	require.True(t, ok)
	require.Equal(t, 0.0, n, "tests must run on clones, leaving the bootstrap evaluation's counter at 0")
}

func TestDriver_RunTests_DescribeHooksRunAroundEachTest(t *testing.T) {
	env := newTestEnvironment(t)
	object := objectClass(t, env)

	exceptionClass, ok := env.ResolveClass(ast.ExceptionFQN)
	require.True(t, ok)

	greeting := ast.NewField("greeting", ast.NewStringLiteral(""), false)
	singleton := ast.NewSingleton("wollok.example.state", "state", object)
	singleton.AddField(greeting)
	singleton.AddMethod(ast.NewMethod("greet", nil, ast.NewBody(ast.NewAssignment(
		ast.NewReference("greeting", greeting),
		ast.NewStringLiteral("hi"),
	))))
	singleton.AddMethod(ast.NewMethod("greeting", nil, ast.NewBody(
		ast.NewReturn(ast.NewReference("greeting", greeting)),
	)))
	env.AddSingleton(singleton)

	before := ast.NewBody(ast.NewSend(ast.NewReference("state", singleton), "greet"))
	env.AddDescribe(ast.NewDescribe("state", before, nil,
		ast.NewTest("greeting was set by beforeEach", ast.NewBody(
			ast.NewIf(
				ast.NewSend(
					ast.NewSend(ast.NewReference("state", singleton), "greeting"),
					"==",
					ast.NewStringLiteral("hi"),
				),
				ast.NewBody(),
				ast.NewBody(ast.NewThrow(ast.NewNew(exceptionClass))),
			),
		)),
	))

	d := New(natives.Register(), 0)
	evaluation, err := d.BuildEvaluationFor(env)
	require.NoError(t, err)

	results := d.RunTests(evaluation, env)
	require.Len(t, results, 1)
	require.Equal(t, "state", results[0].Describe)
	require.True(t, results[0].Passed(), "expected the describe-grouped test to pass, got %v", results[0].Err)
}
