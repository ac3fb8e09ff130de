package main

import (
	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/natives"
)

// sampleEnvironment builds a small, fully linked Environment by hand.
// There is no parser or linker in this core (§1 Non-goals) — a real
// front end would produce this same shape from .wlk source, resolving
// every Reference.Target itself; here we wire targets directly.
//
// It declares:
//
//	class Bird {
//	  var energy = 100
//	  method fly() { energy = energy - 10 }
//	  method energy() { return energy }
//	}
//	class Pigeon inherits Bird {
//	  method fly() {
//	    super()
//	    return "cooing"
//	  }
//	}
//	object skyMonitor {
//	  var flights = 0
//	  method recordFlight() { flights = flights + 1 }
//	  method flights() { return flights }
//	}
//
// plus one top-level test and one describe block exercising field
// access, super-dispatch, arithmetic natives and singleton bootstrap end
// to end.
func sampleEnvironment() *ast.Environment {
	env := ast.NewEnvironment()
	natives.Bootstrap(env)
	object := mustClass(env, ast.ObjectFQN)

	energyField := ast.NewField("energy", ast.NewNumberLiteral(100), false)

	bird := ast.NewClass("wollok.example.Bird", "Bird", object)
	bird.AddField(energyField)
	bird.AddConstructor(ast.NewConstructor(nil, nil, ast.NewBody()))
	bird.AddMethod(ast.NewMethod("fly", nil, ast.NewBody(
		ast.NewAssignment(
			ast.NewReference("energy", energyField),
			ast.NewSend(ast.NewReference("energy", energyField), "-", ast.NewNumberLiteral(10)),
		),
	)))
	bird.AddMethod(ast.NewMethod("energy", nil, ast.NewBody(
		ast.NewReturn(ast.NewReference("energy", energyField)),
	)))
	env.AddClass(bird)

	pigeon := ast.NewClass("wollok.example.Pigeon", "Pigeon", bird)
	pigeon.AddConstructor(ast.NewConstructor(nil, &ast.BaseCall{CallsSuper: true}, ast.NewBody()))
	pigeon.AddMethod(ast.NewMethod("fly", nil, ast.NewBody(
		ast.NewSuper(),
		ast.NewReturn(ast.NewStringLiteral("cooing")),
	)))
	env.AddClass(pigeon)

	flightsField := ast.NewField("flights", ast.NewNumberLiteral(0), false)

	skyMonitor := ast.NewSingleton("wollok.example.skyMonitor", "skyMonitor", object)
	skyMonitor.AddField(flightsField)
	skyMonitor.AddMethod(ast.NewMethod("recordFlight", nil, ast.NewBody(
		ast.NewAssignment(
			ast.NewReference("flights", flightsField),
			ast.NewSend(ast.NewReference("flights", flightsField), "+", ast.NewNumberLiteral(1)),
		),
	)))
	skyMonitor.AddMethod(ast.NewMethod("flights", nil, ast.NewBody(
		ast.NewReturn(ast.NewReference("flights", flightsField)),
	)))
	env.AddSingleton(skyMonitor)

	env.AddTest(ast.NewTest("a pigeon coos and loses energy when it flies", ast.NewBody(
		ast.NewVariable("pigeon", ast.NewNew(pigeon)),
		ast.NewSend(ast.NewReference("pigeon", nil), "fly"),
	)))

	env.AddDescribe(ast.NewDescribe("skyMonitor", nil, nil,
		ast.NewTest("records a flight", ast.NewBody(
			ast.NewSend(ast.NewReference("skyMonitor", skyMonitor), "recordFlight"),
		)),
	))

	return env
}

func mustClass(env *ast.Environment, fqn string) *ast.Class {
	c, ok := env.ResolveClass(fqn)
	if !ok {
		panic("wollok: bootstrap did not register " + fqn)
	}
	return c
}
