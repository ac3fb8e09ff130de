// Package natives ships a reference implementation of the natives
// registry spec.md §6 treats as an external collaborator: a bootstrap
// subset of wollok.lang.Number/Boolean/String/List/Object primitives,
// wired up by fully qualified method identity, sufficient to exercise
// the compiler and virtual machine end to end without a package loader.
package natives

import "github.com/Aliandi/wollok-ts/pkg/vm"

// key mirrors vm.NativeKey's "fqn/arity" shape so every registration
// below reads as a plain method signature.
func key(fqn string, arity int) string {
	return vm.NativeKey(fqn, arity)
}

// Register builds the reference natives registry, one file per built-in
// module (number.go, boolean.go, string.go, list.go, object.go).
func Register() vm.Natives {
	natives := vm.Natives{}
	registerNumber(natives)
	registerBoolean(natives)
	registerString(natives)
	registerList(natives)
	registerObject(natives)
	return natives
}
