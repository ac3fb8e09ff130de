package ast

// Variable declares (and initializes) a local: `var x = value`.
type Variable struct {
	base
	Name  string
	Value Expression
}

func NewVariable(name string, value Expression) *Variable {
	n := &Variable{base: newBase(), Name: name, Value: value}
	link(n, value)
	return n
}

// Return unwinds the current method/constructor frame with a value
// (defaulting to void when Value is nil, per §4.1).
type Return struct {
	base
	Value Expression // may be nil
}

func NewReturn(value Expression) *Return {
	n := &Return{base: newBase(), Value: value}
	link(n, value)
	return n
}

// Assignment stores into a field (when Target resolves to one) or a
// local/outer local (otherwise), per §4.1's Assignment lowering rule.
type Assignment struct {
	base
	Target *Reference
	Value  Expression
}

func NewAssignment(target *Reference, value Expression) *Assignment {
	n := &Assignment{base: newBase(), Target: target, Value: value}
	link(n, target, value)
	return n
}
