package ast

// Parameter is a formal parameter of a method or constructor. The last
// parameter of a member may be a vararg, absorbing all trailing actuals
// into a List (§4.3).
type Parameter struct {
	base
	Name     string
	IsVararg bool
}

func NewParameter(name string, isVararg bool) *Parameter {
	return &Parameter{base: newBase(), Name: name, IsVararg: isVararg}
}

// Field is an instance variable declared on a Class or Singleton.
// Initializer may be nil, in which case it defaults to a null literal.
type Field struct {
	base
	Name        string
	Initializer Expression
	Constant    bool
}

func NewField(name string, initializer Expression, constant bool) *Field {
	n := &Field{base: newBase(), Name: name, Initializer: initializer, Constant: constant}
	link(n, initializer)
	return n
}

// Member is anything with a name and an arity that participates in
// method/constructor lookup.
type Member interface {
	Node
	Arity() int
	IsVarargs() bool
}

// Method is a method declaration. Body is nil for natives, in which case
// NativeFQN names the entry the natives registry is expected to expose.
type Method struct {
	base
	Name      string
	Params    []*Parameter
	Body      *Body // nil when Native
	Native    bool
	NativeFQN string
}

func NewMethod(name string, params []*Parameter, body *Body) *Method {
	n := &Method{base: newBase(), Name: name, Params: params, Body: body}
	for _, p := range params {
		link(n, p)
	}
	link(n, body)
	return n
}

func NewNativeMethod(name string, params []*Parameter, fqn string) *Method {
	n := &Method{base: newBase(), Name: name, Params: params, Native: true, NativeFQN: fqn}
	for _, p := range params {
		link(n, p)
	}
	return n
}

func (m *Method) Arity() int { return len(m.Params) }
func (m *Method) IsVarargs() bool {
	return len(m.Params) > 0 && m.Params[len(m.Params)-1].IsVararg
}

// BaseCall is the (possibly implicit) super-constructor invocation a
// Constructor performs before running its own body (§4.4 step 2). A
// Constructor with a nil BaseCall makes an implicit, argument-less super
// call.
type BaseCall struct {
	Args       []Expression
	CallsSuper bool // true for `super(...)` (targets the superclass); false for `self(...)` (another constructor of the same class)
}

// Constructor is a constructor declaration.
type Constructor struct {
	base
	Params   []*Parameter
	BaseCall *BaseCall
	Body     *Body
}

func NewConstructor(params []*Parameter, baseCall *BaseCall, body *Body) *Constructor {
	n := &Constructor{base: newBase(), Params: params, BaseCall: baseCall, Body: body}
	for _, p := range params {
		link(n, p)
	}
	if baseCall != nil {
		for _, a := range baseCall.Args {
			link(n, a)
		}
	}
	link(n, body)
	return n
}

func (c *Constructor) Arity() int { return len(c.Params) }
func (c *Constructor) IsVarargs() bool {
	return len(c.Params) > 0 && c.Params[len(c.Params)-1].IsVararg
}
