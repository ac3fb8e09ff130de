package ast

// Self is the receiver reference in method/constructor bodies. Compiles
// to [LOAD(self)] (§4.1).
type Self struct{ base }

func NewSelf() *Self { return &Self{base: newBase()} }
func (*Self) isExpression() {}

// Reference names a local, a field, or a module. Target is resolved by
// the linker ahead of time: nil means an ordinary local/parameter,
// *Field means a field access on self, and *Class/*Singleton means a
// reference to a module by its fully qualified name (§4.1's Reference
// lowering rule).
type Reference struct {
	base
	Name   string
	Target Node
}

func NewReference(name string, target Node) *Reference {
	return &Reference{base: newBase(), Name: name, Target: target}
}
func (*Reference) isExpression() {}

// LiteralKind distinguishes the primitive literal shapes §4.1 lowers
// differently.
type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralBoolean
	LiteralNumber
	LiteralString
)

// Literal is a null/boolean/number/string constant.
type Literal struct {
	base
	Kind LiteralKind
	Bool bool
	Num  float64
	Str  string
}

func NewNullLiteral() *Literal    { return &Literal{base: newBase(), Kind: LiteralNull} }
func NewBoolLiteral(v bool) *Literal {
	return &Literal{base: newBase(), Kind: LiteralBoolean, Bool: v}
}
func NewNumberLiteral(v float64) *Literal {
	return &Literal{base: newBase(), Kind: LiteralNumber, Num: v}
}
func NewStringLiteral(v string) *Literal {
	return &Literal{base: newBase(), Kind: LiteralString, Str: v}
}
func (*Literal) isExpression() {}

// InlineSingleton is a literal `object ... {}` expression: an anonymous
// singleton instantiated on the spot, whose superclass constructor is
// invoked with SuperArgs (§4.1: "Literal singleton inline"). Singleton
// is the already-linked, already-registered (via
// Environment.AddAnonymousSingleton, so it is never bootstrapped)
// anonymous module this literal instantiates — an inline object literal
// is just sugar for a singleton declaration the linker hoists to the
// environment under a synthetic fully qualified name.
type InlineSingleton struct {
	base
	Singleton *Singleton
	SuperArgs []Expression
}

// NewInlineSingleton registers an anonymous singleton (superclass,
// fields, methods) under a synthetic fqn and returns the literal
// expression node that instantiates it.
func NewInlineSingleton(env *Environment, superclass *Class, superArgs []Expression, fields []*Field, methods []*Method) *InlineSingleton {
	n := &InlineSingleton{base: newBase(), SuperArgs: superArgs}
	fqn := "wollok.anonymous.Singleton#" + itoa64(n.id)
	singleton := NewSingleton(fqn, fqn, superclass)
	for _, f := range fields {
		singleton.AddField(f)
	}
	for _, m := range methods {
		singleton.AddMethod(m)
	}
	env.AddAnonymousSingleton(singleton)
	n.Singleton = singleton
	for _, a := range superArgs {
		link(n, a)
	}
	return n
}
func (*InlineSingleton) isExpression() {}

func itoa64(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// ClosureLiteral is a literal `{ ... }` block/object expression compiled
// via INSTANTIATE+INIT against an ordinary (non-inline-singleton) class,
// e.g. a Closure value (§4.1: "Literal closure/other object").
type ClosureLiteral struct {
	base
	Class *Class
	Args  []Expression
}

func NewClosureLiteral(class *Class, args []Expression) *ClosureLiteral {
	n := &ClosureLiteral{base: newBase(), Class: class, Args: args}
	for _, a := range args {
		link(n, a)
	}
	return n
}
func (*ClosureLiteral) isExpression() {}

// Send is a message send: receiver.message(args...).
type Send struct {
	base
	Receiver Expression
	Message  string
	Args     []Expression
}

func NewSend(receiver Expression, message string, args ...Expression) *Send {
	n := &Send{base: newBase(), Receiver: receiver, Message: message, Args: args}
	link(n, receiver)
	for _, a := range args {
		link(n, a)
	}
	return n
}
func (*Send) isExpression() {}

// Super is a super-call from within a method body. The enclosing method
// and class are found at compile time by walking Parent() pointers
// (§4.1's Super lowering rule), so this node only carries the arguments.
type Super struct {
	base
	Args []Expression
}

func NewSuper(args ...Expression) *Super {
	n := &Super{base: newBase(), Args: args}
	for _, a := range args {
		link(n, a)
	}
	return n
}
func (*Super) isExpression() {}

// New is a `new Class(args...)` instantiation.
type New struct {
	base
	Class *Class
	Args  []Expression
}

func NewNew(class *Class, args ...Expression) *New {
	n := &New{base: newBase(), Class: class, Args: args}
	for _, a := range args {
		link(n, a)
	}
	return n
}
func (*New) isExpression() {}

// If is a conditional expression/statement.
type If struct {
	base
	Condition Expression
	Then      *Body
	Else      *Body
}

func NewIf(condition Expression, then, els *Body) *If {
	n := &If{base: newBase(), Condition: condition, Then: then, Else: els}
	link(n, condition, then, els)
	return n
}
func (*If) isExpression() {}

// Throw raises a Language-level exception.
type Throw struct {
	base
	Arg Expression
}

func NewThrow(arg Expression) *Throw {
	n := &Throw{base: newBase(), Arg: arg}
	link(n, arg)
	return n
}
func (*Throw) isExpression() {}

// Catch is one `catch param : Type { body }` clause of a Try.
type Catch struct {
	base
	Parameter *Parameter
	Type      *Class
	Body      *Body
}

func NewCatch(param *Parameter, typ *Class, body *Body) *Catch {
	n := &Catch{base: newBase(), Parameter: param, Type: typ, Body: body}
	link(n, body)
	return n
}

// Try is a try/catch/always block.
type Try struct {
	base
	Body    *Body
	Catches []*Catch
	Always  *Body
}

func NewTry(body *Body, always *Body, catches ...*Catch) *Try {
	n := &Try{base: newBase(), Body: body, Catches: catches, Always: always}
	link(n, body, always)
	for _, c := range catches {
		link(n, c)
	}
	return n
}
func (*Try) isExpression() {}
