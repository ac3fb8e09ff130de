package ast

import "fmt"

// ObjectFQN, BooleanFQN, NumberFQN, StringFQN, ListFQN, and
// BadParameterExceptionFQN are the well-known module names §6 fixes as
// string constants.
const (
	ObjectFQN                 = "wollok.lang.Object"
	BooleanFQN                = "wollok.lang.Boolean"
	NumberFQN                 = "wollok.lang.Number"
	StringFQN                 = "wollok.lang.String"
	ListFQN                   = "wollok.lang.List"
	BadParameterExceptionFQN  = "wollok.lang.BadParameterException"
	ExceptionFQN              = "wollok.lang.Exception"
	MessageNotUnderstoodName  = "messageNotUnderstood"
	MessageNotUnderstoodArity = 2
)

// Environment is the fully linked, immutable program representation —
// the compilation and dispatch target (GLOSSARY). It is built once by an
// external linker (out of scope here, per spec.md §1) and then only ever
// read.
type Environment struct {
	classesByFQN    map[string]*Class
	singletonsByFQN map[string]*Singleton
	singletonOrder  []*Singleton // stable bootstrap order
	describes       []*Describe
	tests           []*Test // ungrouped, top-level tests
}

func NewEnvironment() *Environment {
	return &Environment{
		classesByFQN:    map[string]*Class{},
		singletonsByFQN: map[string]*Singleton{},
	}
}

func (e *Environment) AddClass(c *Class) { e.classesByFQN[c.FQN] = c }

// AddSingleton registers a named global singleton and schedules it for
// bootstrap initialization (§6 buildEvaluationFor).
func (e *Environment) AddSingleton(s *Singleton) {
	e.singletonsByFQN[s.FQN] = s
	e.singletonOrder = append(e.singletonOrder, s)
}

// AddAnonymousSingleton registers a singleton so it is resolvable by fqn
// (hierarchy/method/constructor lookup) without scheduling it for
// bootstrap: used for the synthetic modules literal `object {}`
// expressions instantiate on demand (§4.1, "Literal singleton inline").
func (e *Environment) AddAnonymousSingleton(s *Singleton) {
	e.singletonsByFQN[s.FQN] = s
}
func (e *Environment) AddDescribe(d *Describe) { e.describes = append(e.describes, d) }
func (e *Environment) AddTest(t *Test)         { e.tests = append(e.tests, t) }

func (e *Environment) Describes() []*Describe   { return e.describes }
func (e *Environment) Tests() []*Test           { return e.tests }
func (e *Environment) Singletons() []*Singleton { return e.singletonOrder }

// Resolve looks up a class or singleton by fully qualified name (§6).
func (e *Environment) Resolve(fqn string) (Node, bool) {
	if c, ok := e.classesByFQN[fqn]; ok {
		return c, true
	}
	if s, ok := e.singletonsByFQN[fqn]; ok {
		return s, true
	}
	return nil, false
}

// ResolveClass looks up a Class specifically (used by INIT/super-call
// resolution, which only ever targets classes).
func (e *Environment) ResolveClass(fqn string) (*Class, bool) {
	c, ok := e.classesByFQN[fqn]
	return c, ok
}

// ResolveTarget follows a Reference to its linked target (§6). The
// linker sets Reference.Target directly, so this is a thin accessor.
func (e *Environment) ResolveTarget(ref *Reference) Node {
	return ref.Target
}

// FullyQualifiedName returns the dotted path uniquely identifying a
// module (§6).
func (e *Environment) FullyQualifiedName(n Node) string {
	switch m := n.(type) {
	case *Class:
		return m.FQN
	case *Singleton:
		return m.FQN
	default:
		return ""
	}
}

// moduleView is the hierarchy-walking projection shared by Class and
// Singleton: every module has a superclass chain, its own fields, and
// its own methods, but only a Class has declared constructors.
type moduleView struct {
	fqn        string
	superclass *Class
	fields     []*Field
	methods    []*Method
}

func (e *Environment) viewOf(fqn string) (moduleView, bool) {
	if c, ok := e.classesByFQN[fqn]; ok {
		return moduleView{fqn: c.FQN, superclass: c.Superclass, fields: c.Fields, methods: c.Methods}, true
	}
	if s, ok := e.singletonsByFQN[fqn]; ok {
		return moduleView{fqn: s.FQN, superclass: s.Superclass, fields: s.Fields, methods: s.Methods}, true
	}
	return moduleView{}, false
}

// Hierarchy returns the module chain from fqn's own view up to the root
// class (§6: "from the class itself up to the root class").
func (e *Environment) Hierarchy(fqn string) []moduleView {
	var chain []moduleView
	view, ok := e.viewOf(fqn)
	if !ok {
		return nil
	}
	chain = append(chain, view)
	super := view.superclass
	for super != nil {
		chain = append(chain, moduleView{fqn: super.FQN, superclass: super.Superclass, fields: super.Fields, methods: super.Methods})
		super = super.Superclass
	}
	return chain
}

// Superclass returns the class immediately above the given class, or
// nil if class is the root (§6).
func (e *Environment) Superclass(class *Class) *Class { return class.Superclass }

// Inherits reports whether sub's hierarchy includes sup (§6).
func (e *Environment) Inherits(subFQN, supFQN string) bool {
	for _, v := range e.Hierarchy(subFQN) {
		if v.fqn == supFQN {
			return true
		}
	}
	return false
}

func arityMatches(m Member, arity int) bool {
	if m.IsVarargs() {
		return arity >= m.Arity()-1
	}
	return arity == m.Arity()
}

// MethodLookup walks the hierarchy from startFQN upward looking for a
// method named `name` whose arity matches (exact for fixed-arity,
// greater-or-equal on declared-params-minus-one for varargs) (§4.3, §6).
func (e *Environment) MethodLookup(name string, arity int, startFQN string) (*Method, string, bool) {
	for _, v := range e.Hierarchy(startFQN) {
		for _, m := range v.methods {
			if m.Name == name && arityMatches(m, arity) {
				return m, v.fqn, true
			}
		}
	}
	return nil, "", false
}

// MethodLookupAbove is MethodLookup starting one class above lookupStart
// in fqn's hierarchy — the super-call case (§4.3).
func (e *Environment) MethodLookupAbove(name string, arity int, fqn, lookupStart string) (*Method, string, bool) {
	chain := e.Hierarchy(fqn)
	idx := -1
	for i, v := range chain {
		if v.fqn == lookupStart {
			idx = i
			break
		}
	}
	if idx == -1 || idx+1 >= len(chain) {
		return nil, "", false
	}
	for _, v := range chain[idx+1:] {
		for _, m := range v.methods {
			if m.Name == name && arityMatches(m, arity) {
				return m, v.fqn, true
			}
		}
	}
	return nil, "", false
}

// ConstructorLookup finds a constructor of exactly (or, for varargs,
// at-least) arity declared on class (§6, §4.4). Constructors are not
// inherited the way methods are: only constructors declared on class
// itself are considered.
func (e *Environment) ConstructorLookup(arity int, class *Class) (*Constructor, bool) {
	for _, ctor := range class.Constructors {
		if arityMatches(ctor, arity) {
			return ctor, true
		}
	}
	return nil, false
}

// ConstructorLookupByFQN is ConstructorLookup taking a class fqn, used
// by INIT which only ever carries fully qualified names on the stack.
func (e *Environment) ConstructorLookupByFQN(arity int, fqn string) (*Constructor, *Class, bool) {
	class, ok := e.classesByFQN[fqn]
	if !ok {
		return nil, nil, false
	}
	ctor, ok := e.ConstructorLookup(arity, class)
	return ctor, class, ok
}

// FieldsInInitOrder returns every field declared anywhere in fqn's
// hierarchy, ordered superclass-first with declaration order preserved
// within each class (§4.4 step 1).
func (e *Environment) FieldsInInitOrder(fqn string) []*Field {
	chain := e.Hierarchy(fqn)
	var fields []*Field
	for i := len(chain) - 1; i >= 0; i-- {
		fields = append(fields, chain[i].fields...)
	}
	return fields
}

// ParentOf returns a node's linked parent (§6).
func (e *Environment) ParentOf(n Node) Node { return n.Parent() }

// FirstAncestorOfKind walks Parent() pointers until `match` returns true,
// or returns nil if the root is reached without a match (§6). `match` is
// supplied by the caller since Go has no reflection-free "kind" enum for
// an open node set.
func (e *Environment) FirstAncestorOfKind(n Node, match func(Node) bool) Node {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if match(cur) {
			return cur
		}
	}
	return nil
}

// Descendants returns every node reachable from n's own child pointers,
// pre-order (§6). This core only needs it for tooling/diagnostics, so a
// best-effort walk over the shapes this package defines is enough.
func (e *Environment) Descendants(n Node) []Node {
	var out []Node
	var visit func(Node)
	visit = func(cur Node) {
		if cur == nil {
			return
		}
		out = append(out, cur)
		for _, child := range children(cur) {
			visit(child)
		}
	}
	for _, child := range children(n) {
		visit(child)
	}
	return out
}

func children(n Node) []Node {
	switch v := n.(type) {
	case *Body:
		out := make([]Node, len(v.Sentences))
		for i, s := range v.Sentences {
			out[i] = s
		}
		return out
	case *Variable:
		return []Node{v.Value}
	case *Return:
		if v.Value == nil {
			return nil
		}
		return []Node{v.Value}
	case *Assignment:
		return []Node{v.Target, v.Value}
	case *Send:
		out := []Node{v.Receiver}
		for _, a := range v.Args {
			out = append(out, a)
		}
		return out
	case *Super:
		out := make([]Node, len(v.Args))
		for i, a := range v.Args {
			out[i] = a
		}
		return out
	case *New:
		out := make([]Node, len(v.Args))
		for i, a := range v.Args {
			out[i] = a
		}
		return out
	case *If:
		return []Node{v.Condition, v.Then, v.Else}
	case *Throw:
		return []Node{v.Arg}
	case *Try:
		out := []Node{v.Body, v.Always}
		for _, c := range v.Catches {
			out = append(out, c)
		}
		return out
	case *Catch:
		return []Node{v.Body}
	case *Method:
		if v.Body == nil {
			return nil
		}
		return []Node{v.Body}
	case *Constructor:
		return []Node{v.Body}
	default:
		return nil
	}
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment{classes=%d singletons=%d}", len(e.classesByFQN), len(e.singletonsByFQN))
}
