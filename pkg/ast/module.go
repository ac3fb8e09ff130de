package ast

// Class is a class declaration. Superclass is nil only for the root
// `wollok.lang.Object`.
type Class struct {
	base
	FQN          string
	Name         string
	Superclass   *Class
	Fields       []*Field
	Methods      []*Method
	Constructors []*Constructor
}

func NewClass(fqn, name string, superclass *Class) *Class {
	c := &Class{base: newBase(), FQN: fqn, Name: name, Superclass: superclass}
	return c
}

func (c *Class) AddField(f *Field) {
	c.Fields = append(c.Fields, f)
	link(c, f)
}
func (c *Class) AddMethod(m *Method) {
	c.Methods = append(c.Methods, m)
	link(c, m)
}
func (c *Class) AddConstructor(ctor *Constructor) {
	c.Constructors = append(c.Constructors, ctor)
	link(c, ctor)
}

// Singleton is a named global object allocated once during evaluation
// bootstrap (§6, "Singleton" in the GLOSSARY).
type Singleton struct {
	base
	FQN        string
	Name       string
	Superclass *Class
	SuperArgs  []Expression
	Fields     []*Field
	Methods    []*Method
}

func NewSingleton(fqn, name string, superclass *Class, superArgs ...Expression) *Singleton {
	s := &Singleton{base: newBase(), FQN: fqn, Name: name, Superclass: superclass, SuperArgs: superArgs}
	for _, a := range superArgs {
		link(s, a)
	}
	return s
}

func (s *Singleton) AddField(f *Field) {
	s.Fields = append(s.Fields, f)
	link(s, f)
}
func (s *Singleton) AddMethod(m *Method) {
	s.Methods = append(s.Methods, m)
	link(s, m)
}

// Test is a single test body, either standalone or grouped under a
// Describe (a feature the distillation dropped — see SPEC_FULL.md).
type Test struct {
	base
	Name string
	Body *Body
}

func NewTest(name string, body *Body) *Test {
	n := &Test{base: newBase(), Name: name, Body: body}
	link(n, body)
	return n
}

// Describe groups tests under shared beforeEach/afterEach hooks.
type Describe struct {
	base
	Name       string
	BeforeEach *Body // may be nil
	AfterEach  *Body // may be nil
	Tests      []*Test
}

func NewDescribe(name string, beforeEach, afterEach *Body, tests ...*Test) *Describe {
	d := &Describe{base: newBase(), Name: name, BeforeEach: beforeEach, AfterEach: afterEach, Tests: tests}
	if beforeEach != nil {
		link(d, beforeEach)
	}
	if afterEach != nil {
		link(d, afterEach)
	}
	for _, t := range tests {
		link(d, t)
	}
	return d
}
