// Package ast defines the linked abstract syntax tree the compiler and
// virtual machine consume. Parsing and linking are external collaborators
// (the parser/linker is out of scope for this core); this package supplies
// the node shapes a linker would emit plus the query surface the compiler
// needs to walk them (see Environment).
package ast

import "sync/atomic"

var nextNodeID uint64

func freshNodeID() uint64 {
	return atomic.AddUint64(&nextNodeID, 1)
}

// Node is any element of the linked AST. Every node knows its own id
// (used, together with the Environment, as the compiler's memoization
// key) and its parent, set once at construction time by the node that
// contains it — mirroring an already-linked program.
type Node interface {
	NodeID() uint64
	Parent() Node
	setParent(Node)
}

// base is embedded by every concrete node and implements the bookkeeping
// half of Node.
type base struct {
	id     uint64
	parent Node
}

func newBase() base            { return base{id: freshNodeID()} }
func (b *base) NodeID() uint64 { return b.id }
func (b *base) Parent() Node   { return b.parent }
func (b *base) setParent(p Node) {
	b.parent = p
}

func link(parent Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.setParent(parent)
		}
	}
}

// Expression is any node lowered by Compile into a value-producing
// instruction sequence.
type Expression interface {
	Node
	isExpression()
}

// Sentence is any node lowered into a (possibly value-producing)
// instruction sequence at statement position — expressions are sentences
// too, per spec.md's grammar.
type Sentence interface {
	Node
}

// Body is a sequence of sentences, lowered as the concatenation of their
// individual lowerings (§4.1).
type Body struct {
	base
	Sentences []Sentence
}

func NewBody(sentences ...Sentence) *Body {
	b := &Body{base: newBase(), Sentences: sentences}
	for _, s := range sentences {
		link(b, s)
	}
	return b
}
