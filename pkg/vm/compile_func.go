package vm

import "github.com/Aliandi/wollok-ts/pkg/ast"

// CompileFunc lowers an AST node into an instruction sequence. CALL and
// INIT compile method/constructor bodies lazily, on first dispatch, so
// the VM depends on this function type rather than importing the
// compiler package directly (which itself depends on vm for the
// Instruction type — a direct import would cycle). The driver wires the
// two together by passing the closure compiler.Compiler.Bind returns for
// its environment.
type CompileFunc func(node ast.Node) ([]Instruction, error)
