package vm

// OpCode identifies an Instruction's variant (§4.1).
type OpCode uint8

const (
	OpLoad OpCode = iota
	OpStore
	OpPush
	OpGet
	OpSet
	OpSwap
	OpInstantiate
	OpInherits
	OpConditionalJump
	OpCall
	OpInit
	OpIfThenElse
	OpTryCatchAlways
	OpInterrupt
	OpResumeInterruption
)

func (op OpCode) String() string {
	switch op {
	case OpLoad:
		return "LOAD"
	case OpStore:
		return "STORE"
	case OpPush:
		return "PUSH"
	case OpGet:
		return "GET"
	case OpSet:
		return "SET"
	case OpSwap:
		return "SWAP"
	case OpInstantiate:
		return "INSTANTIATE"
	case OpInherits:
		return "INHERITS"
	case OpConditionalJump:
		return "CONDITIONAL_JUMP"
	case OpCall:
		return "CALL"
	case OpInit:
		return "INIT"
	case OpIfThenElse:
		return "IF_THEN_ELSE"
	case OpTryCatchAlways:
		return "TRY_CATCH_ALWAYS"
	case OpInterrupt:
		return "INTERRUPT"
	case OpResumeInterruption:
		return "RESUME_INTERRUPTION"
	default:
		return "UNKNOWN"
	}
}

// Instruction is a tagged variant, one of the kinds enumerated in §4.1.
// A single struct (rather than an interface per opcode) keeps the
// instruction stream a flat, cheaply-shared []Instruction slice — the
// compiler emits it once per (environment, node) and every clone of an
// Evaluation shares the same backing arrays (§5, §9).
type Instruction struct {
	Op OpCode

	// LOAD/STORE/GET/SET
	Name string
	// STORE only: whether to assign in an outer frame that already
	// binds Name, falling back to the current frame otherwise.
	Lookup bool

	// PUSH: a literal id (always one of the four well-known ids or an
	// id already known to the compiler, e.g. from bootstrap).
	Value Id

	// INSTANTIATE/INHERITS: target module fqn.
	Module string
	// INSTANTIATE: optional primitive payload.
	InnerValue    interface{}
	HasInnerValue bool

	// CONDITIONAL_JUMP: how far to advance nextInstruction on false.
	Offset int

	// CALL/INIT
	Message        string
	Arity          int
	LookupStart    string
	HasLookupStart bool
	InitFields     bool

	// IF_THEN_ELSE
	Then []Instruction
	Else []Instruction

	// TRY_CATCH_ALWAYS
	TryBody   []Instruction
	TryCatch  []Instruction
	TryAlways []Instruction

	// INTERRUPT
	InterruptKind InterruptKind
}
