package errors

import (
	"fmt"
	"strings"
)

// Snapshot is a diagnostic rendering of an Evaluation at the moment a
// HostError or LanguageError was raised, deliberately excluding the
// Environment (§7: "a diagnostic snapshot of the evaluation (excluding
// the environment)").
type Snapshot struct {
	Frames []FrameSnapshot
}

// FrameSnapshot describes one activation record, innermost last.
type FrameSnapshot struct {
	NextInstruction int
	InstructionLen  int
	Locals          map[string]string
	OperandStack    []string
	Resume          []string
}

func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame stack (%d frames):\n", len(s.Frames))
	for i, f := range s.Frames {
		fmt.Fprintf(&b, "  #%d ip=%d/%d resume=%v operands=%v locals=%v\n",
			i, f.NextInstruction, f.InstructionLen, f.Resume, f.OperandStack, f.Locals)
	}
	return b.String()
}
