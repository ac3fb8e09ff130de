package vm

import "github.com/google/uuid"

// Id is an opaque token uniquely identifying a heap object within an
// Evaluation (§3). Four ids are reserved and process-wide stable within
// an evaluation.
type Id string

const (
	NullId  Id = "null"
	VoidId  Id = "void"
	TrueId  Id = "true"
	FalseId Id = "false"
)

// freshId generates a new, evaluation-unique id backed by a random UUID
// (§9: "Id may be a UUID string").
func freshId() Id {
	return Id(uuid.NewString())
}
