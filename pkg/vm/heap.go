package vm

import (
	"math"

	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
)

// Heap is the mapping from Id to owned RuntimeObject (§9). Well-known ids
// are pre-seeded by NewHeap and never reclaimed — this core does not do
// garbage collection (§1 Non-goals).
type Heap struct {
	objects map[Id]*RuntimeObject
}

// NewHeap allocates a heap pre-seeded with null, true, false and void
// (§3, §6 buildEvaluationFor).
func NewHeap() *Heap {
	h := &Heap{objects: map[Id]*RuntimeObject{}}
	h.objects[NullId] = newRuntimeObject(NullId, "wollok.lang.Object", nil)
	h.objects[VoidId] = newRuntimeObject(VoidId, "wollok.lang.Object", nil)
	h.objects[TrueId] = newRuntimeObject(TrueId, "wollok.lang.Boolean", true)
	h.objects[FalseId] = newRuntimeObject(FalseId, "wollok.lang.Boolean", false)
	return h
}

// roundTo4 rounds v to 4 decimal places, half-away-from-zero, per §4.2
// and §9 ("Numbers: fixed decimal rounding to 4 places at allocation
// time"). math.Round already rounds halves away from zero.
func roundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// AddInstance allocates a new object of the given module, optionally
// carrying a primitive payload, and returns its fresh id (§4.2).
func (h *Heap) AddInstance(module string, innerValue interface{}) Id {
	if module == "wollok.lang.Number" {
		if n, ok := innerValue.(float64); ok {
			innerValue = roundTo4(n)
		}
	}
	id := freshId()
	h.objects[id] = newRuntimeObject(id, module, innerValue)
	return id
}

// AddInstanceWithId is AddInstance for a caller-chosen id, used by
// bootstrap to pre-allocate singletons under ids derived from their AST
// node ids (§9 Open Questions).
func (h *Heap) AddInstanceWithId(id Id, module string, innerValue interface{}) {
	h.objects[id] = newRuntimeObject(id, module, innerValue)
}

// GetInstance fetches an object, failing with a HostError if absent
// (§4.2, §7 "accessing an undefined instance").
func (h *Heap) GetInstance(id Id) (*RuntimeObject, error) {
	obj, ok := h.objects[id]
	if !ok {
		return nil, &wollokerrors.HostError{Msg: "undefined instance: " + string(id)}
	}
	return obj, nil
}

// Size reports how many objects are currently allocated. Exposed for
// diagnostics/tests; the core never reclaims objects (§1 Non-goals).
func (h *Heap) Size() int { return len(h.objects) }

func (h *Heap) clone() *Heap {
	out := &Heap{objects: make(map[Id]*RuntimeObject, len(h.objects))}
	for id, obj := range h.objects {
		out.objects[id] = obj.clone()
	}
	return out
}
