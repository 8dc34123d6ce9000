package arena

import "fmt"

// Handle addresses one record in an Arena. It pairs a slot index with the
// generation the slot had when the record was allocated. Handles carry no
// ownership and may outlive their record; every arena operation re-checks them.
type Handle struct {
	index      uint32
	generation uint64
}

// HandleFromParts builds a Handle from a raw slot index and generation.
func HandleFromParts(index uint32, generation uint64) Handle {
	return Handle{index: index, generation: generation}
}

// Index returns the slot index the handle points at.
func (h Handle) Index() uint32 {
	return h.index
}

// Generation returns the generation the handle was issued with.
func (h Handle) Generation() uint64 {
	return h.generation
}

func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}
