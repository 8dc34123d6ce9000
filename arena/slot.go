package arena

import "math"

// nilSlot terminates the free list.
const nilSlot = math.MaxUint32

// slot is either occupied, holding the generation a valid handle must carry,
// or free, linking to the next free slot. generation is kept while free so
// the next occupant can be checked against it.
type slot struct {
	generation uint64
	next       uint32
	occupied   bool
}

// SlotInfo describes one slot for inspection tools.
type SlotInfo struct {
	Index      uint32
	Occupied   bool
	Generation uint64
	// Next is the following free slot; only meaningful when HasNext is set.
	Next       uint32
	HasNext    bool
	Attributes []string
}

// pop takes the free-list head, or reports false when the list is empty.
func (a *Arena) pop() (uint32, bool) {
	if a.freeHead == nilSlot {
		return 0, false
	}
	index := a.freeHead
	a.freeHead = a.slots[index].next
	return index, true
}

// push makes index the new free-list head.
func (a *Arena) push(index uint32) {
	s := &a.slots[index]
	s.occupied = false
	s.next = a.freeHead
	a.freeHead = index
}

func (a *Arena) lookup(h Handle) Reason {
	if uint64(h.index) >= uint64(len(a.slots)) {
		return ReasonOutOfRange
	}
	s := &a.slots[h.index]
	if !s.occupied {
		return ReasonFree
	}
	if s.generation != h.generation {
		return ReasonStale
	}
	return reasonNone
}

func (a *Arena) check(h Handle) error {
	if reason := a.lookup(h); reason != reasonNone {
		return &HandleError{Handle: h, Reason: reason}
	}
	return nil
}

// Slot returns the state of the slot at index.
func (a *Arena) Slot(index uint32) (SlotInfo, bool) {
	if uint64(index) >= uint64(len(a.slots)) {
		return SlotInfo{}, false
	}
	s := a.slots[index]
	info := SlotInfo{
		Index:      index,
		Occupied:   s.occupied,
		Generation: s.generation,
	}
	if s.occupied {
		info.Attributes = a.cols.present(index)
	} else if s.next != nilSlot {
		info.Next = s.next
		info.HasNext = true
	}
	return info, true
}
