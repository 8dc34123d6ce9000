// Package arena implements a generational slot arena backing a small
// column-oriented component store.
//
// Records are allocated into slots and addressed through Handles. Freed slots
// are recycled most-recently-freed first, and every reuse is stamped with a
// fresher generation so handles to the previous occupant stop validating.
// Each attribute lives in its own Column, index-aligned with the slot table.
//
// An Arena has a single owner and is not safe for concurrent use. Readers on
// other goroutines take a Snapshot between simulation steps.
package arena

import (
	"fmt"
	"iter"
)

//go:generate go run ../cmd/columngen -o columns_gen.go

// Arena owns the slot table and every attribute column.
type Arena struct {
	slots      []slot
	freeHead   uint32
	generation uint64
	live       int
	version    uint64
	cols       columns
}

// New creates an empty arena with room for initialCapacity records before
// the slot table has to grow.
func New(initialCapacity int) *Arena {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Arena{
		slots:    make([]slot, 0, initialCapacity),
		freeHead: nilSlot,
		cols:     newColumns(initialCapacity),
	}
}

// Allocate stores a new record and returns its handle. The most recently
// freed slot is reused first; otherwise the table grows by one row. Every
// column at the slot is overwritten with v, absent attributes included.
func (a *Arena) Allocate(v Values) Handle {
	index, ok := a.pop()
	if !ok {
		if uint64(len(a.slots)) >= nilSlot {
			panic("arena: slot index space exhausted")
		}
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
		a.cols.grow()
	}

	a.cols.set(index, v)
	a.slots[index] = slot{
		generation: a.generation,
		next:       nilSlot,
		occupied:   true,
	}
	a.live++
	a.version++

	return Handle{index: index, generation: a.generation}
}

// Free removes the record behind h and recycles its slot. It fails with
// ErrInvalidHandle, leaving the arena untouched, when h is not valid.
func (a *Arena) Free(h Handle) error {
	if err := a.check(h); err != nil {
		return err
	}

	a.cols.clear(h.index)

	// The next occupant of any slot must get a generation strictly newer than
	// every handle issued for that slot so far.
	if a.slots[h.index].generation >= a.generation {
		a.generation++
	}

	a.push(h.index)
	a.live--
	a.version++
	return nil
}

// Validate reports whether h refers to a live record.
func (a *Arena) Validate(h Handle) bool {
	return a.lookup(h) == reasonNone
}

// Count returns the number of occupied slots.
func (a *Arena) Count() int {
	return a.live
}

// Len returns the length of the slot table, free slots included.
func (a *Arena) Len() int {
	return len(a.slots)
}

// Generation returns the arena-wide generation counter.
func (a *Arena) Generation() uint64 {
	return a.generation
}

// Version counts structural changes. Every Allocate and Free bumps it, so an
// unchanged version means the slot table looks exactly as it did before.
// Writes through a Cell do not count.
func (a *Arena) Version() uint64 {
	return a.version
}

// All iterates the handles of every live record in slot order.
// The arena must not be modified during iteration.
func (a *Arena) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(Handle{index: uint32(i), generation: s.generation}) {
				return
			}
		}
	}
}

// Reset frees every live record. Generations keep advancing, so handles
// issued before the reset stay invalid. A handle taken from the slot table
// that fails to free means the table is corrupt; Reset stops there and
// returns an error wrapping ErrCorrupt.
func (a *Arena) Reset() error {
	handles := make([]Handle, 0, a.live)
	for h := range a.All() {
		handles = append(handles, h)
	}
	for _, h := range handles {
		if err := a.Free(h); err != nil {
			return fmt.Errorf("%w: reset: %w", ErrCorrupt, err)
		}
	}
	return nil
}
