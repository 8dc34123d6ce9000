package arena

import "fmt"

// Stats summarizes the arena for tooling.
type Stats struct {
	Slots      int
	Occupied   int
	Free       int
	Generation uint64
	Columns    []ColumnStats
}

// ColumnStats describes one attribute column.
type ColumnStats struct {
	Name    string
	Len     int
	Present int
}

// CollectStats gathers slot and column counts.
func (a *Arena) CollectStats() Stats {
	return Stats{
		Slots:      len(a.slots),
		Occupied:   a.live,
		Free:       len(a.slots) - a.live,
		Generation: a.generation,
		Columns:    a.cols.stats(),
	}
}

// Verify walks the slot table and free list and reports the first broken
// invariant as an error wrapping ErrCorrupt.
func (a *Arena) Verify() error {
	n := len(a.slots)

	for _, col := range a.cols.stats() {
		if col.Len != n {
			return fmt.Errorf("%w: column %s has %d cells, slot table has %d", ErrCorrupt, col.Name, col.Len, n)
		}
	}

	occupied := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			occupied++
			continue
		}
		if names := a.cols.present(uint32(i)); len(names) > 0 {
			return fmt.Errorf("%w: free slot %d still holds %v", ErrCorrupt, i, names)
		}
	}
	if occupied != a.live {
		return fmt.Errorf("%w: %d occupied slots, live count is %d", ErrCorrupt, occupied, a.live)
	}

	seen := make([]bool, n)
	walked := 0
	for index := a.freeHead; index != nilSlot; index = a.slots[index].next {
		if int(index) >= n {
			return fmt.Errorf("%w: free list points past the table at %d", ErrCorrupt, index)
		}
		if a.slots[index].occupied {
			return fmt.Errorf("%w: free list reaches occupied slot %d", ErrCorrupt, index)
		}
		if seen[index] {
			return fmt.Errorf("%w: free list cycles at slot %d", ErrCorrupt, index)
		}
		seen[index] = true
		walked++
	}
	if walked != n-occupied {
		return fmt.Errorf("%w: free list holds %d slots, %d are free", ErrCorrupt, walked, n-occupied)
	}

	return nil
}
