package arena

import (
	"errors"

	"github.com/kamstrup/intmap"
)

// Commands buffers structural changes issued while systems iterate the arena.
// They are applied by Flush at the end of a frame.
type Commands struct {
	allocs []allocCommand
	frees  []Handle
	defers []func()

	// freed maps slot index to the generation freed during the current flush.
	freed *intmap.Map[uint32, uint64]
}

type allocCommand struct {
	values Values
	then   func(Handle)
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{
		freed: intmap.New[uint32, uint64](64),
	}
}

// Allocate queues a record allocation.
func (c *Commands) Allocate(v Values) {
	c.allocs = append(c.allocs, allocCommand{values: v})
}

// AllocateThen queues a record allocation and calls fn with its handle once
// the allocation has been applied.
func (c *Commands) AllocateThen(v Values, fn func(Handle)) {
	c.allocs = append(c.allocs, allocCommand{values: v, then: fn})
}

// Free queues a record removal.
func (c *Commands) Free(h Handle) {
	c.frees = append(c.frees, h)
}

// Defer queues a function to run after all frees and allocations.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued commands.
func (c *Commands) Pending() int {
	return len(c.allocs) + len(c.frees) + len(c.defers)
}

// Flush applies queued frees in the order they were issued, then queued
// allocations, then deferred functions, and resets the buffer. A handle freed
// more than once in the same flush is only freed once. Frees of invalid
// handles are skipped and reported together in the returned error.
func (c *Commands) Flush(a *Arena) error {
	var errs []error

	for _, h := range c.frees {
		if gen, ok := c.freed.Get(h.index); ok && gen == h.generation {
			continue
		}
		if err := a.Free(h); err != nil {
			errs = append(errs, err)
			continue
		}
		c.freed.Put(h.index, h.generation)
	}

	for _, cmd := range c.allocs {
		h := a.Allocate(cmd.values)
		if cmd.then != nil {
			cmd.then(h)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.allocs = c.allocs[:0]
	c.frees = c.frees[:0]
	c.defers = c.defers[:0]
	c.freed.Clear()

	return errors.Join(errs...)
}
