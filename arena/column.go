package arena

import (
	"github.com/RoaringBitmap/roaring/v2"
)

const (
	columnBlockSize = 64
)

// Column stores one attribute for every slot of an Arena. Values are kept in
// fixed-size blocks so a cell never moves when the arena grows, and presence
// is tracked in a bitmap indexed by slot.
type Column[T any] struct {
	name    string
	blocks  []*[columnBlockSize]T
	present *roaring.Bitmap
	length  uint32
}

type cloner[T any] interface {
	Clone() T
}

// cloneValue copies reference-typed values so two slots never share storage.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func newColumn[T any](name string, capacity int) Column[T] {
	return Column[T]{
		name:    name,
		blocks:  make([]*[columnBlockSize]T, 0, (capacity+columnBlockSize-1)/columnBlockSize),
		present: roaring.New(),
	}
}

// Name returns the attribute name.
func (c *Column[T]) Name() string {
	return c.name
}

// Len returns the number of cells, which always equals the slot count.
func (c *Column[T]) Len() int {
	return int(c.length)
}

// Present returns how many cells hold a value.
func (c *Column[T]) Present() int {
	return int(c.present.GetCardinality())
}

// grow appends one absent cell.
func (c *Column[T]) grow() {
	if int(c.length/columnBlockSize) >= len(c.blocks) {
		c.blocks = append(c.blocks, new([columnBlockSize]T))
	}
	c.length++
}

func (c *Column[T]) cell(index uint32) *T {
	return &c.blocks[index/columnBlockSize][index%columnBlockSize]
}

func (c *Column[T]) has(index uint32) bool {
	return c.present.Contains(index)
}

func (c *Column[T]) get(index uint32) Optional[T] {
	if !c.has(index) {
		return None[T]()
	}
	return Some(*c.cell(index))
}

func (c *Column[T]) put(index uint32, v T) {
	*c.cell(index) = cloneValue(v)
	c.present.Add(index)
}

func (c *Column[T]) set(index uint32, v Optional[T]) {
	if val, ok := v.Get(); ok {
		c.put(index, val)
		return
	}
	c.clear(index)
}

func (c *Column[T]) clear(index uint32) {
	var zero T
	*c.cell(index) = zero
	c.present.Remove(index)
}

// each visits present cells in slot order until fn returns false.
func (c *Column[T]) each(fn func(index uint32, v *T) bool) {
	it := c.present.Iterator()
	for it.HasNext() {
		index := it.Next()
		if !fn(index, c.cell(index)) {
			return
		}
	}
}

// Cell is write access to one column cell of a live record. It is only good
// for the frame it was obtained in: once the record is freed the cell belongs
// to whichever record reuses the slot.
type Cell[T any] struct {
	col   *Column[T]
	index uint32
}

// Get returns the cell value and whether it is present.
func (c Cell[T]) Get() (T, bool) {
	return c.col.get(c.index).Get()
}

// Optional returns the cell value as an Optional.
func (c Cell[T]) Optional() Optional[T] {
	return c.col.get(c.index)
}

// Present reports whether the cell holds a value.
func (c Cell[T]) Present() bool {
	return c.col.has(c.index)
}

// Set stores v, making the attribute present.
func (c Cell[T]) Set(v T) {
	c.col.put(c.index, v)
}

// Replace stores v or clears the cell when v is absent.
func (c Cell[T]) Replace(v Optional[T]) {
	c.col.set(c.index, v)
}

// Clear removes the attribute.
func (c Cell[T]) Clear() {
	c.col.clear(c.index)
}

// Ptr returns a pointer for in-place mutation, or nil when the cell is absent.
func (c Cell[T]) Ptr() *T {
	if !c.col.has(c.index) {
		return nil
	}
	return c.col.cell(c.index)
}
