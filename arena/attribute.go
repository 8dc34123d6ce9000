package arena

// Attribute selects one column of an Arena. The set of attributes is fixed;
// see the package-level selectors in columns_gen.go.
type Attribute[T any] struct {
	name   string
	column func(*columns) *Column[T]
}

// Name returns the attribute name.
func (attr Attribute[T]) Name() string {
	return attr.name
}

// Read returns the attribute value of the record behind h. A valid handle
// may still yield an absent value.
func Read[T any](a *Arena, h Handle, attr Attribute[T]) (Optional[T], error) {
	if err := a.check(h); err != nil {
		return None[T](), err
	}
	return attr.column(&a.cols).get(h.index), nil
}

// Write returns write access to the attribute cell of the record behind h.
func Write[T any](a *Arena, h Handle, attr Attribute[T]) (Cell[T], error) {
	if err := a.check(h); err != nil {
		return Cell[T]{}, err
	}
	return Cell[T]{col: attr.column(&a.cols), index: h.index}, nil
}

// ColumnOf exposes the column behind attr for inspection.
func ColumnOf[T any](a *Arena, attr Attribute[T]) *Column[T] {
	return attr.column(&a.cols)
}
