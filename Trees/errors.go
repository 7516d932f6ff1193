package Trees

// InvalidArgumentError is returned when an absent element(nil pointer, nil interface, etc.) is
// given to an operation that requires one.
type InvalidArgumentError struct {
	Op string
}

func (e *InvalidArgumentError) Error() string {
	return "BSTree doesn't accept absent elements: cannot " + e.Op + "."
}

// ExhaustedError is returned by Cursor.Next once Cursor.HasNext has turned false.
type ExhaustedError struct {
	Order Order
}

func (e *ExhaustedError) Error() string {
	return "Cursor is exhausted: no more elements in " + e.Order.String() + " traversal."
}
