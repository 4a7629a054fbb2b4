package utils

// TrackedState keeps the value from the previous update next to the current
// one so consumers can detect edges.
type TrackedState[T comparable] struct {
	LastValue T
	Value     T
}

// Update shifts the current value into LastValue and stores val.
func (t *TrackedState[T]) Update(val T) (changed bool) {
	t.LastValue = t.Value
	t.Value = val
	return t.LastValue != t.Value
}

func (t *TrackedState[T]) Rising(on T) bool {
	return t.Value == on && t.LastValue != on
}

func (t *TrackedState[T]) Falling(on T) bool {
	return t.Value != on && t.LastValue == on
}
