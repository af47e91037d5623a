package domain

// Toggle implements toggle-select: clicking the active key clears the
// selection, clicking any other key selects it. The returned pointer never
// aliases current.
func Toggle[K comparable](current *K, clicked K) *K {
	if current != nil && *current == clicked {
		return nil
	}
	return &clicked
}

// Exclusive implements exclusive-select: exactly one value is active at all
// times and a default is required. The zero Exclusive is not usable; build one
// with NewExclusive.
type Exclusive[K comparable] struct {
	value    K
	fallback K
}

// NewExclusive returns a selection holding def.
func NewExclusive[K comparable](def K) Exclusive[K] {
	return Exclusive[K]{value: def, fallback: def}
}

// Select makes k the active value. Selecting the active value keeps it.
func (e Exclusive[K]) Select(k K) Exclusive[K] {
	e.value = k
	return e
}

// Value returns the active value.
func (e Exclusive[K]) Value() K {
	return e.value
}

// Reset returns a selection holding the default again.
func (e Exclusive[K]) Reset() Exclusive[K] {
	e.value = e.fallback
	return e
}
