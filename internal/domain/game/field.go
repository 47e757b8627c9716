package game

// Field is a value that remembers whether it was supplied. The zero Field is unset.
type Field[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

func (f Field[T]) IsSet() bool {
	return f.set
}

// Value returns the wrapped value, or the zero value when unset.
func (f Field[T]) Value() T {
	return f.value
}

// Or returns the wrapped value when set, fallback otherwise.
func (f Field[T]) Or(fallback T) T {
	if !f.set {
		return fallback
	}
	return f.value
}
