package optional

import "gopkg.microglot.org/containers.go/exc"

// Optional holds zero or one value of type T. The zero value of the struct is
// the absent container. Presence is tracked by an explicit tag so a present
// Optional can hold any value of T, including T's zero value.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) IsAbsent() bool {
	return !self.present
}

// Value returns the payload without checking presence. It is the zero value
// of T when the Optional is absent. Use Unwrap when absence must surface as
// an error.
func (self Optional[T]) Value() T {
	return self.value
}

// Unwrap returns the payload of a present Optional. Unwrapping an absent
// Optional fails with exc.CodeEmptyValueAccess. Unwrap does not mutate the
// container and repeated calls return the same result.
func (self Optional[T]) Unwrap() (T, error) {
	if !self.present {
		return self.value, exc.New(exc.CodeEmptyValueAccess, "unwrap of an absent optional")
	}
	return self.value, nil
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// WithValue builds a present Optional from a pointer by copying the pointee.
// The nil pointer is the absence marker and is rejected with
// exc.CodeInvalidArgument so that a present Optional never wraps it. Use None
// for intentional absence.
func WithValue[T any](v *T) (Optional[T], error) {
	if v == nil {
		return Optional[T]{}, exc.New(exc.CodeInvalidArgument, "cannot build a present optional from nil")
	}
	return Some(*v), nil
}

// ExpectValue returns the payload of an Optional that the caller requires to
// be present. Absence fails with exc.CodeEmptyValueAccess, exactly as Unwrap
// does.
func ExpectValue[T any](o Optional[T]) (T, error) {
	return o.Unwrap()
}

// ExpectAbsent asserts that an Optional holds no value. A present Optional
// fails with exc.CodeUnexpectedValuePresent.
func ExpectAbsent[T any](o Optional[T]) error {
	if o.present {
		return exc.New(exc.CodeUnexpectedValuePresent, "optional expected to be absent holds a value")
	}
	return nil
}
