package result

import "gopkg.microglot.org/containers.go/optional"

// ProjectFailure projects a Result onto an Optional of its failure side. A
// failed Result keeps its payload and the returned Optional wraps a copy of
// the failure value. A succeeded Result is consumed: the success value it no
// longer needs is cleared and the returned Optional is absent. Callers must
// treat o as spent after projecting it, whichever branch ran.
func ProjectFailure[T any, E any](o *Result[T, E]) optional.Optional[E] {
	if o.ok {
		o.consume()
		return optional.None[E]()
	}
	return optional.Some(o.err)
}

// ProjectSuccess projects a Result onto an Optional of its success side,
// consuming the Result when it holds a failure. The spent-after-use contract
// of ProjectFailure applies here too.
func ProjectSuccess[T any, E any](o *Result[T, E]) optional.Optional[T] {
	if !o.ok {
		o.consume()
		return optional.None[T]()
	}
	return optional.Some(o.value)
}
