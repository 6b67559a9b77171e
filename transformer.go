package conduit

// Transformer[A,B] is a push-driven A-to-B stage. Pushing a value into it
// returns a TResult: Running (accepted, no output yet), Finished (done,
// possibly with a leftover input), or HaveMore (one output emitted, with a
// way to pull the rest of the current burst). Close is itself a
// Producer[B] — the transformer's drain — since a transformer may still
// have output to emit after its input has ceased; LeftFuse relies on this
// to drive the drain as the pipeline's tail.
//
// A Transformer is used linearly: exactly one of {a single Push call} or
// {a single Close call} happens on any given Transformer value; further
// input goes to the continuation carried by the returned TResult.
type Transformer[A, B any] struct {
	push  func(A) (TResult[A, B], error)
	drain Producer[B]
	used  *bool
}

// NewTransformer builds a Transformer from its push action and drain
// producer.
func NewTransformer[A, B any](push func(A) (TResult[A, B], error), drain Producer[B]) Transformer[A, B] {
	return Transformer[A, B]{push: push, drain: drain, used: new(bool)}
}

// Push feeds value into this transformer. It panics if this Transformer has
// already been pushed to or closed.
func (t Transformer[A, B]) Push(value A) (TResult[A, B], error) {
	if *t.used {
		panic("conduit: Push called on an already-finalized Transformer")
	}
	*t.used = true
	return t.push(value)
}

// Close finalizes this transformer without further input, returning its
// drain: a Producer[B] that may still yield a tail of output before
// closing. It panics if this Transformer has already been pushed to or
// closed.
func (t Transformer[A, B]) Close() Producer[B] {
	if *t.used {
		panic("conduit: Close called on an already-finalized Transformer")
	}
	*t.used = true
	return t.drain
}

// IdentityTransformer returns a Transformer that emits every value it
// receives unchanged.
func IdentityTransformer[A any]() Transformer[A, A] {
	return MapTransformer(func(a A) A { return a })
}

// MapTransformer returns a Transformer that emits f(a) for every input a.
// Each input produces exactly one output, delivered as a single-element
// HaveMore burst.
func MapTransformer[A, B any](f func(A) B) Transformer[A, B] {
	return NewTransformer[A, B](
		func(a A) (TResult[A, B], error) {
			out := f(a)
			next := MapTransformer(f)
			return THaveMore[A, B](
				func() (TResult[A, B], error) { return TRunning[A, B](next), nil },
				func() error { return nil },
				out,
			), nil
		},
		Empty[B](),
	)
}

// FilterTransformer returns a Transformer that emits only the inputs for
// which pred returns true, dropping the rest without emitting anything for
// them.
func FilterTransformer[A any](pred func(A) bool) Transformer[A, A] {
	return filterTransformer(pred)
}

func filterTransformer[A any](pred func(A) bool) Transformer[A, A] {
	return NewTransformer[A, A](
		func(a A) (TResult[A, A], error) {
			next := filterTransformer(pred)
			if !pred(a) {
				return TRunning[A, A](next), nil
			}
			return THaveMore[A, A](
				func() (TResult[A, A], error) { return TRunning[A, A](next), nil },
				func() error { return nil },
				a,
			), nil
		},
		Empty[A](),
	)
}

// MaybeMapTransformer returns a Transformer that applies f to each input
// and emits the resulting B only when f reports ok.
func MaybeMapTransformer[A, B any](f func(A) (B, bool)) Transformer[A, B] {
	return maybeMapTransformer(f)
}

func maybeMapTransformer[A, B any](f func(A) (B, bool)) Transformer[A, B] {
	return NewTransformer[A, B](
		func(a A) (TResult[A, B], error) {
			next := maybeMapTransformer(f)
			out, ok := f(a)
			if !ok {
				return TRunning[A, B](next), nil
			}
			return THaveMore[A, B](
				func() (TResult[A, B], error) { return TRunning[A, B](next), nil },
				func() error { return nil },
				out,
			), nil
		},
		Empty[B](),
	)
}

// ExplodeTransformer returns a Transformer that emits each input copies
// times in a row via a single HaveMore burst, demonstrating a transformer
// that legitimately streams more than one output per input. copies < 1 is
// treated as 1.
func ExplodeTransformer[A any](copies int) Transformer[A, A] {
	if copies < 1 {
		copies = 1
	}
	return explodeTransformer[A](copies)
}

func explodeTransformer[A any](copies int) Transformer[A, A] {
	return NewTransformer[A, A](
		func(a A) (TResult[A, A], error) {
			return explodeBurst(a, copies, copies), nil
		},
		Empty[A](),
	)
}

// explodeBurst returns the TResult for emitting one more copy of a, with
// remaining copies (including this one) left in the burst.
func explodeBurst[A any](a A, remaining int, copies int) TResult[A, A] {
	return THaveMore[A, A](
		func() (TResult[A, A], error) {
			if remaining <= 1 {
				return TRunning[A, A](explodeTransformer[A](copies)), nil
			}
			return explodeBurst(a, remaining-1, copies), nil
		},
		func() error { return nil },
		a,
	)
}

// TakeWhileTransformer returns a Transformer that emits inputs unchanged
// until pred first returns false, at which point it Finishes and hands
// that input back as leftover.
func TakeWhileTransformer[A any](pred func(A) bool) Transformer[A, A] {
	return takeWhileTransformer(pred)
}

func takeWhileTransformer[A any](pred func(A) bool) Transformer[A, A] {
	return NewTransformer[A, A](
		func(a A) (TResult[A, A], error) {
			if !pred(a) {
				return TFinished[A, A](Some(a)), nil
			}
			next := takeWhileTransformer(pred)
			return THaveMore[A, A](
				func() (TResult[A, A], error) { return TRunning[A, A](next), nil },
				func() error { return nil },
				a,
			), nil
		},
		Empty[A](),
	)
}

// BufferAllTransformer returns a Transformer that accumulates every input
// and emits nothing until it is closed, at which point its drain yields
// the buffered values in order. It exists to exercise the drain-as-producer
// design: LeftFuse switches to driving this drain once the upstream
// producer closes.
func BufferAllTransformer[A any]() Transformer[A, A] {
	return bufferAllTransformer[A](nil)
}

func bufferAllTransformer[A any](buffered []A) Transformer[A, A] {
	return NewTransformer[A, A](
		func(a A) (TResult[A, A], error) {
			return TRunning[A, A](bufferAllTransformer(append(buffered, a))), nil
		},
		FromSlice(buffered),
	)
}
