package conduit

// Producer[A] is a pull-driven source of A values. Pulling it returns
// either Closed or Open(next, value), where next is the continuation to
// pull from thereafter; the Producer value that was pulled must not be
// pulled or closed again. Construct one with NewProducer, or use one of the
// fixtures below (FromSlice, Range, Empty) for exercising the rest of this
// package without an I/O layer.
type Producer[A any] struct {
	pull  func() (PullResult[A], error)
	close func() error
	used  *bool
}

// NewProducer builds a Producer from its pull and close actions.
func NewProducer[A any](pull func() (PullResult[A], error), close func() error) Producer[A] {
	return Producer[A]{pull: pull, close: close, used: new(bool)}
}

// Pull requests the next value. It panics if this Producer has already been
// pulled or closed.
func (p Producer[A]) Pull() (PullResult[A], error) {
	if *p.used {
		panic("conduit: Pull called on an already-finalized Producer")
	}
	*p.used = true
	return p.pull()
}

// Close releases any resources held by this Producer without pulling
// further. It panics if this Producer has already been pulled or closed.
func (p Producer[A]) Close() error {
	if *p.used {
		panic("conduit: Close called on an already-finalized Producer")
	}
	*p.used = true
	return p.close()
}

// Empty is a Producer that is immediately Closed.
func Empty[A any]() Producer[A] {
	return NewProducer[A](
		func() (PullResult[A], error) { return ClosedPull[A](), nil },
		func() error { return nil },
	)
}

// FromSlice returns a Producer that yields the elements of values in order,
// then closes. It reads from values in place without copying it, so the
// producer keeps values' backing array reachable until it is finalized.
func FromSlice[A any](values []A) Producer[A] {
	return sliceProducer(values)
}

func sliceProducer[A any](values []A) Producer[A] {
	return NewProducer[A](
		func() (PullResult[A], error) {
			if len(values) == 0 {
				return ClosedPull[A](), nil
			}
			return OpenPull[A](sliceProducer(values[1:]), values[0]), nil
		},
		func() error { return nil },
	)
}

// Range returns a Producer that yields lo, lo+1, ..., hi-1 then closes. A
// non-positive span (hi <= lo) yields nothing.
func Range(lo, hi int) Producer[int] {
	return rangeProducer(lo, hi)
}

func rangeProducer(lo, hi int) Producer[int] {
	return NewProducer[int](
		func() (PullResult[int], error) {
			if lo >= hi {
				return ClosedPull[int](), nil
			}
			return OpenPull[int](rangeProducer(lo+1, hi), lo), nil
		},
		func() error { return nil },
	)
}

// prependOne returns a Producer that yields first, then continues with
// rest. It is used by BufferedProducer.Unbuffer to reinject a pending
// element ahead of the underlying producer.
func prependOne[A any](first A, rest Producer[A]) Producer[A] {
	return NewProducer[A](
		func() (PullResult[A], error) { return OpenPull[A](rest, first), nil },
		func() error { return rest.Close() },
	)
}

// drainToClose pulls p until it yields Closed, discarding every value along
// the way. It does not call p.Close(): a Producer that yields Closed from
// Pull has already finalized itself, and closing it again would violate
// the "pull XOR close finalizes" invariant.
func drainToClose[A any](p Producer[A]) error {
	for {
		pr, err := p.Pull()
		if err != nil {
			return err
		}
		if !pr.IsOpen() {
			return nil
		}
		p, _ = pr.Open()
	}
}
