package conduit

type bufferedState byte

const (
	bufOpenEmpty bufferedState = iota
	bufOpenFull
	bufClosedEmpty
	bufClosedFull
)

// BufferedProducer[A] wraps a Producer[A] to make it resumable across
// multiple Connect calls and to support a one-slot pushback, the way a
// plain Producer cannot: a plain producer is consumed by a single
// Connect, and any leftover a consumer hands back is lost.
//
// BufferedProducer holds a single mutable cell that is one of four states
// (OpenEmpty, OpenFull, ClosedEmpty, ClosedFull); it is single-writer by
// construction and is not safe for concurrent use — there is no mutex, and
// none should be added: concurrent access is explicitly unsupported, not a
// condition this type needs to guard against.
//
// Create one with NewBufferedProducer. It must be explicitly closed by its
// owner; neither Connect nor ConnectBuffered close it on the caller's
// behalf.
type BufferedProducer[A any] struct {
	state    bufferedState
	producer Producer[A]
	pending  A
	consumed bool
}

// NewBufferedProducer wraps producer in a BufferedProducer, starting in the
// OpenEmpty state.
func NewBufferedProducer[A any](producer Producer[A]) *BufferedProducer[A] {
	return &BufferedProducer[A]{state: bufOpenEmpty, producer: producer}
}

// Pull returns the next value, or an empty Optional if the underlying
// producer has closed. It favors a pending pushed-back element over
// pulling the underlying producer.
func (b *BufferedProducer[A]) Pull() (Optional[A], error) {
	b.mustNotBeConsumed()
	switch b.state {
	case bufOpenEmpty:
		pr, err := b.producer.Pull()
		if err != nil {
			return Optional[A]{}, err
		}
		if !pr.IsOpen() {
			b.state = bufClosedEmpty
			return None[A](), nil
		}
		next, a := pr.Open()
		b.producer = next
		return Some(a), nil
	case bufOpenFull:
		a := b.pending
		var zero A
		b.pending = zero
		b.state = bufOpenEmpty
		return Some(a), nil
	case bufClosedEmpty:
		return None[A](), nil
	case bufClosedFull:
		a := b.pending
		var zero A
		b.pending = zero
		b.state = bufClosedEmpty
		return Some(a), nil
	default:
		panic("conduit: unreachable BufferedProducer state")
	}
}

// Unpull pushes a value back onto this buffer, to be returned by the next
// Pull. A None value is a no-op. Unpulling a value onto a buffer that
// already has one pending is an invariant violation and panics: the
// pushback slot is never overwritten.
func (b *BufferedProducer[A]) Unpull(value Optional[A]) {
	b.mustNotBeConsumed()
	a, ok := value.Get()
	if !ok {
		return
	}
	switch b.state {
	case bufOpenEmpty:
		b.pending = a
		b.state = bufOpenFull
	case bufClosedEmpty:
		b.pending = a
		b.state = bufClosedFull
	default:
		panic("conduit: Unpull called on a BufferedProducer that already has a pending element")
	}
}

// Close finalizes this buffer. If the underlying producer is still live, it
// is closed now. Close is idempotent: calling it again once the buffer is
// already in a Closed* state does nothing and returns nil.
func (b *BufferedProducer[A]) Close() error {
	b.mustNotBeConsumed()
	switch b.state {
	case bufOpenEmpty:
		err := b.producer.Close()
		b.state = bufClosedEmpty
		return err
	case bufOpenFull:
		err := b.producer.Close()
		b.state = bufClosedFull
		return err
	case bufClosedEmpty, bufClosedFull:
		return nil
	default:
		panic("conduit: unreachable BufferedProducer state")
	}
}

// Unbuffer converts this BufferedProducer into a plain Producer[A]: it
// first yields the pending element, if any, then continues with the
// underlying producer (which may itself already be closed). This is
// destructive — the buffer's state is read exactly once and the
// BufferedProducer must not be used again afterward; doing so panics.
func (b *BufferedProducer[A]) Unbuffer() Producer[A] {
	b.mustNotBeConsumed()
	state, producer, pending := b.state, b.producer, b.pending
	b.consumed = true
	switch state {
	case bufOpenEmpty:
		return producer
	case bufOpenFull:
		return prependOne(pending, producer)
	case bufClosedEmpty:
		return Empty[A]()
	case bufClosedFull:
		return prependOne(pending, Empty[A]())
	default:
		panic("conduit: unreachable BufferedProducer state")
	}
}

func (b *BufferedProducer[A]) mustNotBeConsumed() {
	if b.consumed {
		panic("conduit: BufferedProducer used after Unbuffer")
	}
}
