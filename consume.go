package conduit

type consumerKind byte

const (
	consumerNoData consumerKind = iota
	consumerSuspend
	consumerActive
)

// Consumer[A,B] is a push-driven sink of A values that eventually produces
// a B. It is one of three variants:
//
//   - NoData(b): already has its result; never pulls or is pushed to.
//   - Suspend(m): a deferred consumer that must be resolved by running m in
//     the effect context before anything else can happen.
//   - Active(push, close): accepts values via Push until it returns Done,
//     or is finalized early via CloseConsumer.
//
// A Consumer is used linearly: once an Active consumer's Push returns Done,
// or once CloseConsumer is called, neither may be called again.
type Consumer[A, B any] struct {
	kind    consumerKind
	value   B
	suspend func() (Consumer[A, B], error)
	push    func(A) (PushResult[A, B], error)
	finish  func() (B, error)
	used    *bool
}

// NoData returns a Consumer that already holds its result and consumes
// nothing. Connecting it to a Producer never pulls or closes that
// producer.
func NoData[A, B any](value B) Consumer[A, B] {
	return Consumer[A, B]{kind: consumerNoData, value: value}
}

// Suspend returns a Consumer that, before anything else, must run resume in
// the effect context to obtain the Consumer to actually use.
func Suspend[A, B any](resume func() (Consumer[A, B], error)) Consumer[A, B] {
	return Consumer[A, B]{kind: consumerSuspend, suspend: resume}
}

// Active returns a Consumer that accepts values through push until push
// returns Done, and that can also be finalized early through close.
func Active[A, B any](push func(A) (PushResult[A, B], error), close func() (B, error)) Consumer[A, B] {
	return Consumer[A, B]{kind: consumerActive, push: push, finish: close, used: new(bool)}
}

// Push feeds value into this consumer. It panics if this Consumer is not
// Active, or has already been pushed to or closed; further input goes to
// the continuation in the returned PushResult.
func (c Consumer[A, B]) Push(value A) (PushResult[A, B], error) {
	if c.kind != consumerActive {
		panic("conduit: Push called on a non-Active Consumer")
	}
	if *c.used {
		panic("conduit: Push called on an already-finalized Consumer")
	}
	*c.used = true
	return c.push(value)
}

// CloseConsumer finalizes this consumer without further input, yielding its
// result. It panics if this Consumer is not Active, or has already been
// pushed to or closed.
func (c Consumer[A, B]) CloseConsumer() (B, error) {
	if c.kind != consumerActive {
		panic("conduit: CloseConsumer called on a non-Active Consumer")
	}
	if *c.used {
		panic("conduit: CloseConsumer called on an already-finalized Consumer")
	}
	*c.used = true
	return c.finish()
}

// Fold returns a Consumer that threads every value it receives through step
// starting from initial, yielding the final accumulator when the producer
// closes. It never returns Done on its own (it has no reason to stop
// early).
func Fold[A, B any](initial B, step func(B, A) B) Consumer[A, B] {
	return foldConsumer(initial, step)
}

func foldConsumer[A, B any](acc B, step func(B, A) B) Consumer[A, B] {
	return Active(
		func(a A) (PushResult[A, B], error) {
			return PushRunning[A, B](foldConsumer(step(acc, a), step)), nil
		},
		func() (B, error) { return acc, nil },
	)
}

// Collect returns a Consumer that appends every value it receives to a
// slice, in order, yielding that slice when the producer closes.
func Collect[A any]() Consumer[A, []A] {
	return Fold[A, []A](nil, func(acc []A, a A) []A { return append(acc, a) })
}

// Take returns a Consumer that reads exactly n values (or fewer, if the
// producer closes first) and returns Done with no leftover as soon as the
// nth value is pushed. A non-positive n returns NoData immediately.
func Take[A any](n int) Consumer[A, []A] {
	if n <= 0 {
		return NoData[A, []A](nil)
	}
	return takeConsumer[A](n, make([]A, 0, n))
}

func takeConsumer[A any](remaining int, acc []A) Consumer[A, []A] {
	return Active(
		func(a A) (PushResult[A, []A], error) {
			acc := append(acc, a)
			if remaining == 1 {
				return PushDone[A, []A](None[A](), acc), nil
			}
			return PushRunning[A, []A](takeConsumer[A](remaining-1, acc)), nil
		},
		func() ([]A, error) { return acc, nil },
	)
}

// Call returns a Consumer that invokes f on every value it receives and
// finishes, with a bare struct{} result, only when the producer closes.
func Call[A any](f func(A)) Consumer[A, struct{}] {
	return callConsumer[A](f)
}

func callConsumer[A any](f func(A)) Consumer[A, struct{}] {
	return Active(
		func(a A) (PushResult[A, struct{}], error) {
			f(a)
			return PushRunning[A, struct{}](callConsumer(f)), nil
		},
		func() (struct{}, error) { return struct{}{}, nil },
	)
}

// Discard returns a Consumer that ignores every value it receives.
func Discard[A any]() Consumer[A, struct{}] {
	return Call(func(A) {})
}
