package conduit

// Optional[A] holds at most one A value. It is used wherever the spec calls
// for "leftover": the single possibly-absent element a consumer or
// transformer hands back when it terminates early.
type Optional[A any] struct {
	ok    bool
	value A
}

// Some returns an Optional holding value.
func Some[A any](value A) Optional[A] {
	return Optional[A]{ok: true, value: value}
}

// None returns an empty Optional.
func None[A any]() Optional[A] {
	return Optional[A]{}
}

// Get returns the held value and true, or the zero value and false.
func (o Optional[A]) Get() (A, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Optional[A]) IsSome() bool {
	return o.ok
}

// PullResult[A] is the result of pulling a Producer[A]: either Closed or
// Open(next, value). Construct with ClosedPull or OpenPull; never as a
// struct literal, so an inconsistent state can't be built by hand.
type PullResult[A any] struct {
	isOpen bool
	next   Producer[A]
	value  A
}

// ClosedPull is the result of pulling a producer that has no more values.
func ClosedPull[A any]() PullResult[A] {
	return PullResult[A]{}
}

// OpenPull is the result of pulling a producer that yielded value, with
// next as the continuation to pull from thereafter.
func OpenPull[A any](next Producer[A], value A) PullResult[A] {
	return PullResult[A]{isOpen: true, next: next, value: value}
}

// IsOpen reports whether this result carries a value.
func (r PullResult[A]) IsOpen() bool {
	return r.isOpen
}

// Open returns the continuation producer and the pulled value. It panics if
// this result is Closed.
func (r PullResult[A]) Open() (Producer[A], A) {
	if !r.isOpen {
		panic("conduit: Open called on a Closed PullResult")
	}
	return r.next, r.value
}

// PushResult[A,B] is the result of pushing a value into a Consumer[A,B]:
// either Done(leftover, b) or Running(next). Construct with PushDone or
// PushRunning.
type PushResult[A, B any] struct {
	isDone   bool
	leftover Optional[A]
	value    B
	next     Consumer[A, B]
}

// PushDone finishes a consumer with result value, optionally handing back
// one un-consumed input as leftover.
func PushDone[A, B any](leftover Optional[A], value B) PushResult[A, B] {
	return PushResult[A, B]{isDone: true, leftover: leftover, value: value}
}

// PushRunning means the consumer accepted its input and is ready for more;
// next is the continuation consumer.
func PushRunning[A, B any](next Consumer[A, B]) PushResult[A, B] {
	return PushResult[A, B]{next: next}
}

// IsDone reports whether this result finished the consumer.
func (r PushResult[A, B]) IsDone() bool {
	return r.isDone
}

// Done returns the leftover and final value. It panics if this result is
// Running.
func (r PushResult[A, B]) Done() (Optional[A], B) {
	if !r.isDone {
		panic("conduit: Done called on a Running PushResult")
	}
	return r.leftover, r.value
}

// Running returns the continuation consumer. It panics if this result is
// Done.
func (r PushResult[A, B]) Running() Consumer[A, B] {
	if r.isDone {
		panic("conduit: Running called on a Done PushResult")
	}
	return r.next
}

type tResultKind byte

const (
	tResultRunning tResultKind = iota
	tResultFinished
	tResultHaveMore
)

// TResult[A,B] is the result of pushing a value into a Transformer[A,B]:
// Running(next), Finished(leftover), or HaveMore(pullMore, closeInner,
// value). Construct with TRunning, TFinished, or THaveMore.
type TResult[A, B any] struct {
	kind       tResultKind
	next       Transformer[A, B]
	leftover   Optional[A]
	pullMore   func() (TResult[A, B], error)
	closeInner func() error
	value      B
}

// TRunning means the transformer accepted its input without emitting
// anything yet and is ready for more.
func TRunning[A, B any](next Transformer[A, B]) TResult[A, B] {
	return TResult[A, B]{kind: tResultRunning, next: next}
}

// TFinished terminates the transformer, optionally handing back one
// un-consumed input as leftover. Its drain has not yet been run; the fuser
// driving it decides whether to.
func TFinished[A, B any](leftover Optional[A]) TResult[A, B] {
	return TResult[A, B]{kind: tResultFinished, leftover: leftover}
}

// THaveMore emits one output value from the current burst. pullMore
// requests the next TResult in the burst without feeding a new input;
// closeInner finalizes the burst if it is abandoned before running dry.
func THaveMore[A, B any](pullMore func() (TResult[A, B], error), closeInner func() error, value B) TResult[A, B] {
	return TResult[A, B]{kind: tResultHaveMore, pullMore: pullMore, closeInner: closeInner, value: value}
}

func (r TResult[A, B]) tag() tResultKind {
	return r.kind
}

// IsRunning reports whether this result is Running.
func (r TResult[A, B]) IsRunning() bool { return r.kind == tResultRunning }

// IsFinished reports whether this result is Finished.
func (r TResult[A, B]) IsFinished() bool { return r.kind == tResultFinished }

// IsHaveMore reports whether this result is HaveMore.
func (r TResult[A, B]) IsHaveMore() bool { return r.kind == tResultHaveMore }

// Running returns the continuation transformer. It panics unless this
// result is Running.
func (r TResult[A, B]) Running() Transformer[A, B] {
	if r.kind != tResultRunning {
		panic("conduit: Running called on a non-Running TResult")
	}
	return r.next
}

// Finished returns the leftover input. It panics unless this result is
// Finished.
func (r TResult[A, B]) Finished() Optional[A] {
	if r.kind != tResultFinished {
		panic("conduit: Finished called on a non-Finished TResult")
	}
	return r.leftover
}

// HaveMore returns the burst's pullMore and closeInner actions plus the
// emitted value. It panics unless this result is HaveMore.
func (r TResult[A, B]) HaveMore() (func() (TResult[A, B], error), func() error, B) {
	if r.kind != tResultHaveMore {
		panic("conduit: HaveMore called on a non-HaveMore TResult")
	}
	return r.pullMore, r.closeInner, r.value
}
