package conduit

type flushKind byte

const (
	flushChunk flushKind = iota
	flushSignal
)

// Flush[A] wraps a value in a stream with a marker saying whether it is
// ordinary data (Chunk) or a flush signal asking downstream to act on
// whatever it has buffered so far without waiting for more input. It is a
// convenience for transformers that need a way to be told "emit now" from
// upstream, without baking that policy into every transformer's own push
// signature. No transformer in this package consumes Flush values.
type Flush[A any] struct {
	kind  flushKind
	chunk A
}

// Chunk wraps an ordinary value.
func Chunk[A any](value A) Flush[A] {
	return Flush[A]{kind: flushChunk, chunk: value}
}

// FlushSignal constructs a bare flush marker carrying no data.
func FlushSignal[A any]() Flush[A] {
	return Flush[A]{kind: flushSignal}
}

// IsFlush reports whether this value is a flush signal rather than a chunk.
func (f Flush[A]) IsFlush() bool {
	return f.kind == flushSignal
}

// Value returns the wrapped value. It panics if this Flush is a signal.
func (f Flush[A]) Value() A {
	if f.kind != flushChunk {
		panic("conduit: Value called on a Flush signal")
	}
	return f.chunk
}

// MapFlush applies f to value's chunk, leaving a signal untouched.
func MapFlush[A, B any](f func(A) B, value Flush[A]) Flush[B] {
	if value.kind == flushSignal {
		return FlushSignal[B]()
	}
	return Chunk(f(value.chunk))
}
