package conduit

// Pipeline[A,B] is a reusable recipe for a Transformer[A,B]: a thunk that
// builds a fresh Transformer each time it is called. Transformer values are
// one-shot — once pushed into or closed they panic if reused — so a
// Pipeline exists to be run many times, each run producing its own
// Transformer instance to consume.
type Pipeline[A, B any] func() Transformer[A, B]

// PipelineOf lifts a Transformer-constructing thunk into a Pipeline. The
// thunk must build a fresh, unused Transformer on every call.
func PipelineOf[A, B any](build func() Transformer[A, B]) Pipeline[A, B] {
	return build
}

// JoinPipeline composes two pipelines into one, via MidFuse.
func JoinPipeline[A, B, C any](first Pipeline[A, B], second Pipeline[B, C]) Pipeline[A, C] {
	return func() Transformer[A, C] {
		return MidFuse(first(), second())
	}
}

// RunPipeline attaches p to the input side of consumer and immediately
// drives producer through the result, via RightFuse and Connect. It is a
// free function rather than a method because Go does not let a generic
// method introduce a type parameter beyond its receiver's, and C cannot be
// determined from Pipeline[A,B] alone.
func RunPipeline[A, B, C any](p Pipeline[A, B], producer Producer[A], consumer Consumer[B, C]) (C, error) {
	return Connect(producer, RightFuse(p(), consumer))
}

// CollectPipeline runs p over producer and collects every B it emits into a
// slice.
func CollectPipeline[A, B any](p Pipeline[A, B], producer Producer[A]) ([]B, error) {
	return RunPipeline(p, producer, Collect[B]())
}

// CallPipeline runs p over producer, calling f on every B it emits.
func CallPipeline[A, B any](p Pipeline[A, B], producer Producer[A], f func(B)) error {
	_, err := RunPipeline(p, producer, Call(f))
	return err
}

// PipelineIdentity returns a Pipeline that emits every A value it receives
// unchanged.
func PipelineIdentity[A any]() Pipeline[A, A] {
	return func() Transformer[A, A] { return IdentityTransformer[A]() }
}

// PipelineMap returns a Pipeline that applies f to every value it receives.
func PipelineMap[A, B any](f func(A) B) Pipeline[A, B] {
	return func() Transformer[A, B] { return MapTransformer(f) }
}

// PipelineMaybeMap returns a Pipeline that applies f to every value it
// receives and emits the result only where f reports true.
func PipelineMaybeMap[A, B any](f func(A) (B, bool)) Pipeline[A, B] {
	return func() Transformer[A, B] { return MaybeMapTransformer(f) }
}

// PipelineFilter returns a Pipeline that emits only the values for which
// pred returns true.
func PipelineFilter[A any](pred func(A) bool) Pipeline[A, A] {
	return func() Transformer[A, A] { return FilterTransformer(pred) }
}

// PipelineTakeWhile returns a Pipeline that emits values up to, but not
// including, the first one for which pred returns false.
func PipelineTakeWhile[A any](pred func(A) bool) Pipeline[A, A] {
	return func() Transformer[A, A] { return TakeWhileTransformer(pred) }
}

// PipelineExplode returns a Pipeline that emits each value it receives
// copies times in a row.
func PipelineExplode[A any](copies int) Pipeline[A, A] {
	return func() Transformer[A, A] { return ExplodeTransformer[A](copies) }
}
