package conduit

// MidFuse composes two transformers into one: pushing an A into the result
// pushes it through first, feeding every B first emits into second, and
// the C values second itself emits while draining a burst are relayed
// onward. MidFuse is structurally RightFuse with a Transformer playing the
// role RightFuse gives to a Consumer, generalized to let second's own
// pushes also return HaveMore bursts (a Consumer's push cannot).
func MidFuse[A, B, C any](first Transformer[A, B], second Transformer[B, C]) Transformer[A, C] {
	return NewTransformer[A, C](
		func(a A) (TResult[A, C], error) { return midFusePush(first, second, a) },
		midFuseDrain(first, second),
	)
}

// midFuseDrain defers calling first.Close() until the composed drain
// producer is actually pulled from or closed, so that constructing a
// MidFuse transformer never forces a choice between pushing to first and
// closing it.
func midFuseDrain[A, B, C any](first Transformer[A, B], second Transformer[B, C]) Producer[C] {
	return NewProducer[C](
		func() (PullResult[C], error) { return LeftFuse(first.Close(), second).Pull() },
		func() error { return LeftFuse(first.Close(), second).Close() },
	)
}

func midFusePush[A, B, C any](first Transformer[A, B], second Transformer[B, C], a A) (TResult[A, C], error) {
	res1, err := first.Push(a)
	if err != nil {
		return TResult[A, C]{}, err
	}
	switch res1.tag() {
	case tResultRunning:
		return TRunning[A, C](MidFuse(res1.Running(), second)), nil
	case tResultFinished:
		return TFinished[A, C](res1.Finished()), nil
	case tResultHaveMore:
		pullMore1, closeInner1, bval := res1.HaveMore()
		return midFusePushInner(second, bval, pullMore1, closeInner1)
	default:
		panic("conduit: unreachable TResult kind")
	}
}

// midFusePushInner feeds one B value (drawn from first's burst) into
// second and continues from whatever second does with it.
func midFusePushInner[A, B, C any](second Transformer[B, C], bval B, pullMore1 func() (TResult[A, B], error), closeInner1 func() error) (TResult[A, C], error) {
	res2, err := second.Push(bval)
	if err != nil {
		return TResult[A, C]{}, err
	}
	return midFuseContinue(res2, pullMore1, closeInner1)
}

// midFuseContinue interprets second's TResult[B,C] in the context of
// first's in-progress burst (pullMore1/closeInner1), fetching the next B
// from that burst once second is ready for it.
func midFuseContinue[A, B, C any](res2 TResult[B, C], pullMore1 func() (TResult[A, B], error), closeInner1 func() error) (TResult[A, C], error) {
	switch res2.tag() {
	case tResultFinished:
		// second's own leftover is of type B and cannot escape at the A/C
		// boundary; it is discarded, per spec.
		if err := closeInner1(); err != nil {
			return TResult[A, C]{}, err
		}
		return TFinished[A, C](None[A]()), nil
	case tResultRunning:
		return midFuseDrainFirst(res2.Running(), pullMore1, closeInner1)
	case tResultHaveMore:
		pullMore2, closeInner2, cval := res2.HaveMore()
		composedPullMore := func() (TResult[A, C], error) {
			res2b, err := pullMore2()
			if err != nil {
				return TResult[A, C]{}, err
			}
			return midFuseContinue(res2b, pullMore1, closeInner1)
		}
		composedCloseInner := func() error {
			if err := closeInner2(); err != nil {
				return err
			}
			return closeInner1()
		}
		return THaveMore[A, C](composedPullMore, composedCloseInner, cval), nil
	default:
		panic("conduit: unreachable TResult kind")
	}
}

// midFuseDrainFirst resumes first's burst (via pullMore1) now that second
// is ready for the next B, and feeds whatever comes next into second.
func midFuseDrainFirst[A, B, C any](second Transformer[B, C], pullMore1 func() (TResult[A, B], error), closeInner1 func() error) (TResult[A, C], error) {
	res1, err := pullMore1()
	if err != nil {
		return TResult[A, C]{}, err
	}
	switch res1.tag() {
	case tResultRunning:
		return TRunning[A, C](MidFuse(res1.Running(), second)), nil
	case tResultFinished:
		return TFinished[A, C](res1.Finished()), nil
	case tResultHaveMore:
		nextPullMore1, nextCloseInner1, bval := res1.HaveMore()
		return midFusePushInner(second, bval, nextPullMore1, nextCloseInner1)
	default:
		panic("conduit: unreachable TResult kind")
	}
}
