package conduit

// LeftFuse attaches transformer to the output side of producer, returning
// a new Producer[B] whose pulls drive producer through transformer. When
// producer closes, the fused producer switches identity to transformer's
// drain: subsequent pulls come from the drain's own continuation directly,
// with no further involvement from this fuse.
func LeftFuse[A, B any](producer Producer[A], transformer Transformer[A, B]) Producer[B] {
	return flOpenProducer(producer, transformer)
}

func flOpenProducer[A, B any](p Producer[A], t Transformer[A, B]) Producer[B] {
	return NewProducer[B](
		func() (PullResult[B], error) { return flPullOpen(p, t) },
		func() error { return flCloseOpen(p, t) },
	)
}

func flHaveMoreProducer[A, B any](p Producer[A], pullMore func() (TResult[A, B], error), closeInner func() error) Producer[B] {
	return NewProducer[B](
		func() (PullResult[B], error) { return flPullHaveMore(p, pullMore) },
		func() error { return flCloseHaveMore[A, B](p, closeInner) },
	)
}

func flPullOpen[A, B any](p Producer[A], t Transformer[A, B]) (PullResult[B], error) {
	pr, err := p.Pull()
	if err != nil {
		return PullResult[B]{}, err
	}
	if !pr.IsOpen() {
		// Upstream closed (and thereby finalized itself); the transformer's
		// drain becomes the tail producer from here on.
		return t.Close().Pull()
	}
	next, a := pr.Open()
	res, err := t.Push(a)
	if err != nil {
		return PullResult[B]{}, err
	}
	return flHandleTResult(next, res)
}

func flPullHaveMore[A, B any](p Producer[A], pullMore func() (TResult[A, B], error)) (PullResult[B], error) {
	res, err := pullMore()
	if err != nil {
		return PullResult[B]{}, err
	}
	return flHandleTResult(p, res)
}

func flHandleTResult[A, B any](p Producer[A], res TResult[A, B]) (PullResult[B], error) {
	switch res.tag() {
	case tResultRunning:
		return flPullOpen(p, res.Running())
	case tResultFinished:
		// Leftover input is discarded here: p is a plain Producer, and per
		// the spec this asymmetry (discard for plain, preserve for
		// buffered) is deliberate. See LeftFuseBuffered.
		if err := p.Close(); err != nil {
			return PullResult[B]{}, err
		}
		return ClosedPull[B](), nil
	case tResultHaveMore:
		pullMore, closeInner, b := res.HaveMore()
		return OpenPull[B](flHaveMoreProducer(p, pullMore, closeInner), b), nil
	default:
		panic("conduit: unreachable TResult kind")
	}
}

func flCloseOpen[A, B any](p Producer[A], t Transformer[A, B]) error {
	if err := drainToClose(t.Close()); err != nil {
		return err
	}
	return p.Close()
}

func flCloseHaveMore[A, B any](p Producer[A], closeInner func() error) error {
	if err := closeInner(); err != nil {
		return err
	}
	return p.Close()
}

// LeftFuseBuffered attaches transformer to the output side of a
// BufferedProducer, returning a Producer[B] that pulls through bp instead
// of through a plain Producer[A]. It differs from LeftFuse in three ways
// required by BufferedProducer's contract: pulls go through bp.Pull, a
// Finished leftover is pushed back into bp with Unpull rather than
// discarded, and the returned producer's Close is a no-op — bp outlives
// this fused producer and is closed by its owner, not by this fuse.
func LeftFuseBuffered[A, B any](bp *BufferedProducer[A], transformer Transformer[A, B]) Producer[B] {
	return flbOpenProducer(bp, transformer)
}

func flbOpenProducer[A, B any](bp *BufferedProducer[A], t Transformer[A, B]) Producer[B] {
	return NewProducer[B](
		func() (PullResult[B], error) { return flbPullOpen(bp, t) },
		func() error { return nil },
	)
}

func flbHaveMoreProducer[A, B any](bp *BufferedProducer[A], pullMore func() (TResult[A, B], error)) Producer[B] {
	return NewProducer[B](
		func() (PullResult[B], error) { return flbPullHaveMore(bp, pullMore) },
		func() error { return nil },
	)
}

func flbPullOpen[A, B any](bp *BufferedProducer[A], t Transformer[A, B]) (PullResult[B], error) {
	opt, err := bp.Pull()
	if err != nil {
		return PullResult[B]{}, err
	}
	a, ok := opt.Get()
	if !ok {
		return t.Close().Pull()
	}
	res, err := t.Push(a)
	if err != nil {
		return PullResult[B]{}, err
	}
	return flbHandleTResult(bp, res)
}

func flbPullHaveMore[A, B any](bp *BufferedProducer[A], pullMore func() (TResult[A, B], error)) (PullResult[B], error) {
	res, err := pullMore()
	if err != nil {
		return PullResult[B]{}, err
	}
	return flbHandleTResult(bp, res)
}

func flbHandleTResult[A, B any](bp *BufferedProducer[A], res TResult[A, B]) (PullResult[B], error) {
	switch res.tag() {
	case tResultRunning:
		return flbPullOpen(bp, res.Running())
	case tResultFinished:
		bp.Unpull(res.Finished())
		return ClosedPull[B](), nil
	case tResultHaveMore:
		pullMore, _, b := res.HaveMore()
		return OpenPull[B](flbHaveMoreProducer(bp, pullMore), b), nil
	default:
		panic("conduit: unreachable TResult kind")
	}
}
