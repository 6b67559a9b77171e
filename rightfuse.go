package conduit

// RightFuse attaches transformer to the input side of consumer, returning
// a Consumer[A,C] that pushes A values through transformer and feeds the
// resulting B values to consumer.
func RightFuse[A, B, C any](transformer Transformer[A, B], consumer Consumer[B, C]) Consumer[A, C] {
	switch consumer.kind {
	case consumerNoData:
		value := consumer.value
		return Suspend[A, C](func() (Consumer[A, C], error) {
			if err := drainToClose(transformer.Close()); err != nil {
				var zero C
				return NoData[A, C](zero), err
			}
			return NoData[A, C](value), nil
		})
	case consumerSuspend:
		return Suspend[A, C](func() (Consumer[A, C], error) {
			next, err := consumer.suspend()
			if err != nil {
				var zero C
				return NoData[A, C](zero), err
			}
			return RightFuse(transformer, next), nil
		})
	case consumerActive:
		return rightFuseActive(transformer, consumer)
	default:
		panic("conduit: unreachable Consumer kind")
	}
}

func rightFuseActive[A, B, C any](t Transformer[A, B], c Consumer[B, C]) Consumer[A, C] {
	return Active(
		func(a A) (PushResult[A, C], error) {
			res, err := t.Push(a)
			if err != nil {
				return PushResult[A, C]{}, err
			}
			return rightFuseHandle(c, res)
		},
		func() (C, error) { return Connect(t.Close(), c) },
	)
}

// rightFuseHandle interprets a TResult[A,B] produced by the outer
// transformer in terms of the inner consumer c, producing the
// PushResult[A,C] the fused consumer hands back.
func rightFuseHandle[A, B, C any](c Consumer[B, C], res TResult[A, B]) (PushResult[A, C], error) {
	switch res.tag() {
	case tResultRunning:
		return PushRunning[A, C](rightFuseActive(res.Running(), c)), nil
	case tResultFinished:
		leftover := res.Finished()
		b, err := c.CloseConsumer()
		if err != nil {
			return PushResult[A, C]{}, err
		}
		return PushDone[A, C](leftover, b), nil
	case tResultHaveMore:
		pullMore, closeInner, bval := res.HaveMore()
		pres, err := c.Push(bval)
		if err != nil {
			return PushResult[A, C]{}, err
		}
		if pres.IsDone() {
			// The inner consumer's own leftover is of type B, the
			// transformer's output type, and cannot be returned across the
			// A/C boundary; it is discarded, per spec.
			_, cval := pres.Done()
			if err := closeInner(); err != nil {
				return PushResult[A, C]{}, err
			}
			return PushDone[A, C](None[A](), cval), nil
		}
		nextT, err := pullMore()
		if err != nil {
			return PushResult[A, C]{}, err
		}
		return rightFuseHandle(pres.Running(), nextT)
	default:
		panic("conduit: unreachable TResult kind")
	}
}
