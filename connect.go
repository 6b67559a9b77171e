package conduit

// Connect drives producer into consumer and returns the consumer's final
// result.
//
//   - If consumer is NoData(b), b is returned immediately; producer is
//     never pulled or closed.
//   - If consumer is Suspend(m), m is run and Connect retries with the
//     resulting consumer.
//   - If consumer is Active, Connect pulls producer and pushes each value
//     into consumer until the producer closes (in which case the consumer
//     is closed and its result returned) or the consumer returns Done (in
//     which case the producer's continuation is closed, any leftover is
//     discarded, and the consumer's result is returned).
//
// Connect unconditionally closes the producer once the consumer is Done,
// even if a leftover was handed back — the leftover is intentionally lost.
// Use ConnectBuffered with a BufferedProducer to preserve it instead.
func Connect[A, B any](producer Producer[A], consumer Consumer[A, B]) (B, error) {
	switch consumer.kind {
	case consumerNoData:
		return consumer.value, nil
	case consumerSuspend:
		next, err := consumer.suspend()
		if err != nil {
			var zero B
			return zero, err
		}
		return Connect(producer, next)
	case consumerActive:
		return connectActive(producer, consumer)
	default:
		panic("conduit: unreachable Consumer kind")
	}
}

func connectActive[A, B any](producer Producer[A], consumer Consumer[A, B]) (B, error) {
	for {
		pr, err := producer.Pull()
		if err != nil {
			var zero B
			return zero, err
		}
		if !pr.IsOpen() {
			return consumer.CloseConsumer()
		}
		next, a := pr.Open()
		res, err := consumer.Push(a)
		if err != nil {
			var zero B
			return zero, err
		}
		if res.IsDone() {
			_, b := res.Done()
			if err := next.Close(); err != nil {
				var zero B
				return zero, err
			}
			return b, nil
		}
		producer = next
		consumer = res.Running()
	}
}

// ConnectBuffered drives a BufferedProducer into consumer, exactly like
// Connect, except values are read through bp.Pull rather than bp's
// underlying producer directly, the underlying producer is never closed,
// and a leftover handed back by a Done consumer is written back into bp
// rather than discarded.
func ConnectBuffered[A, B any](bp *BufferedProducer[A], consumer Consumer[A, B]) (B, error) {
	switch consumer.kind {
	case consumerNoData:
		return consumer.value, nil
	case consumerSuspend:
		next, err := consumer.suspend()
		if err != nil {
			var zero B
			return zero, err
		}
		return ConnectBuffered(bp, next)
	case consumerActive:
		return connectBufferedActive(bp, consumer)
	default:
		panic("conduit: unreachable Consumer kind")
	}
}

func connectBufferedActive[A, B any](bp *BufferedProducer[A], consumer Consumer[A, B]) (B, error) {
	for {
		opt, err := bp.Pull()
		if err != nil {
			var zero B
			return zero, err
		}
		a, ok := opt.Get()
		if !ok {
			return consumer.CloseConsumer()
		}
		res, err := consumer.Push(a)
		if err != nil {
			var zero B
			return zero, err
		}
		if res.IsDone() {
			leftover, b := res.Done()
			bp.Unpull(leftover)
			return b, nil
		}
		consumer = res.Running()
	}
}
