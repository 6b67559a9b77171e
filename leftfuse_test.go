package conduit_test

import (
	"testing"

	"github.com/sergv/conduit"
	"github.com/stretchr/testify/assert"
)

func doubler() conduit.Transformer[int, int] {
	return conduit.MapTransformer(func(x int) int { return x * 2 })
}

func TestLeftFuseBasic(t *testing.T) {
	assert := assert.New(t)
	result, err := conduit.Connect(
		conduit.LeftFuse(conduit.Range(0, 3), doubler()),
		conduit.Collect[int](),
	)
	assert.NoError(err)
	assert.Equal([]int{0, 2, 4}, result)
}

func TestLeftFuseSwitchesToDrainOnUpstreamClose(t *testing.T) {
	assert := assert.New(t)
	result, err := conduit.Connect(
		conduit.LeftFuse(conduit.Range(0, 5), conduit.BufferAllTransformer[int]()),
		conduit.Collect[int](),
	)
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2, 3, 4}, result)
}

func TestLeftFuseExplodeBurst(t *testing.T) {
	assert := assert.New(t)
	result, err := conduit.Connect(
		conduit.LeftFuse(conduit.Range(0, 3), conduit.ExplodeTransformer[int](3)),
		conduit.Collect[int](),
	)
	assert.NoError(err)
	assert.Equal([]int{0, 0, 0, 1, 1, 1, 2, 2, 2}, result)
}

func TestLeftFuseDiscardsLeftoverFromPlainProducer(t *testing.T) {
	assert := assert.New(t)
	fused := conduit.LeftFuse(
		conduit.Range(0, 10),
		conduit.TakeWhileTransformer(func(x int) bool { return x < 3 }),
	)
	result, err := conduit.Connect(fused, conduit.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2}, result)
}

func TestLeftFuseBufferedPreservesLeftover(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.Range(0, 10))
	fused := conduit.LeftFuseBuffered(bp, conduit.TakeWhileTransformer(func(x int) bool { return x < 3 }))
	first, err := conduit.Connect(fused, conduit.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2}, first)

	rest, err := conduit.ConnectBuffered(bp, conduit.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{3, 4, 5, 6, 7, 8, 9}, rest)

	assert.NoError(bp.Close())
}

func TestLeftFuseCloseDrainsTransformerThenCloseProducer(t *testing.T) {
	assert := assert.New(t)
	var closedCount int
	producer := conduit.NewProducer[int](
		func() (conduit.PullResult[int], error) {
			return conduit.OpenPull(conduit.Empty[int](), 1), nil
		},
		func() error {
			closedCount++
			return nil
		},
	)
	fused := conduit.LeftFuse(producer, doubler())
	assert.NoError(fused.Close())
	assert.Equal(1, closedCount)
}
