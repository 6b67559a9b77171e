package conduit_test

import (
	"strconv"
	"testing"

	"github.com/sergv/conduit"
	"github.com/stretchr/testify/assert"
)

func TestRightFuseBasic(t *testing.T) {
	assert := assert.New(t)
	consumer := conduit.RightFuse(conduit.MapTransformer(strconv.Itoa), conduit.Collect[string]())
	result, err := conduit.Connect(conduit.Range(0, 3), consumer)
	assert.NoError(err)
	assert.Equal([]string{"0", "1", "2"}, result)
}

func TestRightFuseInnerConsumerDoneEndsBurst(t *testing.T) {
	assert := assert.New(t)
	consumer := conduit.RightFuse(conduit.ExplodeTransformer[int](3), conduit.Take[int](4))
	result, err := conduit.Connect(conduit.Range(0, 10), consumer)
	assert.NoError(err)
	assert.Equal([]int{0, 0, 0, 1}, result)
}

func TestRightFuseAgainstNoData(t *testing.T) {
	assert := assert.New(t)
	drained := false
	transformer := conduit.NewTransformer[int, int](
		func(x int) (conduit.TResult[int, int], error) {
			return conduit.TRunning[int, int](conduit.IdentityTransformer[int]()), nil
		},
		conduit.NewProducer[int](
			func() (conduit.PullResult[int], error) {
				drained = true
				return conduit.ClosedPull[int](), nil
			},
			func() error { return nil },
		),
	)
	consumer := conduit.RightFuse(transformer, conduit.NoData[int, string]("fixed"))
	result, err := conduit.Connect(conduit.Range(0, 5), consumer)
	assert.NoError(err)
	assert.True(drained)
	assert.Equal("fixed", result)
}

func TestRightFuseTransformerFinishedClosesInnerConsumer(t *testing.T) {
	assert := assert.New(t)
	consumer := conduit.RightFuse(
		conduit.TakeWhileTransformer(func(x int) bool { return x < 4 }),
		conduit.Collect[int](),
	)
	result, err := conduit.Connect(conduit.Range(0, 10), consumer)
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2, 3}, result)
}
