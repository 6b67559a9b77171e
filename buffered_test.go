package conduit_test

import (
	"testing"

	"github.com/sergv/conduit"
	"github.com/stretchr/testify/assert"
)

func TestBufferedProducerPullThenUnpull(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1, 2, 3}))

	v, err := bp.Pull()
	assert.NoError(err)
	x, ok := v.Get()
	assert.True(ok)
	assert.Equal(1, x)

	bp.Unpull(conduit.Some(x))

	v, err = bp.Pull()
	assert.NoError(err)
	x, ok = v.Get()
	assert.True(ok)
	assert.Equal(1, x)

	assert.NoError(bp.Close())
}

func TestBufferedProducerUnpullOnAlreadyFullPanics(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1, 2}))
	bp.Unpull(conduit.Some(9))
	assert.Panics(func() { bp.Unpull(conduit.Some(10)) })
	assert.NoError(bp.Close())
}

func TestBufferedProducerUnpullNoneIsNoOp(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1}))
	bp.Unpull(conduit.None[int]())
	v, err := bp.Pull()
	assert.NoError(err)
	x, ok := v.Get()
	assert.True(ok)
	assert.Equal(1, x)
	assert.NoError(bp.Close())
}

func TestBufferedProducerCloseIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1, 2}))
	assert.NoError(bp.Close())
	assert.NoError(bp.Close())
	v, err := bp.Pull()
	assert.NoError(err)
	assert.False(v.IsSome())
}

func TestBufferedProducerCloseRetainsPendingElement(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1, 2}))
	bp.Unpull(conduit.Some(99))
	assert.NoError(bp.Close())
	v, err := bp.Pull()
	assert.NoError(err)
	x, ok := v.Get()
	assert.True(ok)
	assert.Equal(99, x)
	v, err = bp.Pull()
	assert.NoError(err)
	assert.False(v.IsSome())
}

func TestBufferedProducerUnbufferOpenEmpty(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1, 2, 3}))
	result, err := conduit.Connect(bp.Unbuffer(), conduit.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, result)
}

func TestBufferedProducerUnbufferOpenFull(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{2, 3}))
	bp.Unpull(conduit.Some(1))
	result, err := conduit.Connect(bp.Unbuffer(), conduit.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, result)
}

func TestBufferedProducerUnbufferClosed(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1, 2}))
	assert.NoError(bp.Close())
	result, err := conduit.Connect(bp.Unbuffer(), conduit.Collect[int]())
	assert.NoError(err)
	assert.Empty(result)
}

func TestBufferedProducerUsedAfterUnbufferPanics(t *testing.T) {
	assert := assert.New(t)
	bp := conduit.NewBufferedProducer(conduit.FromSlice([]int{1}))
	bp.Unbuffer()
	assert.Panics(func() { bp.Pull() })
	assert.Panics(func() { bp.Close() })
	assert.Panics(func() { bp.Unpull(conduit.Some(1)) })
	assert.Panics(func() { bp.Unbuffer() })
}
