package conduit_test

import (
	"strconv"
	"testing"

	"github.com/sergv/conduit"
	"github.com/stretchr/testify/assert"
)

func TestFlushChunk(t *testing.T) {
	assert := assert.New(t)
	f := conduit.Chunk(7)
	assert.False(f.IsFlush())
	assert.Equal(7, f.Value())
}

func TestFlushSignal(t *testing.T) {
	assert := assert.New(t)
	f := conduit.FlushSignal[int]()
	assert.True(f.IsFlush())
	assert.Panics(func() { f.Value() })
}

func TestMapFlushChunk(t *testing.T) {
	assert := assert.New(t)
	mapped := conduit.MapFlush(strconv.Itoa, conduit.Chunk(5))
	assert.False(mapped.IsFlush())
	assert.Equal("5", mapped.Value())
}

func TestMapFlushSignalPassesThrough(t *testing.T) {
	assert := assert.New(t)
	mapped := conduit.MapFlush(strconv.Itoa, conduit.FlushSignal[int]())
	assert.True(mapped.IsFlush())
}
