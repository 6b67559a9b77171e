package conduit_test

import (
	"strconv"
	"testing"

	"github.com/sergv/conduit"
	"github.com/stretchr/testify/assert"
)

func TestPipelineBuildsFreshTransformerEachRun(t *testing.T) {
	assert := assert.New(t)
	p := conduit.PipelineMap(func(x int) int { return x * 2 })

	first, err := conduit.CollectPipeline(p, conduit.Range(0, 3))
	assert.NoError(err)
	assert.Equal([]int{0, 2, 4}, first)

	second, err := conduit.CollectPipeline(p, conduit.Range(0, 3))
	assert.NoError(err)
	assert.Equal([]int{0, 2, 4}, second)
}

func TestJoinPipeline(t *testing.T) {
	assert := assert.New(t)
	oddsTripled := conduit.JoinPipeline(
		conduit.PipelineFilter(func(x int) bool { return x%2 == 1 }),
		conduit.PipelineMap(func(x int) int { return 3 * x }),
	)
	asStrings := conduit.JoinPipeline(oddsTripled, conduit.PipelineMap(strconv.Itoa))

	result, err := conduit.CollectPipeline(asStrings, conduit.Range(0, 10))
	assert.NoError(err)
	assert.Equal([]string{"3", "9", "15", "21", "27"}, result)
}

func TestJoinPipelineWithTakeWhile(t *testing.T) {
	assert := assert.New(t)
	pipeline := conduit.JoinPipeline(
		conduit.PipelineTakeWhile(func(x int) bool { return x < 6 }),
		conduit.PipelineMaybeMap(func(x int) (int, bool) {
			if x%2 != 0 {
				return 0, false
			}
			return x * x, true
		}),
	)
	result, err := conduit.CollectPipeline(pipeline, conduit.Range(0, 20))
	assert.NoError(err)
	assert.Equal([]int{0, 4, 16}, result)
}

func TestPipelineIdentity(t *testing.T) {
	assert := assert.New(t)
	result, err := conduit.CollectPipeline(conduit.PipelineIdentity[int](), conduit.Range(0, 4))
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2, 3}, result)
}

func TestPipelineExplode(t *testing.T) {
	assert := assert.New(t)
	result, err := conduit.CollectPipeline(conduit.PipelineExplode[int](2), conduit.Range(0, 3))
	assert.NoError(err)
	assert.Equal([]int{0, 0, 1, 1, 2, 2}, result)
}

func TestCallPipeline(t *testing.T) {
	assert := assert.New(t)
	var seen []int
	err := conduit.CallPipeline(
		conduit.PipelineFilter(func(x int) bool { return x%2 == 0 }),
		conduit.Range(0, 6),
		func(x int) { seen = append(seen, x) },
	)
	assert.NoError(err)
	assert.Equal([]int{0, 2, 4}, seen)
}
