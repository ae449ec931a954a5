package trace_test

import (
	"math"
	"testing"

	"github.com/arithlab/adder/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEvaluates(t *testing.T) {
	require.False(t, trace.Tracing())
	assert.Equal(t, uint64(4), trace.Add(trace.Lift(2), trace.Lift(2)).Value)
	assert.Equal(t, uint64(0), trace.Add(trace.Lift(math.MaxUint64), trace.Lift(1)).Value)
}

func TestAddRecords(t *testing.T) {
	trace.Start()
	require.True(t, trace.Tracing())

	v1 := trace.Input()
	v2 := trace.Input()
	v3 := trace.Add(v1, v2)
	trace.Add(v3, v3)

	scope := trace.Stop()
	require.False(t, trace.Tracing())
	assert.Equal(t, 2, scope.Len())

	listing := scope.String()
	assert.Contains(t, listing, "v3 := ")
	assert.Contains(t, listing, "(v1, v2)")
	assert.Contains(t, listing, "(v3, v3)")
}

func TestLiftedOperandsUnderTracing(t *testing.T) {
	trace.Start()
	v := trace.Add(trace.Input(), trace.Lift(7))
	scope := trace.Stop()

	require.NotNil(t, v.Variable)
	assert.Equal(t, 1, scope.Len())
	assert.Contains(t, scope.String(), "(v1)")
}
