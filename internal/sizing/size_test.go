package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUint64(t *testing.T) {
	t.Parallel()

	sum, ok := AddUint64(40, 2)
	require.True(t, ok)
	assert.Equal(t, uint64(42), sum)

	_, ok = AddUint64(math.MaxUint64, 1)
	assert.False(t, ok)
}

func TestSumUint64(t *testing.T) {
	t.Parallel()

	sum, ok := SumUint64(100, 50, 25)
	require.True(t, ok)
	assert.Equal(t, uint64(175), sum)

	sum, ok = SumUint64()
	require.True(t, ok)
	assert.Zero(t, sum)

	_, ok = SumUint64(math.MaxUint64-1, 1, 1)
	assert.False(t, ok)
}
