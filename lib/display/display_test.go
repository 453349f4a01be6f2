package display

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	s := strings.Repeat("0123456789", 11)
	lines := Lines(s, LineLength)
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], 50)
	assert.Len(t, lines[1], 50)
	assert.Equal(t, "0123456789", lines[2])
	assert.Equal(t, s, strings.Join(lines, ""))

	assert.Nil(t, Lines("", LineLength))
	assert.Equal(t, []string{"abc"}, Lines("abc", 0))
	assert.Equal(t, []string{"ab", "c"}, Lines("abc", 2))
	assert.Equal(t, []string{"пр", "ив"}, Lines("прив", 2))
}

func TestChunks(t *testing.T) {
	xs := make([]*big.Int, 23)
	for i := range xs {
		xs[i] = big.NewInt(int64(i))
	}
	chunks := Chunks(xs, ChunkSize)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 10)
	assert.Len(t, chunks[1], 10)
	assert.Len(t, chunks[2], 3)
	assert.Equal(t, int64(22), chunks[2][2].Int64())

	assert.Nil(t, Chunks([]int{}, ChunkSize))
	assert.Equal(t, [][]int{{1, 2, 3}}, Chunks([]int{1, 2, 3}, 0))
}

func TestList(t *testing.T) {
	assert.Equal(t, "[]", List(nil))
	assert.Equal(t, "[2790, 3000]", List([]*big.Int{big.NewInt(2790), big.NewInt(3000)}))
}
