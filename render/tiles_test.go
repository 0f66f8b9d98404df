package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileMapLayout(t *testing.T) {
	m := DefaultTileMap(1337)
	require.Equal(t, 60, m.Cols)
	require.Equal(t, 33, m.Rows)

	for x := 0; x < 8; x++ {
		assert.Equal(t, TileWater, m.At(x, 0), "row 0 col %d", x)
	}

	want := []TileKind{
		TileWater, TileWater, TileGrass, TileGrass, TileGrass, TileFlowerGold,
		TileGrass, TileGrass, TileGrass, TileGrass, TileGrass, TileFlowerGold,
	}
	for x, k := range want {
		assert.Equal(t, k, m.At(x, 5), "row 5 col %d", x)
	}
	assert.Equal(t, TileFlowerRose, m.At(32, 16))

	counts := map[TileKind]int{}
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			counts[m.At(x, y)]++
		}
	}
	assert.Equal(t, 1248, counts[TileGrass])
	assert.Equal(t, 308, counts[TileWater])
	assert.Equal(t, 301, counts[TileFlowerGold])
	assert.Equal(t, 90, counts[TileFlowerPink])
	assert.Equal(t, 33, counts[TileFlowerRose])
}

func TestTileMapDeterministic(t *testing.T) {
	a := NewTileMap(20, 10, 7)
	b := NewTileMap(20, 10, 7)
	c := NewTileMap(20, 10, 8)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestTileMapOutOfRange(t *testing.T) {
	m := NewTileMap(4, 4, 1)
	assert.Equal(t, TileWater, m.At(-1, 0))
	assert.Equal(t, TileWater, m.At(0, 4))
	assert.False(t, m.Sparkles(9, 9))
}

func TestSparklesOnlyOnWater(t *testing.T) {
	m := DefaultTileMap(1337)
	n := 0
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if m.Sparkles(x, y) {
				n++
				assert.Equal(t, TileWater, m.At(x, y))
			}
		}
	}
	assert.Greater(t, n, 0)
}
