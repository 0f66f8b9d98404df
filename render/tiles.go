package render

import "github.com/milk9111/journey/common"

// TileKind is the ground type of one map tile.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileWater
	TileFlowerGold
	TileFlowerPink
	TileFlowerRose
)

// lcg is the 32-bit linear congruential generator the map layout is seeded
// with. The same seed always yields the same map.
type lcg struct {
	state uint32
}

func (g *lcg) next() float64 {
	g.state = g.state*1664525 + 1013904223
	return float64(g.state) / (1 << 32)
}

// TileMap is the static ground layout: water around the border, grass with
// scattered flowers inside.
type TileMap struct {
	Cols  int
	Rows  int
	kinds []TileKind
	// sparkle marks water tiles that get a highlight pixel.
	sparkle []bool
}

func NewTileMap(cols, rows int, seed uint32) *TileMap {
	m := &TileMap{
		Cols:    cols,
		Rows:    rows,
		kinds:   make([]TileKind, cols*rows),
		sparkle: make([]bool, cols*rows),
	}
	rng := lcg{state: seed}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := y*cols + x
			edge := x < 2 || y < 2 || x > cols-3 || y > rows-3
			if edge && rng.next() < 0.88 {
				m.kinds[i] = TileWater
				continue
			}
			switch r := rng.next(); {
			case r < 0.18:
				m.kinds[i] = TileFlowerGold
			case r < 0.24:
				m.kinds[i] = TileFlowerPink
			case r < 0.26:
				m.kinds[i] = TileFlowerRose
			}
		}
	}

	rng = lcg{state: seed}
	for i, k := range m.kinds {
		if k == TileWater {
			m.sparkle[i] = rng.next() < 0.15
		}
	}
	return m
}

// DefaultTileMap covers the logical screen.
func DefaultTileMap(seed uint32) *TileMap {
	return NewTileMap(common.BaseWidth/common.TileSize, common.BaseHeight/common.TileSize, seed)
}

func (m *TileMap) At(x, y int) TileKind {
	if x < 0 || y < 0 || x >= m.Cols || y >= m.Rows {
		return TileWater
	}
	return m.kinds[y*m.Cols+x]
}

func (m *TileMap) Sparkles(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Cols || y >= m.Rows {
		return false
	}
	return m.sparkle[y*m.Cols+x]
}
