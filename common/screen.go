package common

// Logical pixel-art resolution; the window scales it to fit.
const (
	BaseWidth  = 480
	BaseHeight = 270
	TileSize   = 8
)
