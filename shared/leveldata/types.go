// Package leveldata reads skirmish map headers from Tiled TMX files.
// It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

// MapInfo is what the skirmish setup screen needs to know about a map.
type MapInfo struct {
	Name    string // file stem, used as the level identifier
	Title   string // "title" map property, falls back to Name
	Path    string
	Width   int // tiles
	Height  int
	Players int // start positions
}

// StartPosition is one player start location.
type StartPosition struct {
	X, Y  float64
	Index int
}
