package sim

import (
	"goracer/internal/geometry"
	"goracer/internal/track"
)

// hitWall reports whether the swept corner segment (before, after) crosses a
// Border tile's wall segment anywhere along its path, per spec.md §4.3.4. As
// a safety net, a sweep that ends on an Outside tile (or beyond the grid) is
// also treated as a hit, even though a correctly compiled track should never let the tile
// walk miss such a crossing.
func hitWall(t *track.Track, before, after geometry.Point) bool {
	if _, ok := walkTiles(t, before, after, borderLine); ok {
		return true
	}
	return t.TileAt(after).Kind == track.Outside
}
