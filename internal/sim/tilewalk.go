// Package sim owns the fixed-rate tick loop: bicycle-model car kinematics,
// swept-corner wall collision and finish-line crossing, sensor construction,
// and the Run entry point, per spec.md §4.3. Everything here operates on a
// read-only *track.Track.
package sim

import (
	"math"

	"goracer/internal/geometry"
	"goracer/internal/track"
)

// lineOf is the per-tile predicate the tile-walking cast is parameterised
// over: it yields the segment a tile should be tested against, or false if
// the tile has none (spec.md §9's "unifying abstraction").
type lineOf func(t track.Tile) (geometry.Point, geometry.Point, bool)

// borderLine is the lineOf predicate used for wall collision: every Border
// tile's wall segment, nothing for Inside/Outside tiles.
func borderLine(t track.Tile) (geometry.Point, geometry.Point, bool) {
	if t.Kind != track.Border {
		return geometry.Point{}, geometry.Point{}, false
	}
	return t.Segment[0], t.Segment[1], true
}

// finishLineOf builds the lineOf predicate used for finish-line crossing:
// the track's single finish segment, but only for tiles marked as containing
// it.
func finishLineOf(f1, f2 geometry.Point) lineOf {
	return func(t track.Tile) (geometry.Point, geometry.Point, bool) {
		if !t.ContainsFinishLine {
			return geometry.Point{}, geometry.Point{}, false
		}
		return f1, f2, true
	}
}

// walkTiles casts the segment [start, end] through the grid one tile at a
// time, testing getLine(tile) against the portion of the segment inside each
// tile, and returns the first crossing point found. It implements spec.md
// §4.3.2 exactly: tie-break horizontal edges before vertical, inclusive
// bounds, and a tile is only evaluated once the walk has entered it.
//
// A crossing is accepted within boundsEpsilon of the [cur, next] rectangle,
// so a wall lying on the tile edge where next sits is not lost to rounding
// between the two intersection computations.
const boundsEpsilon = 1e-9

func walkTiles(t *track.Track, start, end geometry.Point, getLine lineOf) (geometry.Point, bool) {
	cur := start
	row, col := t.TileIndex(start)

	for {
		minX, minY := float64(col)*track.TileSize, float64(row)*track.TileSize
		maxX, maxY := minX+track.TileSize, minY+track.TileSize

		var next geometry.Point
		nextRow, nextCol := row, col

		if geometry.InsideRectangle(end, geometry.Point{X: minX, Y: minY}, geometry.Point{X: maxX, Y: maxY}) {
			next = end
		} else {
			found := false

			if end.Y > start.Y {
				if p, ok := geometry.Intersection(start, end, geometry.Point{X: minX, Y: maxY}, geometry.Point{X: maxX, Y: maxY}); ok &&
					p.X >= minX && p.X <= maxX {
					next, nextRow, found = p, row+1, true
				}
			} else if end.Y < start.Y {
				if p, ok := geometry.Intersection(start, end, geometry.Point{X: minX, Y: minY}, geometry.Point{X: maxX, Y: minY}); ok &&
					p.X >= minX && p.X <= maxX {
					next, nextRow, found = p, row-1, true
				}
			}

			if !found {
				if end.X > start.X {
					if p, ok := geometry.Intersection(start, end, geometry.Point{X: maxX, Y: minY}, geometry.Point{X: maxX, Y: maxY}); ok &&
						p.Y >= minY && p.Y <= maxY {
						next, nextCol, found = p, col+1, true
					}
				} else if end.X < start.X {
					if p, ok := geometry.Intersection(start, end, geometry.Point{X: minX, Y: minY}, geometry.Point{X: minX, Y: maxY}); ok &&
						p.Y >= minY && p.Y <= maxY {
						next, nextCol, found = p, col-1, true
					}
				}
			}

			if !found {
				// The segment is degenerate or exactly axis-parallel and
				// contained within this tile's row/column band: it cannot
				// reach end without crossing an edge we just failed to
				// find. Treat end as reached to guarantee termination.
				next, nextRow, nextCol = end, row, col
			}
		}

		tile := tileAtIndex(t, row, col)
		if s, e, ok := getLine(tile); ok {
			lo := geometry.Point{X: math.Min(cur.X, next.X) - boundsEpsilon, Y: math.Min(cur.Y, next.Y) - boundsEpsilon}
			hi := geometry.Point{X: math.Max(cur.X, next.X) + boundsEpsilon, Y: math.Max(cur.Y, next.Y) + boundsEpsilon}
			if p, ok := geometry.Intersection(cur, next, s, e); ok && geometry.InsideRectangle(p, lo, hi) {
				return p, true
			}
		}

		if next == end {
			return geometry.Point{}, false
		}
		cur, row, col = next, nextRow, nextCol
	}
}

// tileAtIndex returns the grid tile at (row, col), or Outside if either index
// falls outside the grid.
func tileAtIndex(t *track.Track, row, col int) track.Tile {
	if row < 0 || row >= t.Height || col < 0 || col >= t.Width {
		return track.Tile{Kind: track.Outside}
	}
	return t.Grid[row][col]
}
