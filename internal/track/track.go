// Package track compiles the ASCII racetrack description into a grid of
// tiles annotated with border geometry and finish-line membership, per
// spec.md §4.2. The grid is built once per course and shared read-only by
// every simulated run.
package track

import (
	"fmt"
	"math"
	"strings"

	"goracer/internal/car"
	"goracer/internal/geometry"
)

// Kind distinguishes the three tile states a compiled grid cell can be in.
type Kind int

const (
	// Outside is not part of the track.
	Outside Kind = iota
	// Inside is fully interior: all four neighbours are also part of the track.
	Inside
	// Border is part of the track but has at least one neighbour Outside;
	// Segment gives the two points where the wall crosses this tile's square.
	Border
)

// Tile is one cell of the compiled grid.
type Tile struct {
	Kind               Kind
	ContainsFinishLine bool
	// Segment is only meaningful when Kind == Border.
	Segment [2]geometry.Point
}

// TileSize is the fixed world-unit size of every tile, for every compiled track.
const TileSize = 2.0

// Track is the immutable, compiled representation of a racetrack.
type Track struct {
	Width, Height int // in tiles
	TileSize      float64
	// Grid is indexed Grid[row][col]; row 0 is the bottom row of the input.
	Grid            [][]Tile
	InitialCarState car.State
	// FinishLine is always horizontal, at the vertical centre of the start
	// tile, spanning the tiles marked as the finish line.
	FinishLine [2]geometry.Point
	Laps       int
}

// TileAt returns the grid tile containing the world point p, or Outside if p
// falls outside the grid bounds entirely.
func (t *Track) TileAt(p geometry.Point) Tile {
	col := int(math.Floor(p.X / t.TileSize))
	row := int(math.Floor(p.Y / t.TileSize))
	if row < 0 || row >= t.Height || col < 0 || col >= t.Width {
		return Tile{Kind: Outside}
	}
	return t.Grid[row][col]
}

// TileIndex returns the (row, col) of the tile containing p, without
// bounds-checking; callers must ensure p lies within the grid.
func (t *Track) TileIndex(p geometry.Point) (row, col int) {
	return int(math.Floor(p.Y / t.TileSize)), int(math.Floor(p.X / t.TileSize))
}

// BoundingRect returns the two opposite corners of the rectangle enclosing
// the whole compiled grid, in world units.
func (t *Track) BoundingRect() (geometry.Point, geometry.Point) {
	return geometry.Point{X: 0, Y: 0}, geometry.Point{
		X: float64(t.Width) * t.TileSize,
		Y: float64(t.Height) * t.TileSize,
	}
}

// ParseError is returned for any malformed track description. Row and Col
// are 1-based, matching the convention used for every error message below;
// they are zero when not applicable to the failure.
type ParseError struct {
	Msg      string
	Row, Col int
}

func (e *ParseError) Error() string {
	if e.Row == 0 && e.Col == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (at %d:%d)", e.Msg, e.Row, e.Col)
}

func errf(row, col int, format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Row: row, Col: col}
}

// Characters accepted inside the track description.
const (
	outOfBoundsChar = 'x'
	inBoundsChar    = ' '
	startTileChar   = 's'
	finishLineChar  = '*'
)

// charKind classifies one interior character, reporting false for anything
// outside the accepted alphabet.
func charKind(c byte) (isTrack, isStart, isFinish bool, ok bool) {
	switch c {
	case outOfBoundsChar:
		return false, false, false, true
	case inBoundsChar:
		return true, false, false, true
	case startTileChar:
		return true, true, false, true
	case finishLineChar:
		return true, false, true, true
	default:
		return false, false, false, false
	}
}

// rawRow is one interior row as originally written (top-to-bottom reading order).
type rawRow struct {
	isTrack, isStart, isFinish []bool
}

// Compile parses an ASCII racetrack description (spec.md §6's grammar) and
// builds the Track it describes, running the full validation pipeline:
// contiguity, skinniness, border resolution, and finish-line materialisation.
func Compile(input string, laps int) (*Track, error) {
	rows, width, startRow, startCol, err := parseGrid(input)
	if err != nil {
		return nil, err
	}
	height := len(rows)

	isPartOfTrack := floodFill(rows, width, height, startRow, startCol)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rows[y].isTrack[x] && !isPartOfTrack[y][x] {
				return nil, errf(0, 0, "some racetrack tiles are not reachable from the start")
			}
		}
	}

	grid, finishTileCount, err := resolveTiles(rows, isPartOfTrack, width, height)
	if err != nil {
		return nil, err
	}

	startCarPos := geometry.Point{
		X: (float64(startCol) + 0.5) * TileSize,
		Y: (float64(startRow) + 0.5) * TileSize,
	}

	finishLine, marked, err := materializeFinishLine(grid, startRow, startCol, startCarPos)
	if err != nil {
		return nil, err
	}
	if marked != finishTileCount {
		return nil, errf(0, 0, "malformed finish line; should span the track horizontally from the start tile")
	}

	return &Track{
		Width:    width,
		Height:   height,
		TileSize: TileSize,
		Grid:     grid,
		InitialCarState: car.State{
			Pos:   startCarPos,
			Angle: 3 * math.Pi / 2, // facing -y
			Speed: 0,
		},
		FinishLine: finishLine,
		Laps:       laps,
	}, nil
}

// parseGrid reads the framed ASCII grid, returning rows indexed bottom-up
// (row 0 is the bottom line of the input), the track width, and the (row,
// col) of the single start tile.
func parseGrid(input string) (rows []rawRow, width, startRow, startCol int, err error) {
	lines := strings.Split(input, "\n")
	// Accept exactly one optional trailing newline: Split on "a\n" yields a
	// trailing "" element, which we drop.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, 0, 0, 0, errf(0, 0, "expected at least a top and bottom frame row")
	}

	top := lines[0]
	if len(top) < 2 || top[0] != '+' || top[len(top)-1] != '+' {
		return nil, 0, 0, 0, errf(1, 1, "expected a starting '+'")
	}
	width = len(top) - 2
	if width < 1 {
		return nil, 0, 0, 0, errf(1, 1, "top row must contain at least one '-'")
	}
	for i := 1; i < len(top)-1; i++ {
		if top[i] != '-' {
			return nil, 0, 0, 0, errf(1, i+1, "expected top row to contain dashes ('-')")
		}
	}

	bottom := lines[len(lines)-1]
	if bottom != top {
		return nil, 0, 0, 0, errf(len(lines), 1, "expected bottom line to equal top")
	}

	interior := lines[1 : len(lines)-1]
	topRows := make([]rawRow, len(interior))
	startFound := false

	for i, line := range interior {
		lineNo := i + 2 // 1-based, +1 for the top frame row
		if len(line) != width+2 {
			return nil, 0, 0, 0, errf(lineNo, 1, "expected row %d to have width %d", lineNo, width)
		}
		if line[0] != '|' {
			return nil, 0, 0, 0, errf(lineNo, 1, "expected row %d to start with '|'", lineNo)
		}
		if line[len(line)-1] != '|' {
			return nil, 0, 0, 0, errf(lineNo, len(line), "expected trailing pipe ('|') at end of inner row")
		}

		row := rawRow{
			isTrack:  make([]bool, width),
			isStart:  make([]bool, width),
			isFinish: make([]bool, width),
		}
		for x := 0; x < width; x++ {
			c := line[1+x]
			isTr, isSt, isFi, ok := charKind(c)
			if !ok {
				return nil, 0, 0, 0, errf(lineNo, x+2,
					"expected one of '%c', '%c', '%c', or '%c'",
					outOfBoundsChar, inBoundsChar, startTileChar, finishLineChar)
			}
			row.isTrack[x] = isTr
			row.isStart[x] = isSt
			row.isFinish[x] = isFi

			if isSt {
				if startFound {
					return nil, 0, 0, 0, errf(lineNo, x+2, "multiple start tiles found")
				}
				startFound = true
				// Row index within the final (bottom-up) grid is assigned
				// once all rows are read and reversed, below.
				startCol = x
				startRow = i
			}
		}
		topRows[i] = row
	}

	if !startFound {
		return nil, 0, 0, 0, errf(0, 0, "no start tile found")
	}

	// The input is read top-to-bottom but the grid is indexed bottom-up.
	rows = make([]rawRow, len(topRows))
	for i, r := range topRows {
		rows[len(topRows)-1-i] = r
	}
	startRow = len(topRows) - 1 - startRow

	return rows, width, startRow, startCol, nil
}

// floodFill marks every tile reachable from (startRow, startCol) through
// 4-connected non-Outside neighbours.
func floodFill(rows []rawRow, width, height, startRow, startCol int) [][]bool {
	reached := make([][]bool, height)
	for y := range reached {
		reached[y] = make([]bool, width)
	}

	type coord struct{ x, y int }
	stack := []coord{{startCol, startRow}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.x < 0 || c.x >= width || c.y < 0 || c.y >= height {
			continue
		}
		if reached[c.y][c.x] || !rows[c.y].isTrack[c.x] {
			continue
		}
		reached[c.y][c.x] = true

		stack = append(stack,
			coord{c.x - 1, c.y},
			coord{c.x + 1, c.y},
			coord{c.x, c.y - 1},
			coord{c.x, c.y + 1},
		)
	}

	return reached
}

// direction enumerates the four neighbour directions in clockwise order
// starting at Up, matching spec.md §4.2's border-resolution table.
type direction int

const (
	dirUp direction = iota
	dirRight
	dirDown
	dirLeft
)

// resolveTiles builds the final grid, classifying every in-bounds tile as
// Inside or Border and resolving each Border tile's wall segment. It also
// enforces the skinniness invariant (spec.md §4.2 step 2) and returns the
// total count of tiles marked '*' in the input, for the finish-line check.
func resolveTiles(rows []rawRow, isPartOfTrack [][]bool, width, height int) ([][]Tile, int, error) {
	grid := make([][]Tile, height)
	finishTileCount := 0

	for y := 0; y < height; y++ {
		grid[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			if !rows[y].isTrack[x] {
				grid[y][x] = Tile{Kind: Outside}
				continue
			}
			if rows[y].isFinish[x] {
				finishTileCount++
			}

			upOutside := y+1 >= height || !isPartOfTrack[y+1][x]
			downOutside := y == 0 || !isPartOfTrack[y-1][x]
			leftOutside := x == 0 || !isPartOfTrack[y][x-1]
			rightOutside := x+1 >= width || !isPartOfTrack[y][x+1]

			if (upOutside && downOutside) || (leftOutside && rightOutside) {
				return nil, 0, errf(0, 0, "racetrack is too skinny around tile at (x = %d, y = %d)", x+1, y+1)
			}

			if !upOutside && !downOutside && !leftOutside && !rightOutside {
				grid[y][x] = Tile{Kind: Inside}
				continue
			}

			grid[y][x] = Tile{Kind: Border, Segment: borderSegment(x, y, upOutside, rightOutside, downOutside, leftOutside)}
		}
	}

	return grid, finishTileCount, nil
}

// borderSegment resolves the tile-square corners a border wall passes
// through, per the eight-case table in spec.md §4.2 step 3.
func borderSegment(x, y int, upOutside, rightOutside, downOutside, leftOutside bool) [2]geometry.Point {
	botLeft := geometry.Point{X: float64(x) * TileSize, Y: float64(y) * TileSize}
	botRight := geometry.Point{X: botLeft.X + TileSize, Y: botLeft.Y}
	topLeft := geometry.Point{X: botLeft.X, Y: botLeft.Y + TileSize}
	topRight := geometry.Point{X: botLeft.X + TileSize, Y: botLeft.Y + TileSize}

	// The outside sides, in clockwise order starting at Up; "mostClockwise"
	// records the last (most clockwise) outside direction seen, and
	// outsideCount how many there are. Exactly one or two outside sides are
	// possible here — the skinniness check above rules out three or four.
	outsideCount := 0
	mostClockwise := dirUp
	for _, pair := range []struct {
		d  direction
		on bool
	}{
		{dirUp, upOutside},
		{dirRight, rightOutside},
		{dirDown, downOutside},
		{dirLeft, leftOutside},
	} {
		if pair.on {
			outsideCount++
			mostClockwise = pair.d
		}
	}
	// Left and Up wrap around the clockwise order: of that pair, Up is the
	// more clockwise side.
	if upOutside && leftOutside {
		mostClockwise = dirUp
	}

	if outsideCount == 1 {
		switch mostClockwise {
		case dirUp:
			return [2]geometry.Point{topLeft, topRight}
		case dirDown:
			return [2]geometry.Point{botLeft, botRight}
		case dirLeft:
			return [2]geometry.Point{botLeft, topLeft}
		default: // dirRight
			return [2]geometry.Point{botRight, topRight}
		}
	}

	// Two adjacent outside sides: the border is the diagonal between the two
	// corners where the outside edges meet the inside edges.
	switch mostClockwise {
	case dirRight: // up + right
		return [2]geometry.Point{topLeft, botRight}
	case dirDown: // right + down
		return [2]geometry.Point{topRight, botLeft}
	case dirLeft: // down + left
		return [2]geometry.Point{topLeft, botRight}
	default: // dirUp: left + up
		return [2]geometry.Point{botLeft, topRight}
	}
}

// materializeFinishLine walks left and right from the start tile, marking
// every non-Outside tile's ContainsFinishLine flag until it hits the track
// boundary in each direction, per spec.md §4.2 step 4. It returns the
// finish-line endpoints and the number of tiles marked.
func materializeFinishLine(grid [][]Tile, startRow, startCol int, startCarPos geometry.Point) ([2]geometry.Point, int, error) {
	marked := 0

	// The start tile itself carries the finish line (a crossing through it
	// must be detectable too) but isn't a '*' in the input, so it's marked
	// without counting toward marked.
	grid[startRow][startCol].ContainsFinishLine = true

	leftEdge := startCarPos.X - TileSize/2
	for x := startCol - 1; x >= 0; x-- {
		if grid[startRow][x].Kind == Outside {
			break
		}
		grid[startRow][x].ContainsFinishLine = true
		marked++
		leftEdge = float64(x) * TileSize
	}

	rightEdge := startCarPos.X + TileSize/2
	width := len(grid[startRow])
	for x := startCol + 1; x < width; x++ {
		if grid[startRow][x].Kind == Outside {
			break
		}
		grid[startRow][x].ContainsFinishLine = true
		marked++
		rightEdge = float64(x+1) * TileSize
	}

	finishLine := [2]geometry.Point{
		{X: leftEdge, Y: startCarPos.Y},
		{X: rightEdge, Y: startCarPos.Y},
	}
	return finishLine, marked, nil
}
