// Package mapfile reads and writes tile map files.
//
// A map file starts with a "<width> <height>" line followed by width*height
// whitespace separated tile indices in row-major order.
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned for text that is not a map file
	ErrMalformed = errors.New("malformed map file")
	// ErrDimensions is returned when the header and the tile count disagree
	ErrDimensions = errors.New("invalid map dimensions")
)

// EmptyMap is written when a map file is missing
const EmptyMap = "0 0\n"

// MaxTiles bounds width*height of a map file
const MaxTiles = 1 << 24

// tileCount returns width*height, or false when a side is negative or the
// grid is larger than MaxTiles (each side on its own included, so a zero
// width cannot carry an unbounded height)
func tileCount(width, height int) (int, bool) {
	if width < 0 || height < 0 || width > MaxTiles || height > MaxTiles {
		return 0, false
	}
	if width != 0 && height > MaxTiles/width {
		return 0, false
	}
	return width * height, true
}

// Grid is the parsed content of a map file
type Grid struct {
	Width   int
	Height  int
	Indices []int
}

// At returns the tile index at a grid position
func (g Grid) At(col, row int) int {
	return g.Indices[col+g.Width*row]
}

// Parse reads a map file. Indices past width*height are ignored.
func Parse(r io.Reader) (Grid, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Grid{}, fmt.Errorf("failed to read header: %w", err)
	}

	dims := strings.Fields(header)
	if len(dims) != 2 {
		return Grid{}, fmt.Errorf("%w: header %q must be \"<width> <height>\"", ErrMalformed, strings.TrimSpace(header))
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return Grid{}, fmt.Errorf("%w: width %q: %v", ErrMalformed, dims[0], err)
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return Grid{}, fmt.Errorf("%w: height %q: %v", ErrMalformed, dims[1], err)
	}
	n, ok := tileCount(width, height)
	if !ok {
		return Grid{}, fmt.Errorf("%w: %dx%d (at most %d tiles)", ErrDimensions, width, height, MaxTiles)
	}

	g := Grid{Width: width, Height: height, Indices: make([]int, 0, n)}
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for len(g.Indices) < n && sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return Grid{}, fmt.Errorf("%w: tile %d: %v", ErrMalformed, len(g.Indices), err)
		}
		g.Indices = append(g.Indices, v)
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("failed to read tiles: %w", err)
	}
	if len(g.Indices) < n {
		return Grid{}, fmt.Errorf("%w: %dx%d needs %d tiles, found %d", ErrDimensions, width, height, n, len(g.Indices))
	}
	return g, nil
}

// Encode writes g in map file form, one grid row per line
func Encode(w io.Writer, g Grid) error {
	if n, ok := tileCount(g.Width, g.Height); !ok || len(g.Indices) < n {
		return fmt.Errorf("%w: %dx%d with %d tiles", ErrDimensions, g.Width, g.Height, len(g.Indices))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width, g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(g.At(col, row)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
