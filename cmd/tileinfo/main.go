// Command tileinfo prints the tile layout used by the displacement field
// functions for a grid of a given size.
//
// Usage:
//
//	tileinfo [flags]
//
// Examples:
//
//	tileinfo -rows 27 -cols 27 -factv 9 -facth 9
//	tileinfo -rows 100 -cols 80 -factv 11 -facth 11 -box 10,59,0,79
//	tileinfo -rows 27 -cols 27 -factv 9 -facth 9 -dx 30 -dy 30 -ox 500000 -oy 4200000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dic/dic/field"
	"github.com/cwbudde/algo-dic/dic/grid"
)

var errBoxFormat = errors.New("box must be rowmin,rowmax,colmin,colmax")

func main() {
	rows := flag.Int("rows", 27, "grid rows")
	cols := flag.Int("cols", 27, "grid columns")
	factv := flag.Int("factv", 9, "tile rows (odd)")
	facth := flag.Int("facth", 9, "tile columns (odd)")
	box := flag.String("box", "", "restrict tiles to rowmin,rowmax,colmin,colmax (0-based, inclusive)")
	dx := flag.Float64("dx", 1, "cell width in map units")
	dy := flag.Float64("dy", 1, "cell height in map units")
	ox := flag.Float64("ox", 0, "x coordinate of the left grid edge")
	oy := flag.Float64("oy", 0, "y coordinate of the top grid edge")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tileinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the tiles a displacement field computation would use.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		tiles []grid.Tile
		err   error
	)
	if *box == "" {
		tiles, err = grid.ThinMat(*rows, *cols, *factv, *facth)
	} else {
		var b grid.Bounds
		b, err = parseBox(*box)
		if err == nil {
			tiles, err = grid.ThinBox(*rows, *cols, b, *factv, *facth)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(tiles) == 0 {
		fmt.Fprintf(os.Stderr, "error: %v\n", field.ErrNoViableTiles)
		os.Exit(1)
	}

	ref := field.Affine{OriginX: *ox, OriginY: *oy, DX: *dx, DY: *dy}
	if err := printTiles(os.Stdout, tiles, ref); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseBox(s string) (grid.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return grid.Bounds{}, fmt.Errorf("%w: %q", errBoxFormat, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.Bounds{}, fmt.Errorf("%w: %q: %w", errBoxFormat, s, err)
		}
		v[i] = n
	}
	return grid.Bounds{RowMin: v[0], RowMax: v[1], ColMin: v[2], ColMax: v[3]}, nil
}

func printTiles(w io.Writer, tiles []grid.Tile, ref field.Georef) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Tile\tRowCent\tColCent\tRows\tCols\tCentX\tCentY\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t-------\t-------\t----\t----\t-----\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, t := range tiles {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d..%d\t%d..%d\t%.4f\t%.4f\n",
			i,
			t.RowCent,
			t.ColCent,
			t.RowMin, t.RowMax,
			t.ColMin, t.ColMax,
			ref.X(t.ColCent),
			ref.Y(t.RowCent),
		); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return tw.Flush()
}
