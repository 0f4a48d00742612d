package dream

import (
	"fmt"

	"github.com/katalvlaran/pipedreams/sqmat"
)

// Dream is an n×n pipe dream. It is a value: no two dreams share storage,
// and every operator returns fresh, fully independent values.
type Dream struct {
	tiles *sqmat.SqMat[Tile]
}

// FromTiles builds a dream of dimension dim from a row-major tile slice.
// Panics unless len(tiles) == dim*dim (caller contract, see sqmat.FromSlice).
func FromTiles(dim int, tiles []Tile) Dream {
	return Dream{tiles: sqmat.FromSlice(dim, tiles)}
}

// Long returns the seed dream of size n: Cross at every cell (i,j) with
// i+j < n-1, Elbow elsewhere. It is the unique reduced pipe dream of the
// longest permutation of n elements.
func Long(n int) Dream {
	tiles := sqmat.New[Tile](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n-1-i; j++ {
			tiles.Set(i, j, Cross)
		}
	}

	return Dream{tiles: tiles}
}

// Dim returns the grid dimension.
func (d Dream) Dim() int { return d.tiles.Dim() }

// At returns the tile at (i, j). Panics if out of range.
func (d Dream) At(i, j int) Tile { return d.tiles.At(i, j) }

// Tiles returns an independent copy of the tile grid.
func (d Dream) Tiles() *sqmat.SqMat[Tile] { return d.tiles.Clone() }

// Crosses returns the number of Cross tiles in the dream. For a dream
// produced by ReducedDreamsFor(p) this equals p.CoxeterLength().
func (d Dream) Crosses() int {
	count := 0
	for i := 0; i < d.Dim(); i++ {
		for _, t := range d.tiles.Row(i) {
			if t == Cross {
				count++
			}
		}
	}

	return count
}

// Equal reports whether two dreams have identical dimensions and tiles.
func (d Dream) Equal(other Dream) bool {
	return d.tiles.Equal(other.tiles, func(a, b Tile) bool { return a == b })
}

// String renders the dream as a grid of "."/"+" runes, one row per line.
func (d Dream) String() string {
	return sqmat.Format(d.tiles, Tile.String)
}

// Start returns the minimum column j such that tile (i, j) is an Elbow,
// or Dim() if row i is fully crossed.
func (d Dream) Start(i int) int {
	for j, t := range d.tiles.Row(i) {
		if t == Elbow {
			return j
		}
	}

	return d.Dim()
}

// Mitosis applies the i-th mitosis operator, returning one child dream per
// ladder position p, in increasing-p order. Candidates are the columns
// p < Start(i) whose tile (i+1, p) is not a Cross. Each child is a full
// copy of the parent with (i, p) cleared, then a single left-to-right pass
// over columns j < p pushing each Cross at (i, j) down onto an Elbow at
// (i+1, j).
//
// Requires i+1 < Dim(); calling on the last row panics.
func (d Dream) Mitosis(i int) []Dream {
	if i < 0 || i+1 >= d.Dim() {
		panic(fmt.Sprintf("dream: mitosis row %d out of range for dimension %d", i, d.Dim()))
	}

	var offspring []Dream
	start := d.Start(i)
	for p := 0; p < start; p++ {
		if d.tiles.At(i+1, p) == Cross {
			continue
		}

		tiles := d.tiles.Clone()
		tiles.Set(i, p, Elbow)
		for j := 0; j < p; j++ {
			if tiles.At(i, j) == Cross && tiles.At(i+1, j) == Elbow {
				tiles.Set(i, j, Elbow)
				tiles.Set(i+1, j, Cross)
			}
		}
		offspring = append(offspring, Dream{tiles: tiles})
	}

	return offspring
}
