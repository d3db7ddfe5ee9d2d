package sudoku

import (
	"fmt"
	"strings"
)

const (
	Size      = 9
	BoxSize   = 3
	CellCount = Size * Size
)

// Cell holds a value in [1,9] (0 means empty) and whether the value was
// placed by the generator. Given cells are immutable to the player.
type Cell struct {
	Value uint8
	Given bool
}

// Board is the 9x9 grid in row-major order, index = row*Size + col.
type Board [CellCount]Cell

func index(row, col int) int {
	return row*Size + col
}

func InBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

func (b *Board) At(row, col int) Cell {
	return b[index(row, col)]
}

func (b *Board) Value(row, col int) uint8 {
	return b[index(row, col)].Value
}

func (b *Board) IsGiven(row, col int) bool {
	return b[index(row, col)].Given
}

func (b *Board) GivenCount() (count int) {
	for _, c := range b {
		if c.Given {
			count++
		}
	}
	return
}

func (b *Board) FilledCount() (count int) {
	for _, c := range b {
		if c.Value != 0 {
			count++
		}
	}
	return
}

// Values strips provenance, leaving the raw grid the solver works on.
func (b *Board) Values() (values [CellCount]uint8) {
	for i, c := range b {
		values[i] = c.Value
	}
	return
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 && row%BoxSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for col := range Size {
			if col > 0 && col%BoxSize == 0 {
				sb.WriteString("| ")
			}
			if v := b.Value(row, col); v == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Point identifies a cell on the board.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
