package sudoku

// IsValidPlacement reports whether value could sit at (row, col) without
// repeating in the cell's row, column or 3x3 box. The cell itself is
// excluded, so a value already placed at (row, col) validates against its
// peers only.
func (b *Board) IsValidPlacement(row, col int, value uint8) bool {
	for i := range Size {
		if i != col && b.Value(row, i) == value {
			return false
		}
		if i != row && b.Value(i, col) == value {
			return false
		}
	}
	boxRow, boxCol := (row/BoxSize)*BoxSize, (col/BoxSize)*BoxSize
	for r := boxRow; r < boxRow+BoxSize; r++ {
		for c := boxCol; c < boxCol+BoxSize; c++ {
			if (r != row || c != col) && b.Value(r, c) == value {
				return false
			}
		}
	}
	return true
}

// Conflicts returns every filled cell that shares its value with at least
// one peer, in row-major order. The result is symmetric: if (r1,c1) clashes
// with (r2,c2), both are included.
func (b *Board) Conflicts() []Point {
	var conflicts []Point
	for row := range Size {
		for col := range Size {
			v := b.Value(row, col)
			if v != 0 && !b.IsValidPlacement(row, col, v) {
				conflicts = append(conflicts, Point{row, col})
			}
		}
	}
	return conflicts
}

// IsComplete reports whether every cell is filled and no conflicts remain.
func (b *Board) IsComplete() bool {
	for _, c := range b {
		if c.Value == 0 {
			return false
		}
	}
	return len(b.Conflicts()) == 0
}
