package sudoku

// Hint is a single correct placement surfaced from the solution.
type Hint struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// NextHint scans the board in row-major order and returns the first cell
// whose value differs from the solution, empty cells included. It never
// mutates anything; budget accounting is the caller's concern.
func NextHint(b *Board, s *Solution) (Hint, bool) {
	for row := range Size {
		for col := range Size {
			if want := s.At(row, col); b.Value(row, col) != want {
				return Hint{Row: row, Col: col, Value: want}, true
			}
		}
	}
	return Hint{}, false
}
