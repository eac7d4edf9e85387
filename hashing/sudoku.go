package hashing

// EmptyCell is the board byte representing an unfilled Sudoku cell.
const EmptyCell = '.'

// ValidSudoku reports whether a partially filled 9×9 board violates no Sudoku
// constraint: each digit '1'–'9' at most once per row, column and 3×3 box.
// Empty cells hold EmptyCell. Validity does not imply solvability.
//
// Algorithm Outline:
//  1. Keep one 9-bit mask per row, column and box.
//  2. For each filled cell, compute bit = 1 << (digit-1) and the box index
//     (r/3)*3 + c/3.
//  3. A bit already set in any of the three masks is a repeat; otherwise set
//     it in all three.
//
// Complexity:
//
//	Time   = O(81)
//	Memory = O(27) mask words
func ValidSudoku(board [9][9]byte) bool {
	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := board[r][c]
			if cell == EmptyCell {
				continue
			}
			if cell < '1' || cell > '9' {
				return false
			}
			bit := uint16(1) << (cell - '1')
			b := (r/3)*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[b]&bit != 0 {
				return false
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	return true
}
