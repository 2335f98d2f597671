// Package strategy implements the match-3 move evaluator, the A* grid
// planner, and the priority-ordered combat heuristics.
package strategy

// Board is a rectangular grid of colour ids; 0 denotes an empty or dark
// cell, 1-7 the seven hue buckets produced by vision.AnalyzeEliminateBoard.
type Board [][]uint8

func (b Board) rows() int { return len(b) }
func (b Board) cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b Board) clone() Board {
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Move describes a candidate swap between two adjacent cells.
type Move struct {
	FromRow, FromCol int
	ToRow, ToCol     int
	Score            int
	Eliminates       int
	CreatesSpecial   bool
}

// less implements the move ordering from the spec: ascending by
// (CreatesSpecial, Score, Eliminates).
func (m Move) less(other Move) bool {
	if m.CreatesSpecial != other.CreatesSpecial {
		return !m.CreatesSpecial && other.CreatesSpecial
	}
	if m.Score != other.Score {
		return m.Score < other.Score
	}
	return m.Eliminates < other.Eliminates
}

// FindAllMoves enumerates every adjacent horizontal and vertical swap of
// non-zero, unequal cells whose result has at least one run of 3+
// same-coloured cells through one of the swapped positions.
func FindAllMoves(board Board) []Move {
	rows, cols := board.rows(), board.cols()
	var moves []Move

	for row := 0; row < rows; row++ {
		for col := 0; col < cols-1; col++ {
			if board[row][col] == 0 || board[row][col+1] == 0 || board[row][col] == board[row][col+1] {
				continue
			}
			test := board.clone()
			test[row][col], test[row][col+1] = test[row][col+1], test[row][col]
			if mv, ok := evaluateMove(test, row, col, row, col+1); ok {
				mv.FromRow, mv.FromCol = row, col
				mv.ToRow, mv.ToCol = row, col+1
				moves = append(moves, mv)
			}
		}
	}

	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			if board[row][col] == 0 || board[row+1][col] == 0 || board[row][col] == board[row+1][col] {
				continue
			}
			test := board.clone()
			test[row][col], test[row+1][col] = test[row+1][col], test[row][col]
			if mv, ok := evaluateMove(test, row, col, row+1, col); ok {
				mv.FromRow, mv.FromCol = row, col
				mv.ToRow, mv.ToCol = row + 1, col
				moves = append(moves, mv)
			}
		}
	}

	return moves
}

// evaluateMove scores the post-swap board at both swapped positions.
func evaluateMove(board Board, r1, c1, r2, c2 int) (Move, bool) {
	rows, cols := board.rows(), board.cols()
	totalEliminates := 0
	createsSpecial := false

	for _, pos := range [2][2]int{{r1, c1}, {r2, c2}} {
		row, col := pos[0], pos[1]
		c := board[row][col]
		if c == 0 {
			continue
		}

		hCount := 1
		for left := col - 1; left >= 0 && board[row][left] == c; left-- {
			hCount++
		}
		for right := col + 1; right < cols && board[row][right] == c; right++ {
			hCount++
		}

		vCount := 1
		for top := row - 1; top >= 0 && board[top][col] == c; top-- {
			vCount++
		}
		for bottom := row + 1; bottom < rows && board[bottom][col] == c; bottom++ {
			vCount++
		}

		if hCount >= 3 {
			totalEliminates += hCount
			if hCount >= 4 {
				createsSpecial = true
			}
		}
		if vCount >= 3 {
			totalEliminates += vCount
			if vCount >= 4 {
				createsSpecial = true
			}
		}
		if hCount >= 3 && vCount >= 3 {
			createsSpecial = true
		}
	}

	if totalEliminates < 3 {
		return Move{}, false
	}

	score := totalEliminates * 10
	if createsSpecial {
		score += 50
	}

	return Move{
		Score:          score,
		Eliminates:     totalEliminates,
		CreatesSpecial: createsSpecial,
	}, true
}

// FindBestMove returns the single highest-ordered move, or false if no
// move is valid.
func FindBestMove(board Board) (Move, bool) {
	moves := FindAllMoves(board)
	if len(moves) == 0 {
		return Move{}, false
	}

	best := moves[0]
	for _, m := range moves[1:] {
		if best.less(m) {
			best = m
		}
	}
	return best, true
}

// FindBestMoves returns up to n moves, highest-ordered first. A negative
// n returns no moves.
func FindBestMoves(board Board, n int) []Move {
	if n < 0 {
		return nil
	}

	moves := FindAllMoves(board)
	sortDescending(moves)
	if n < len(moves) {
		moves = moves[:n]
	}
	return moves
}

func sortDescending(moves []Move) {
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && moves[j-1].less(moves[j]); j-- {
			moves[j-1], moves[j] = moves[j], moves[j-1]
		}
	}
}

// SimulateMove applies mv's swap to board, then performs one clear pass
// (zeroing every run of 3+) and one gravity pass (non-zero cells fall to
// the bottom of their column, preserving relative order). Cascading
// re-matches are not iterated.
func SimulateMove(board Board, mv Move) Board {
	out := board.clone()
	out[mv.FromRow][mv.FromCol], out[mv.ToRow][mv.ToCol] = out[mv.ToRow][mv.ToCol], out[mv.FromRow][mv.FromCol]

	removeMatches(out)
	applyGravity(out)

	return out
}

func removeMatches(board Board) {
	rows, cols := board.rows(), board.cols()
	toRemove := make([][]bool, rows)
	for i := range toRemove {
		toRemove[i] = make([]bool, cols)
	}

	for row := 0; row < rows; row++ {
		start := 0
		for start < cols {
			c := board[row][start]
			if c == 0 {
				start++
				continue
			}
			end := start
			for end < cols && board[row][end] == c {
				end++
			}
			if end-start >= 3 {
				for col := start; col < end; col++ {
					toRemove[row][col] = true
				}
			}
			start = end
		}
	}

	for col := 0; col < cols; col++ {
		start := 0
		for start < rows {
			c := board[start][col]
			if c == 0 {
				start++
				continue
			}
			end := start
			for end < rows && board[end][col] == c {
				end++
			}
			if end-start >= 3 {
				for row := start; row < end; row++ {
					toRemove[row][col] = true
				}
			}
			start = end
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if toRemove[row][col] {
				board[row][col] = 0
			}
		}
	}
}

func applyGravity(board Board) {
	rows, cols := board.rows(), board.cols()
	for col := 0; col < cols; col++ {
		writeRow := rows
		for readRow := rows - 1; readRow >= 0; readRow-- {
			if board[readRow][col] != 0 {
				writeRow--
				if writeRow != readRow {
					board[writeRow][col] = board[readRow][col]
					board[readRow][col] = 0
				}
			}
		}
	}
}
