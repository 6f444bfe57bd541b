package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isLine reports whether two squares share a rank, a file or a diagonal.
func isLine(from, to chess.Square) bool {
	colDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())
	return colDiff == 0 || rankDiff == 0 || colDiff == rankDiff
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must lie on a shared rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	if !isLine(from, to) {
		return false
	}

	colDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())

	col := from.File() + colDir
	rank := from.Rank() + rankDir

	for col != to.File() || rank != to.Rank() {
		if board.Get(chess.NewSquare(col, rank)) != chess.Empty {
			return false
		}
		col += colDir
		rank += rankDir
	}

	return true
}
