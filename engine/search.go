// Package engine is a trivial depth-limited negamax search over the core
// move generator: loop legal moves, make, recurse, undo, with a
// material-only evaluation. There is deliberately no transposition table,
// move ordering, or iterative deepening here — those belong to a real
// search engine, not a demonstration of the core API.
package engine

import (
	"math"

	chess "github.com/opennull/chessforge"
)

var pieceValue = map[chess.PieceKind]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// Evaluate scores pos from the side-to-move's perspective: material only, no
// piece-square tables, no mobility or king safety terms.
func Evaluate(pos *chess.Position) int {
	score := 0
	for _, k := range []chess.PieceKind{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen} {
		score += popcount(pos.Pieces(k, chess.White)) * pieceValue[k]
		score -= popcount(pos.Pieces(k, chess.Black)) * pieceValue[k]
	}
	if pos.Side() == chess.Black {
		score = -score
	}
	return score
}

func popcount(bb uint64) int {
	n := 0
	for bb != 0 {
		bb &= bb - 1
		n++
	}
	return n
}

const (
	mateScore = 1_000_000
	infinity  = math.MaxInt32
)

// BestMove searches pos to a fixed depth with plain negamax (no alpha-beta
// pruning) and returns the best move found along with its score from the
// side-to-move's perspective. It returns the zero Move and Evaluate(pos) if
// pos has no legal moves.
func BestMove(pos *chess.Position, depth int) (chess.Move, int) {
	list := chess.Generate(pos)
	if list.Count == 0 {
		return 0, Evaluate(pos)
	}

	var best chess.Move
	bestScore := -infinity
	for _, m := range list.Slice() {
		pos.Make(m)
		score := -negamax(pos, depth-1)
		pos.Undo()
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, bestScore
}

func negamax(pos *chess.Position, depth int) int {
	switch chess.Terminal(pos) {
	case chess.Checkmate:
		return -mateScore
	case chess.Stalemate, chess.DrawByRepetition, chess.DrawByFiftyMove, chess.DrawByInsufficientMaterial:
		return 0
	}
	if depth == 0 {
		return Evaluate(pos)
	}

	list := chess.Generate(pos)
	best := -infinity
	for _, m := range list.Slice() {
		pos.Make(m)
		score := -negamax(pos, depth-1)
		pos.Undo()
		if score > best {
			best = score
		}
	}
	return best
}
