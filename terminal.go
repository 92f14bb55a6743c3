package chessforge

import "math/bits"

// Result enumerates how a game ended.
type Result int

const (
	Ongoing Result = iota
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByFiftyMove
	DrawByInsufficientMaterial
)

func (r Result) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw by repetition"
	case DrawByFiftyMove:
		return "draw by fifty-move rule"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "ongoing"
	}
}

// IsCheck reports whether the side to move is in check.
func IsCheck(pos *Position) bool {
	kingSq := pos.King(pos.side)
	if kingSq < 0 {
		return false
	}
	return attackersOf(pos, kingSq, pos.side.Opponent()) != 0
}

// Terminal evaluates pos for every end-of-game condition and returns the
// first one that applies. Checkmate/stalemate take precedence over the
// drawing conditions since a mated side has no further moves to repeat or
// claim a draw with.
func Terminal(pos *Position) Result {
	if !AnyLegal(pos) {
		if IsCheck(pos) {
			return Checkmate
		}
		return Stalemate
	}
	if pos.RepetitionCount() >= 3 {
		return DrawByRepetition
	}
	if pos.halfmove >= 100 {
		return DrawByFiftyMove
	}
	if IsInsufficientMaterial(pos) {
		return DrawByInsufficientMaterial
	}
	return Ongoing
}

// IsInsufficientMaterial reports whether neither side has a pawn, rook,
// queen, or enough minor material to force mate: bare kings, a king and a
// single minor piece against a bare king, and a bishop apiece confined to the same
// square color (the bishops can never come into contact, so neither side
// can ever force progress) are all dead draws. Two same-colored bishops
// held by one side against a bare king is excluded on purpose — that is a
// sharper theoretical claim than "the bishops never meet" and is left for a
// stricter implementation to add.
func IsInsufficientMaterial(pos *Position) bool {
	if pos.Pieces(Pawn, White)|pos.Pieces(Pawn, Black) != 0 {
		return false
	}
	if pos.Pieces(Rook, White)|pos.Pieces(Rook, Black) != 0 {
		return false
	}
	if pos.Pieces(Queen, White)|pos.Pieces(Queen, Black) != 0 {
		return false
	}

	wn := bits.OnesCount64(pos.Pieces(Knight, White))
	bn := bits.OnesCount64(pos.Pieces(Knight, Black))
	wb := pos.Pieces(Bishop, White)
	bb := pos.Pieces(Bishop, Black)
	wbCount := bits.OnesCount64(wb)
	bbCount := bits.OnesCount64(bb)

	minorCount := wn + bn + wbCount + bbCount
	if minorCount == 0 {
		return true // king vs king
	}
	if minorCount == 1 {
		return true // king and a single minor vs king
	}
	if wn == 0 && bn == 0 && wbCount == 1 && bbCount == 1 {
		// A bishop per side and nothing else: insufficient only if both
		// stand on the same square color, since opposite-colored bishops can
		// still help force progress.
		return sameColorComplex(wb | bb)
	}
	return false
}

// sameColorComplex reports whether every bishop in bb stands on squares of
// the same color, using the standard (file+rank) parity checkerboard test.
func sameColorComplex(bb uint64) bool {
	first := true
	var parity int
	for bb != 0 {
		sq := bits.TrailingZeros64(bb)
		bb &= bb - 1
		p := (file(sq) + rank(sq)) & 1
		if first {
			parity = p
			first = false
		} else if p != parity {
			return false
		}
	}
	return true
}
