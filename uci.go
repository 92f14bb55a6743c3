package chessforge

import "github.com/pkg/errors"

// MoveToUCI formats a move in long algebraic ("UCI") notation, e.g.
// "e2e4" or "e7e8q" for a promotion.
func MoveToUCI(m Move) string {
	return m.String()
}

// MoveFromUCI resolves a UCI move string against the legal moves of pos. It
// returns ErrMalformedMove for a string that cannot be parsed at all, and
// ErrIllegalMove for a well-formed string that names no legal move in pos.
func MoveFromUCI(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, MalformedMove("move string must be 4 or 5 characters")
	}
	from := ParseSquare(s[0:2])
	to := ParseSquare(s[2:4])
	if from < 0 || to < 0 {
		return 0, MalformedMove("bad square in move string")
	}
	var wantPromo PieceKind
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			wantPromo = Queen
		case 'r':
			wantPromo = Rook
		case 'b':
			wantPromo = Bishop
		case 'n':
			wantPromo = Knight
		default:
			return 0, MalformedMove("bad promotion letter")
		}
	}

	list := Generate(pos)
	for _, cand := range list.Slice() {
		if cand.From() != from || cand.To() != to {
			continue
		}
		if cand.Flag().IsPromotion() {
			if cand.Flag().PromotedKind() == wantPromo {
				return cand, nil
			}
			continue
		}
		if wantPromo == 0 {
			return cand, nil
		}
	}
	return 0, errors.Wrapf(ErrIllegalMove, "move %q is not legal in this position", s)
}
