package chessforge

import "strings"

// MoveToSAN formats a move in Standard Algebraic Notation relative to pos
// (which must be the position the move is played FROM).
func MoveToSAN(pos *Position, m Move) string {
	if m.Flag() == CastleK {
		return appendCheckSuffix(pos, m, "O-O")
	}
	if m.Flag() == CastleQ {
		return appendCheckSuffix(pos, m, "O-O-O")
	}

	pc := pos.PieceAt(m.From())
	isCapture := m.Flag() == Capture || m.Flag() == EnPassant ||
		(m.Flag().IsPromotion() && pos.PieceAt(m.To()) != NoPiece)
	var b strings.Builder

	if pc.Kind() == Pawn {
		if isCapture {
			b.WriteByte(SquareName(m.From())[0])
		}
	} else {
		b.WriteByte(pieceGlyphs[pc.Kind()])
		b.WriteString(disambiguate(pos, m))
	}

	if isCapture {
		b.WriteByte('x')
	}
	b.WriteString(SquareName(m.To()))

	if m.Flag().IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(pieceGlyphs[m.Flag().PromotedKind()])
	}

	return appendCheckSuffix(pos, m, b.String())
}

// disambiguate returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece kind to the same
// destination: file first, then rank, then both.
func disambiguate(pos *Position, m Move) string {
	pc := pos.PieceAt(m.From())
	list := Generate(pos)

	sameFile, sameRank, ambiguous := false, false, false
	for _, cand := range list.Slice() {
		if cand == m || cand.To() != m.To() {
			continue
		}
		if pos.PieceAt(cand.From()).Kind() != pc.Kind() {
			continue
		}
		ambiguous = true
		if file(cand.From()) == file(m.From()) {
			sameFile = true
		}
		if rank(cand.From()) == rank(m.From()) {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	name := SquareName(m.From())
	switch {
	case !sameFile:
		return name[0:1]
	case !sameRank:
		return name[1:2]
	default:
		return name
	}
}

func appendCheckSuffix(pos *Position, m Move, san string) string {
	pos.Make(m)
	defer pos.Undo()
	if !IsCheck(pos) {
		return san
	}
	if !AnyLegal(pos) {
		return san + "#"
	}
	return san + "+"
}
