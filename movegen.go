package chessforge

import "math/bits"

// rank2/rank7 relative to color: the starting rank for pawn double pushes,
// and (rank8/rank1) the last rank, where a pawn lands when it promotes.
func pawnStartRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func promotionRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func pawnPushDir(c Color) int {
	if c == White {
		return North
	}
	return South
}

// Generate produces every fully legal move for the side to move, filtered
// directly through the attack analyzer's check mask and pin rays rather than
// generating pseudo-legal moves and discarding the illegal ones by making
// and rechecking each candidate.
func Generate(pos *Position) MoveList {
	var list MoveList
	ai := Analyze(pos)
	us := pos.side
	kingSq := pos.King(us)

	genKingMoves(pos, ai, &list, us, kingSq)
	if bits.OnesCount64(ai.Checkers) >= 2 {
		// Double check: only king moves can possibly escape.
		return list
	}

	genPawnMoves(pos, ai, &list, us, kingSq)
	genLeaperMoves(pos, ai, &list, us, kingSq, Knight, KnightAttacks[:])
	genSliderMoves(pos, ai, &list, us, kingSq, Bishop)
	genSliderMoves(pos, ai, &list, us, kingSq, Rook)
	genSliderMoves(pos, ai, &list, us, kingSq, Queen)
	genCastling(pos, ai, &list, us)

	return list
}

// AnyLegal reports whether the side to move has at least one legal move,
// for checkmate/stalemate detection.
func AnyLegal(pos *Position) bool {
	list := Generate(pos)
	return list.Count > 0
}

// targetMask clips a piece's raw destination set to squares it may legally
// land on: inside the check-evasion mask, and (if pinned) inside its pin ray.
func targetMask(ai *AttackInfo, from int) uint64 {
	mask := ai.CheckMask
	if ai.Pinned[from] != 0 {
		mask &= ai.Pinned[from]
	}
	return mask
}

func genLeaperMoves(pos *Position, ai *AttackInfo, list *MoveList, us Color, kingSq int, kind PieceKind, table []uint64) {
	bb := pos.Pieces(kind, us)
	for bb != 0 {
		from := bits.TrailingZeros64(bb)
		bb &= bb - 1
		dests := table[from] &^ pos.OccupiedBy(us) & targetMask(ai, from)
		emitDests(pos, list, from, dests, us)
	}
}

func genSliderMoves(pos *Position, ai *AttackInfo, list *MoveList, us Color, kingSq int, kind PieceKind) {
	bb := pos.Pieces(kind, us)
	occ := pos.Occupied()
	for bb != 0 {
		from := bits.TrailingZeros64(bb)
		bb &= bb - 1
		var dests uint64
		switch kind {
		case Bishop:
			dests = BishopAttacks(from, occ)
		case Rook:
			dests = RookAttacks(from, occ)
		case Queen:
			dests = QueenAttacks(from, occ)
		}
		dests &^= pos.OccupiedBy(us)
		dests &= targetMask(ai, from)
		emitDests(pos, list, from, dests, us)
	}
}

func emitDests(pos *Position, list *MoveList, from int, dests uint64, us Color) {
	enemy := pos.OccupiedBy(us.Opponent())
	for dests != 0 {
		to := bits.TrailingZeros64(dests)
		dests &= dests - 1
		if enemy&(uint64(1)<<uint(to)) != 0 {
			list.push(NewMove(from, to, Capture))
		} else {
			list.push(NewMove(from, to, Quiet))
		}
	}
}

func genKingMoves(pos *Position, ai *AttackInfo, list *MoveList, us Color, kingSq int) {
	them := us.Opponent()
	dests := KingAttacks[kingSq] &^ pos.OccupiedBy(us)
	enemy := pos.OccupiedBy(them)
	for dests != 0 {
		to := bits.TrailingZeros64(dests)
		dests &= dests - 1
		if ai.AttackedBy[them]&(uint64(1)<<uint(to)) != 0 {
			continue
		}
		if enemy&(uint64(1)<<uint(to)) != 0 {
			list.push(NewMove(kingSq, to, Capture))
		} else {
			list.push(NewMove(kingSq, to, Quiet))
		}
	}
}

func genPawnMoves(pos *Position, ai *AttackInfo, list *MoveList, us Color, kingSq int) {
	them := us.Opponent()
	push := pawnPushDir(us)
	startRank := pawnStartRank(us)
	promoRank := promotionRank(us)
	occ := pos.Occupied()
	enemy := pos.OccupiedBy(them)

	// pos.epSquare holds the double-pushed pawn's own landing square; the
	// actual capture destination is the square it passed over, one step
	// back toward where it came from.
	epCaptureSq := -1
	if pos.epSquare != noEpSquare {
		epCaptureSq = pos.epSquare + push
	}

	bb := pos.Pieces(Pawn, us)
	for bb != 0 {
		from := bits.TrailingZeros64(bb)
		bb &= bb - 1
		mask := targetMask(ai, from)

		one := from + push
		if one >= 0 && one < 64 && occ&(uint64(1)<<uint(one)) == 0 {
			pushPawnMove(list, from, one, promoRank, mask)
			if rank(from) == startRank {
				two := one + push
				if occ&(uint64(1)<<uint(two)) == 0 && mask&(uint64(1)<<uint(two)) != 0 {
					list.push(NewMove(from, two, DoublePush))
				}
			}
		}

		attacks := PawnAttacks[us][from] & enemy & mask
		for attacks != 0 {
			to := bits.TrailingZeros64(attacks)
			attacks &= attacks - 1
			pushCapturePromo(list, from, to, rank(to) == promoRank)
		}

		if epCaptureSq >= 0 && PawnAttacks[us][from]&(uint64(1)<<uint(epCaptureSq)) != 0 {
			if enPassantLegal(pos, kingSq, us, from, epCaptureSq) {
				list.push(NewMove(from, epCaptureSq, EnPassant))
			}
		}
	}
}

func pushPawnMove(list *MoveList, from, to, promoRank int, mask uint64) {
	if mask&(uint64(1)<<uint(to)) == 0 {
		return
	}
	if rank(to) == promoRank {
		list.push(NewMove(from, to, PromoQ))
		list.push(NewMove(from, to, PromoR))
		list.push(NewMove(from, to, PromoB))
		list.push(NewMove(from, to, PromoN))
	} else {
		list.push(NewMove(from, to, Quiet))
	}
}

func pushCapturePromo(list *MoveList, from, to int, promotes bool) {
	if promotes {
		list.push(NewMove(from, to, PromoQ))
		list.push(NewMove(from, to, PromoR))
		list.push(NewMove(from, to, PromoB))
		list.push(NewMove(from, to, PromoN))
		return
	}
	list.push(NewMove(from, to, Capture))
}

// enPassantLegal handles the one situation the check/pin mask cannot cover
// on its own: capturing en passant removes a pawn that is not on the
// destination square, so it can expose the king to a rank attack the normal
// pin analysis never considers. Resolved by probing attacks against a scratch
// occupancy with both pawns removed and the capturing pawn's destination
// added, rather than threading this case through the general pin rays.
func enPassantLegal(pos *Position, kingSq int, us Color, from, to int) bool {
	them := us.Opponent()
	capturedSq := to + South
	if us == Black {
		capturedSq = to + North
	}

	occ := pos.Occupied()
	occ &^= uint64(1) << uint(from)
	occ &^= uint64(1) << uint(capturedSq)
	occ |= uint64(1) << uint(to)

	// Only sliders can newly attack the king as a result of this double
	// removal; leapers/king are unaffected by occupancy.
	attackers := RookAttacks(kingSq, occ) & (pos.Pieces(Rook, them) | pos.Pieces(Queen, them))
	attackers |= BishopAttacks(kingSq, occ) & (pos.Pieces(Bishop, them) | pos.Pieces(Queen, them))
	return attackers == 0
}

func genCastling(pos *Position, ai *AttackInfo, list *MoveList, us Color) {
	if ai.Checkers != 0 {
		return
	}
	them := us.Opponent()
	occ := pos.Occupied()
	attacked := ai.AttackedBy[them]

	if us == White {
		if pos.castleRights&WhiteKingside != 0 &&
			occ&castleEmptyMask(60, 62) == 0 &&
			attacked&castleSafeMask(60, 62) == 0 {
			list.push(NewMove(60, 62, CastleK))
		}
		if pos.castleRights&WhiteQueenside != 0 &&
			occ&(uint64(1)<<57|uint64(1)<<58|uint64(1)<<59) == 0 &&
			attacked&(uint64(1)<<58|uint64(1)<<59) == 0 {
			list.push(NewMove(60, 58, CastleQ))
		}
	} else {
		if pos.castleRights&BlackKingside != 0 &&
			occ&castleEmptyMask(4, 6) == 0 &&
			attacked&castleSafeMask(4, 6) == 0 {
			list.push(NewMove(4, 6, CastleK))
		}
		if pos.castleRights&BlackQueenside != 0 &&
			occ&(uint64(1)<<1|uint64(1)<<2|uint64(1)<<3) == 0 &&
			attacked&(uint64(1)<<2|uint64(1)<<3) == 0 {
			list.push(NewMove(4, 2, CastleQ))
		}
	}
}

// castleEmptyMask returns the squares between king and rook (exclusive of
// the king's own square) that must be empty for a kingside castle.
func castleEmptyMask(kingFrom, kingTo int) uint64 {
	return uint64(1)<<uint(kingFrom+1) | uint64(1)<<uint(kingTo)
}

// castleSafeMask returns the squares the king passes through (including its
// destination) that must not be attacked.
func castleSafeMask(kingFrom, kingTo int) uint64 {
	return uint64(1)<<uint(kingFrom+1) | uint64(1)<<uint(kingTo)
}
