package chessforge

import "testing"

func TestPinRestrictsMovement(t *testing.T) {
	// White king e1, white bishop d2 pinned by black bishop on a5 along the
	// a5-e1 diagonal. The bishop may only move along that diagonal.
	pos, err := FromFEN("4k3/8/8/b7/8/8/3B4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	ai := Analyze(pos)
	d2 := ParseSquare("d2")
	if ai.Pinned[d2] == 0 {
		t.Fatal("bishop on d2 should be pinned")
	}

	list := Generate(pos)
	for _, m := range list.Slice() {
		if m.From() != d2 {
			continue
		}
		if ai.Pinned[d2]&(uint64(1)<<uint(m.To())) == 0 {
			t.Errorf("pinned bishop move to %s leaves the king exposed", SquareName(m.To()))
		}
	}
}

func TestCheckMaskRestrictsToBlockOrCapture(t *testing.T) {
	// White king e1 in check from a black rook on e8 along the e-file; only
	// capturing the rook or blocking on the e-file is legal for non-king
	// pieces.
	pos, err := FromFEN("4r3/8/8/8/8/2N5/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	ai := Analyze(pos)
	if ai.Checkers == 0 {
		t.Fatal("white king should be in check")
	}

	list := Generate(pos)
	for _, m := range list.Slice() {
		if pos.PieceAt(m.From()).Kind() == King {
			continue
		}
		if ai.CheckMask&(uint64(1)<<uint(m.To())) == 0 {
			t.Errorf("move %s does not address the check", m)
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Contrived double check: both a rook and a knight check the white king
	// simultaneously, so only king moves can be legal.
	pos, err := FromFEN("k7/8/8/8/8/3n4/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	list := Generate(pos)
	for _, m := range list.Slice() {
		if pos.PieceAt(m.From()).Kind() != King {
			t.Errorf("only king moves should be legal in double check, got %s from a %s",
				m, pos.PieceAt(m.From()).Kind())
		}
	}
}
