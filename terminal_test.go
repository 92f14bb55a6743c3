package chessforge

import "testing"

func TestFiftyMoveRule(t *testing.T) {
	pos, err := FromFEN("8/8/4k3/8/8/3K4/8/8 w - - 99 60")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMove(ParseSquare("d3"), ParseSquare("d4"), Quiet)
	pos.Make(m)
	if Terminal(pos) != DrawByFiftyMove {
		t.Errorf("expected draw by fifty-move rule, got %v", Terminal(pos))
	}
}

func TestInsufficientMaterialKnightCannotForceMate(t *testing.T) {
	pos, err := FromFEN("8/8/4k3/8/8/3KN3/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !IsInsufficientMaterial(pos) {
		t.Error("king and knight vs lone king should be insufficient material")
	}
}

func TestInsufficientMaterialSameColorBishops(t *testing.T) {
	// White bishop on c1, black bishop on g5: both dark-squared, so neither
	// can ever contact the other and the position is a dead draw.
	pos, err := FromFEN("4k3/8/8/6b1/8/8/8/2B1K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !IsInsufficientMaterial(pos) {
		t.Error("opposite-colored kings with same-square-color bishops should be insufficient material")
	}
}

func TestSufficientMaterialTwoBishopsOneSide(t *testing.T) {
	// Both bishops belong to white (c1 and f4). A single side holding two
	// bishops, even same-colored ones, is not treated as insufficient: that
	// is a stronger theoretical claim than "a bishop pair split across both
	// sides can never make contact," and is deliberately not inferred here.
	pos, err := FromFEN("4k3/8/8/8/5B2/8/8/2B1K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if IsInsufficientMaterial(pos) {
		t.Error("two bishops on one side vs a lone king should not be treated as insufficient material")
	}
}

func TestSufficientMaterialWithRook(t *testing.T) {
	pos, err := FromFEN("8/8/4k3/8/8/3KR3/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if IsInsufficientMaterial(pos) {
		t.Error("king and rook vs lone king should be sufficient material to force mate")
	}
}

func TestStalemateDetected(t *testing.T) {
	// Classic stalemate: black king on a8 boxed in, no legal black moves and
	// not in check.
	pos, err := FromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if Terminal(pos) != Stalemate {
		t.Errorf("expected stalemate, got %v", Terminal(pos))
	}
}
