package chessforge

import "testing"

func TestMoveFromUCIValid(t *testing.T) {
	pos := NewStartPosition()
	m, err := MoveFromUCI(pos, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if m.Flag() != DoublePush {
		t.Errorf("e2e4 should be a double push, got flag %d", m.Flag())
	}
}

func TestMoveFromUCIMalformed(t *testing.T) {
	pos := NewStartPosition()
	cases := []string{"", "e2", "z9z9", "e2e4qq"}
	for _, s := range cases {
		if _, err := MoveFromUCI(pos, s); err == nil {
			t.Errorf("MoveFromUCI(%q) should have failed to parse", s)
		}
	}
}

func TestMoveFromUCIIllegal(t *testing.T) {
	pos := NewStartPosition()
	_, err := MoveFromUCI(pos, "e2e5")
	if err == nil {
		t.Fatal("e2e5 is not a legal opening move and should be rejected")
	}
}

func TestMoveFromUCIPromotion(t *testing.T) {
	pos, err := FromFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := MoveFromUCI(pos, "e7e8q")
	if err != nil {
		t.Fatal(err)
	}
	if m.Flag() != PromoQ {
		t.Errorf("expected PromoQ flag, got %d", m.Flag())
	}
}
