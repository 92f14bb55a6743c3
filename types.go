// Package chessforge implements the core of a chess engine: position
// representation, incremental make/undo with Zobrist hashing, attack and pin
// analysis, fully legal move generation, and terminal-state detection.
//
// Square 0 is a8, square 63 is h1. Rank of square s is s>>3, file is s&7.
// This numbering is observable through FEN parsing and must not be changed
// without updating every precomputed table in tables.go.
package chessforge

import "github.com/pkg/errors"

// Color identifies the side to move.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind enumerates the six chess piece kinds. Zero is reserved so that
// the (kind, color) encoding below never collides with an empty square.
type PieceKind int

const (
	_ PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece packs a (PieceKind, Color) pair into a single small integer:
// code = (kind << 1) | color. Empty squares use code 0, so piece codes
// occupy 2..13 and can index a 12-element bitboard array via code-2.
type Piece int

const NoPiece Piece = 0

// NewPiece builds the packed piece code for a kind/color pair.
func NewPiece(k PieceKind, c Color) Piece {
	return Piece(int(k)<<1 | int(c))
}

// Kind extracts the piece kind. Calling Kind on NoPiece is a programming
// error and returns the zero PieceKind.
func (p Piece) Kind() PieceKind { return PieceKind(p >> 1) }

// Color extracts the piece color.
func (p Piece) Color() Color { return Color(p & 1) }

// index maps a piece code (2..13) to a 0..11 bitboard slot.
func (p Piece) index() int { return int(p) - 2 }

func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	sym := pieceGlyphs[p.Kind()]
	if p.Color() == Black {
		return string(sym + 32) // lowercase ASCII offset
	}
	return string(sym)
}

var pieceGlyphs = map[PieceKind]byte{
	Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
}

// MoveFlag distinguishes the special-case move kinds the generator and
// Position.Make/Undo need to treat differently.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	Capture
	EnPassant
	DoublePush
	PromoN
	PromoB
	PromoR
	PromoQ
	CastleK
	CastleQ
)

// IsPromotion reports whether the flag is one of the four promotion flags.
func (f MoveFlag) IsPromotion() bool { return f >= PromoN && f <= PromoQ }

// PromotedKind returns the piece kind a promotion flag produces.
func (f MoveFlag) PromotedKind() PieceKind {
	switch f {
	case PromoN:
		return Knight
	case PromoB:
		return Bishop
	case PromoR:
		return Rook
	case PromoQ:
		return Queen
	default:
		return 0
	}
}

// Move is a packed 16-bit value: 6 bits from, 6 bits to, 4 bits flag. The
// captured piece is never stored on the move itself — the undo stack carries
// it, per the make/undo protocol.
type Move uint16

// NewMove builds a move from its three attributes.
func NewMove(from, to int, flag MoveFlag) Move {
	return Move(from) | Move(to)<<6 | Move(flag)<<12
}

func (m Move) From() int     { return int(m & 0x3F) }
func (m Move) To() int       { return int((m >> 6) & 0x3F) }
func (m Move) Flag() MoveFlag { return MoveFlag((m >> 12) & 0xF) }

func (m Move) String() string {
	s := SquareName(m.From()) + SquareName(m.To())
	switch m.Flag() {
	case PromoN:
		s += "n"
	case PromoB:
		s += "b"
	case PromoR:
		s += "r"
	case PromoQ:
		s += "q"
	}
	return s
}

// MoveList is a fixed-capacity move buffer. 218 is the documented maximum
// number of legal moves in any reachable chess position, so a preallocated
// array avoids per-call heap allocation in the generator's hot path.
type MoveList struct {
	Moves [218]Move
	Count int
}

func (l *MoveList) push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// Error kinds exposed by the core, per the error handling design: FEN and
// move-string parsing failures are recoverable (the input was simply bad),
// while IllegalMove is a programming error — make was called with a move the
// generator did not produce for the current position.
var (
	ErrMalformedFEN   = errors.New("chessforge: malformed FEN")
	ErrMalformedMove  = errors.New("chessforge: malformed move string")
	ErrIllegalMove    = errors.New("chessforge: illegal move")
)

// MalformedFEN wraps ErrMalformedFEN with the specific reason.
func MalformedFEN(reason string) error {
	return errors.Wrap(ErrMalformedFEN, reason)
}

// MalformedMove wraps ErrMalformedMove with the specific reason.
func MalformedMove(reason string) error {
	return errors.Wrap(ErrMalformedMove, reason)
}
