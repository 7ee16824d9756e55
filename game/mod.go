package game

import "errors"

// Player identifies one side of the board. Player0 owns row 0, Player1 owns row 1.
type Player int

const (
	Player0 Player = iota
	Player1
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) Valid() bool {
	return p == Player0 || p == Player1
}

func (p Player) String() string {
	switch p {
	case Player0:
		return "player0"
	case Player1:
		return "player1"
	default:
		return "unknown"
	}
}

// Final results from one player's point of view
const WIN = 1.0
const TIE = 0.5
const LOSS = 0.0

var (
	// ErrIllegalMove is returned when sowing is requested from an empty house,
	// a store or an index outside the board.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidBoard is returned for malformed boards and for positions where
	// the active player has nothing to sow.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrInvalidConfig is returned when a game configuration cannot produce a board.
	ErrInvalidConfig = errors.New("invalid config")
)
