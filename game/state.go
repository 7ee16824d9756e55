package game

import (
	"encoding/binary"
	"hash/fnv"
)

type StateHash uint64

// State is a position together with the player to move. Play never modifies
// the receiver.
type State struct {
	Player Player
	Board  Board
}

func (s State) LegalMoves() []int {
	if s.IsTerminal() {
		return nil
	}
	return LegalMoves(s.Player, s.Board)
}

func (s State) Play(house int) (State, error) {
	next, board, err := ApplyMove(s.Player, s.Board, house)
	if err != nil {
		return s, err
	}
	return State{Player: next, Board: board}, nil
}

func (s State) IsTerminal() bool {
	return IsTerminal(s.Board)
}

// Scores returns each side's final total, houses included.
func (s State) Scores() [2]int {
	return [2]int{s.Board.SideSeeds(Player0), s.Board.SideSeeds(Player1)}
}

// Winner reports the player with more seeds. ok is false while the game is
// running and on a tie.
func (s State) Winner() (winner Player, ok bool) {
	if !s.IsTerminal() {
		return Player0, false
	}
	result, _ := Outcome(Player0, s.Board)
	switch result {
	case WIN:
		return Player0, true
	case LOSS:
		return Player1, true
	default:
		return Player0, false
	}
}

func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash player to move
	binary.Write(hasher, binary.LittleEndian, int64(s.Player))

	// Hash pits row by row
	for _, row := range s.Board {
		for _, seeds := range row {
			binary.Write(hasher, binary.LittleEndian, int64(seeds))
		}
	}

	return StateHash(hasher.Sum64())
}
