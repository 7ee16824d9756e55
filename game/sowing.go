package game

// Sowing replays a move one seed at a time for presentation layers that
// animate the board. Driving it to completion gives the same result as
// ApplyMove.
type Sowing struct {
	player   Player
	next     Player
	board    Board
	side     Player
	pit      int
	inHand   int
	started  bool
	finished bool
}

// NewSowing prepares a stepwise replay of p sowing from house. The caller's
// board is copied.
func NewSowing(p Player, b Board, house int) (*Sowing, error) {
	if err := checkMove(p, b, house); err != nil {
		return nil, err
	}
	return &Sowing{
		player: p,
		next:   p,
		board:  b.Clone(),
		side:   p,
		pit:    house,
	}, nil
}

// Step performs one step: picking up the seeds, dropping one seed, or the
// final capture and turn assignment. It returns false once nothing is left.
func (s *Sowing) Step() bool {
	if s.finished {
		return false
	}

	switch {
	case !s.started:
		s.inHand = s.board[s.player][s.pit]
		s.board[s.player][s.pit] = 0
		s.started = true
	case s.inHand == 0:
		s.finish()
	default:
		s.advance()
		s.board[s.side][s.pit]++
		s.inHand--
	}
	return true
}

func (s *Sowing) advance() {
	h := s.board.Houses()
	last := h - 1 // opponent rows stop before their store
	if s.side == s.player {
		last = h
	}
	if s.pit == last {
		s.side = s.side.Opponent()
		s.pit = 0
		return
	}
	s.pit++
}

func (s *Sowing) finish() {
	h := s.board.Houses()
	s.finished = true
	s.next = s.player.Opponent()
	if s.side != s.player {
		return
	}
	if s.pit == h {
		s.next = s.player
		return
	}
	capture(s.board[s.player], s.board[s.player.Opponent()], s.pit)
}

// Board returns a copy of the intermediate board.
func (s *Sowing) Board() Board {
	return s.board.Clone()
}

// Pit returns the pit that received the latest seed, or the source house
// before sowing starts.
func (s *Sowing) Pit() (Player, int) {
	return s.side, s.pit
}

// InHand is the number of seeds still to be dropped.
func (s *Sowing) InHand() int {
	return s.inHand
}

func (s *Sowing) Done() bool {
	return s.finished
}

// Result finishes any remaining steps and returns the next player and board.
func (s *Sowing) Result() (Player, Board) {
	for s.Step() {
	}
	return s.next, s.board.Clone()
}
