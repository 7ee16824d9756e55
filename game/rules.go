package game

import "fmt"

// LegalMoves lists p's non-empty houses in ascending order.
func LegalMoves(p Player, b Board) []int {
	h := b.Houses()
	moves := make([]int, 0, h)
	for i := 0; i < h; i++ {
		if b[p][i] > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// ApplyMove sows the seeds of p's house and returns the player to move next
// together with the resulting board. b is left untouched.
func ApplyMove(p Player, b Board, house int) (Player, Board, error) {
	if err := checkMove(p, b, house); err != nil {
		return p, b, err
	}
	next := b.Clone()
	return sow(p, next, house), next, nil
}

// Sow performs the same transition as ApplyMove but updates b in place. The
// caller must own b exclusively; on error b is unchanged.
func Sow(p Player, b Board, house int) (Player, error) {
	if err := checkMove(p, b, house); err != nil {
		return p, err
	}
	return sow(p, b, house), nil
}

func checkMove(p Player, b Board, house int) error {
	if !p.Valid() {
		return fmt.Errorf("%w: unknown player %d", ErrIllegalMove, p)
	}
	if err := b.checkShape(); err != nil {
		return err
	}
	if house < 0 || house >= b.Houses() {
		return fmt.Errorf("%w: house %d outside 0..%d", ErrIllegalMove, house, b.Houses()-1)
	}
	if b[p][house] <= 0 {
		return fmt.Errorf("%w: house %d of %s is empty", ErrIllegalMove, house, p)
	}
	return nil
}

// sow walks the cycle own houses, own store, opponent houses. The opponent's
// store is not part of the cycle.
func sow(p Player, b Board, house int) Player {
	h := b.Houses()
	own, opp := b[p], b[p.Opponent()]
	cycle := 2*h + 1

	seeds := own[house]
	own[house] = 0

	if laps := seeds / cycle; laps > 0 {
		for i := range own {
			own[i] += laps
		}
		for i := 0; i < h; i++ {
			opp[i] += laps
		}
	}
	for k := 1; k <= seeds%cycle; k++ {
		if pos := (house + k) % cycle; pos <= h {
			own[pos]++
		} else {
			opp[pos-h-1]++
		}
	}

	last := (house + seeds) % cycle
	if last == h {
		return p
	}
	if last < h {
		capture(own, opp, last)
	}
	return p.Opponent()
}

// capture moves the landing seed and the opposite house into the store when
// the last seed fell into an empty own house facing a non-empty one.
func capture(own, opp []int, last int) {
	h := len(own) - 1
	opposite := h - 1 - last
	if own[last] != 1 || opp[opposite] == 0 {
		return
	}
	own[h] += 1 + opp[opposite]
	own[last] = 0
	opp[opposite] = 0
}

// IsTerminal reports whether one side has no seeds left in its houses.
func IsTerminal(b Board) bool {
	return b.HouseSeeds(Player0) == 0 || b.HouseSeeds(Player1) == 0
}

// Finalize sweeps the seeds left in each side's houses into that side's store.
func Finalize(b Board) Board {
	h := b.Houses()
	var final Board
	for p := range b {
		final[p] = make([]int, h+1)
		final[p][h] = b.SideSeeds(Player(p))
	}
	return final
}

// Outcome scores a finished game for p: WIN, LOSS or TIE and p's store minus
// the opponent's. Houses still holding seeds count for their owner, so the
// board does not need to be finalized first.
func Outcome(p Player, b Board) (float64, int) {
	diff := b.SideSeeds(p) - b.SideSeeds(p.Opponent())
	switch {
	case diff > 0:
		return WIN, diff
	case diff < 0:
		return LOSS, diff
	default:
		return TIE, diff
	}
}
