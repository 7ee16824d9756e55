package game

import (
	"fmt"
	"strings"
)

// Board holds the pits of both players. Each row lists the houses from left to
// right followed by the store, so row[Houses()] is the store.
type Board [2][]int

// NewBoard creates a starting board with seeds in every house and empty stores.
func NewBoard(houses, seeds int) (Board, error) {
	if houses < 2 {
		return Board{}, fmt.Errorf("%w: need at least 2 houses, got %d", ErrInvalidConfig, houses)
	}
	if seeds < 1 {
		return Board{}, fmt.Errorf("%w: need at least 1 seed per house, got %d", ErrInvalidConfig, seeds)
	}

	var b Board
	for p := range b {
		b[p] = make([]int, houses+1)
		for i := 0; i < houses; i++ {
			b[p][i] = seeds
		}
	}
	return b, nil
}

func (b Board) Houses() int {
	return len(b[0]) - 1
}

func (b Board) Store(p Player) int {
	return b[p][b.Houses()]
}

// HouseSeeds counts the seeds still in play on p's side.
func (b Board) HouseSeeds(p Player) int {
	total := 0
	for _, s := range b[p][:b.Houses()] {
		total += s
	}
	return total
}

// SideSeeds counts the seeds on p's side including the store.
func (b Board) SideSeeds(p Player) int {
	return b.HouseSeeds(p) + b.Store(p)
}

// Seeds counts every seed on the board.
func (b Board) Seeds() int {
	return b.SideSeeds(Player0) + b.SideSeeds(Player1)
}

// Clone returns a deep copy that shares no memory with b.
func (b Board) Clone() Board {
	var c Board
	for p := range b {
		c[p] = make([]int, len(b[p]))
		copy(c[p], b[p])
	}
	return c
}

func (b Board) Equal(other Board) bool {
	for p := range b {
		if len(b[p]) != len(other[p]) {
			return false
		}
		for i := range b[p] {
			if b[p][i] != other[p][i] {
				return false
			}
		}
	}
	return true
}

// Validate checks the shape of the board and that no pit is negative.
func (b Board) Validate() error {
	if err := b.checkShape(); err != nil {
		return err
	}
	for p := range b {
		for i, s := range b[p] {
			if s < 0 {
				return fmt.Errorf("%w: pit %d of row %d holds %d seeds", ErrInvalidBoard, i, p, s)
			}
		}
	}
	return nil
}

func (b Board) checkShape() error {
	if len(b[0]) != len(b[1]) {
		return fmt.Errorf("%w: rows have different lengths %d and %d", ErrInvalidBoard, len(b[0]), len(b[1]))
	}
	if len(b[0]) < 3 {
		return fmt.Errorf("%w: need at least 2 houses and a store per row", ErrInvalidBoard)
	}
	return nil
}

// String draws the board from player0's seat: player1's houses reversed on
// top, stores on the sides, player0's houses at the bottom.
func (b Board) String() string {
	h := b.Houses()
	var sb strings.Builder

	sb.WriteString("    ")
	for i := h - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%3d", b[Player1][i])
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%3d %s %3d\n", b.Store(Player1), strings.Repeat(" ", 3*h), b.Store(Player0))

	sb.WriteString("    ")
	for i := 0; i < h; i++ {
		fmt.Fprintf(&sb, "%3d", b[Player0][i])
	}
	return sb.String()
}
