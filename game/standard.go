package game

import "fmt"

// Config is the caller-supplied setup of a game.
type Config struct {
	Houses      int
	Seeds       int
	StartPlayer Player
}

// StandardConfig is Kalah(6,4) with player0 moving first.
func StandardConfig() Config {
	return Config{
		Houses:      6,
		Seeds:       4,
		StartPlayer: Player0,
	}
}

func (c Config) Validate() error {
	if c.Houses < 2 {
		return fmt.Errorf("%w: need at least 2 houses, got %d", ErrInvalidConfig, c.Houses)
	}
	if c.Seeds < 1 {
		return fmt.Errorf("%w: need at least 1 seed per house, got %d", ErrInvalidConfig, c.Seeds)
	}
	if !c.StartPlayer.Valid() {
		return fmt.Errorf("%w: unknown start player %d", ErrInvalidConfig, c.StartPlayer)
	}
	return nil
}

// NewState builds the starting position described by c.
func (c Config) NewState() (State, error) {
	if err := c.Validate(); err != nil {
		return State{}, err
	}
	b, err := NewBoard(c.Houses, c.Seeds)
	if err != nil {
		return State{}, err
	}
	return State{Player: c.StartPlayer, Board: b}, nil
}
