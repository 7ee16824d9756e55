// meta/meta.go
package meta

// HOUSES is the number of houses per side on a standard board.
const HOUSES = 6

// SEEDS is the number of seeds initially placed in every house.
const SEEDS = 4

const MIN_HOUSES = 2
const MAX_HOUSES = 9
const MIN_SEEDS = 1
const MAX_SEEDS = 9

// GO_ROUTINES defines the number of goroutines used by experiment agents.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 1000

// TIME_BUDGET is the default search time per move in milliseconds.
const TIME_BUDGET = 1000

// MAX_TURNS caps the moves of a single game.
const MAX_TURNS = 1000
