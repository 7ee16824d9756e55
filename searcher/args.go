package searcher

import "math"

// Hyperparameters for MCTS

// Exploration constant of UCB1
const C = math.Sqrt2

// Minimum cycles before the root has children: the first visit only rolls out
const MinEpisodes = 2
