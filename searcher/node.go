package searcher

import (
	"fmt"
	"math"
	"slices"

	"kalah/game"

	"golang.org/x/exp/rand"
)

const rootID = 0

// node is one position in the search tree. Statistics are always from the
// root player's point of view.
type node struct {
	board    game.Board
	player   game.Player // Player to move
	house    int         // Move that produced the node, -1 at the root
	terminal bool
	visits   int
	wins     float64
	score    int // Sum of final score differentials
	children []int
}

// tree is an arena of nodes addressed by index. It lives for one search.
type tree struct {
	nodes       []node
	player      game.Player // Root player
	exploration float64
}

func newTree(player game.Player, board game.Board, exploration float64) *tree {
	t := &tree{player: player, exploration: exploration}
	t.nodes = append(t.nodes, node{
		board:    board.Clone(),
		player:   player,
		house:    -1,
		terminal: game.IsTerminal(board),
	})
	return t
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) addChild(parent int, house int, player game.Player, board game.Board) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		board:    board,
		player:   player,
		house:    house,
		terminal: game.IsTerminal(board),
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// traverse follows the max UCB1 child from the root until it reaches a node
// without children. The visited ids are written into path.
func (t *tree) traverse(path []int) []int {
	path = append(path[:0], rootID)
	current := rootID
	for len(t.nodes[current].children) > 0 {
		parent := &t.nodes[current]
		lnN := math.Log(float64(parent.visits))
		opponent := parent.player != t.player

		maxID := -1
		maxScore := math.Inf(-1)
		for _, id := range parent.children {
			child := &t.nodes[id]
			score := ucb1(child.wins, child.visits, lnN, t.exploration, opponent)
			if score > maxScore {
				maxScore = score
				maxID = id
			}
		}
		current = maxID
		path = append(path, current)
	}
	return path
}

// expand adds every legal child of leaf. When a child gives the mover an extra
// turn it is expanded as well and the walk continues from it, so a whole chain
// of store landings is appended to path as one ply. Otherwise the walk ends on
// the first child. It returns the extended path and the number of chained
// expansions.
func (t *tree) expand(leaf int, path []int) ([]int, int, error) {
	chains := 0
	current := leaf
	for {
		first, chained, err := t.expandNode(current)
		if err != nil {
			return path, chains, err
		}
		if chained < 0 {
			return append(path, first), chains, nil
		}
		chains++
		current = chained
		path = append(path, current)
	}
}

// expandNode creates one child per legal move in ascending house order. It
// returns the first child and the highest-house non-terminal child that keeps
// the turn with the same player, or -1.
func (t *tree) expandNode(id int) (first int, chained int, err error) {
	parent := t.nodes[id]
	moves := game.LegalMoves(parent.player, parent.board)
	if len(moves) == 0 {
		return -1, -1, fmt.Errorf("%w: cannot expand node %d without legal moves", game.ErrInvalidBoard, id)
	}

	first, chained = -1, -1
	for _, house := range moves {
		next, board, err := game.ApplyMove(parent.player, parent.board, house)
		if err != nil {
			return -1, -1, err
		}
		child := t.addChild(id, house, next, board)
		if first < 0 {
			first = child
		}
		if next == parent.player && !t.nodes[child].terminal {
			chained = child
		}
	}
	return first, chained, nil
}

// rollout plays uniformly random moves from the node until the game ends and
// scores the final board for the root player.
func (t *tree) rollout(id int, rng *rand.Rand) (float64, int, error) {
	player := t.nodes[id].player
	board := t.nodes[id].board.Clone()
	for !game.IsTerminal(board) {
		moves := game.LegalMoves(player, board)
		next, err := game.Sow(player, board, moves[rng.Intn(len(moves))])
		if err != nil {
			return 0, 0, err
		}
		player = next
	}
	result, diff := game.Outcome(t.player, board)
	return result, diff, nil
}

func (t *tree) backpropagate(path []int, result float64, diff int) {
	for _, id := range path {
		n := &t.nodes[id]
		n.visits++
		n.wins += result
		n.score += diff
	}
}

type childStats struct {
	house  int
	visits int
	wins   float64
	score  int
}

type rootStats struct {
	visits   int
	seeds    int
	children []childStats
}

func (t *tree) rootStats() rootStats {
	root := t.nodes[rootID]
	stats := rootStats{
		visits:   root.visits,
		seeds:    root.board.Seeds(),
		children: make([]childStats, 0, len(root.children)),
	}
	for _, id := range root.children {
		child := t.nodes[id]
		stats.children = append(stats.children, childStats{
			house:  child.house,
			visits: child.visits,
			wins:   child.wins,
			score:  child.score,
		})
	}
	return stats
}

// mergeRoots sums the root statistics of independent trees grown from the
// same position. Children are keyed by house and kept in ascending order.
func mergeRoots(stats []rootStats) rootStats {
	if len(stats) == 1 {
		return stats[0]
	}

	merged := rootStats{}
	byHouse := map[int]int{}
	for _, s := range stats {
		merged.visits += s.visits
		merged.seeds = s.seeds
		for _, c := range s.children {
			i, ok := byHouse[c.house]
			if !ok {
				i = len(merged.children)
				byHouse[c.house] = i
				merged.children = append(merged.children, childStats{house: c.house})
			}
			merged.children[i].visits += c.visits
			merged.children[i].wins += c.wins
			merged.children[i].score += c.score
		}
	}
	slices.SortFunc(merged.children, func(a, b childStats) int {
		return a.house - b.house
	})
	return merged
}

// bestHouse picks the root child with the highest win rate. Score
// differentials are added with a factor small enough to only separate
// children whose win rates are equal.
func bestHouse(stats rootStats) (int, error) {
	if len(stats.children) == 0 || stats.visits == 0 {
		return -1, ErrSearchBudgetTooSmall
	}

	factor := 1 / (float64(stats.visits) * float64(stats.visits) * float64(stats.seeds))
	best := -1
	maxValue := math.Inf(-1)
	for _, child := range stats.children {
		if child.visits == 0 {
			continue
		}
		value := (child.wins + factor*float64(child.score)) / float64(child.visits)
		if value > maxValue {
			maxValue = value
			best = child.house
		}
	}
	if best < 0 {
		return -1, ErrSearchBudgetTooSmall
	}
	return best, nil
}
