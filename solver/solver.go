// Package solver implements an exhaustive alpha-beta negamax endgame
// solver for Othello positions, with a "fastest-first" move-ordering
// heuristic that searches children likely to most restrict the opponent's
// mobility first to get earlier cutoffs.
//
// The search is purely sequential and stateless: every call is a total
// function of its arguments, scratch storage is stack-allocated and sized
// to MaxMoves, and there is no transposition table, opening book, or
// iterative deepening. Independent SolveGame calls may run concurrently on
// separate goroutines without coordination.
package solver

import (
	"math/bits"

	"github.com/maxwells-daemons/seldon/bitboard"
)

// MaxMoves is the per-node scratch-array size. Othello's combinatorics
// never produce more than 32 legal moves at a single node in the lower
// reaches of the search this solver is meant for.
const MaxMoves = 32

// InfinitySentinel exceeds any real score; SolveGame returns it when the
// side to move at the root has no legal move.
const InfinitySentinel = 999

// defaultFastestFirstCutoff is the remaining-empty-squares depth below
// which the deep search stops reordering children and falls back to plain
// negamax; reordering overhead isn't worth it that close to the leaves.
const defaultFastestFirstCutoff = 5

// Move is the solver's result: a square in internal (x, y) coordinates
// and that move's negamax score from the root's perspective.
type Move struct {
	X, Y, Score int
}

// Config selects between the production win/loss/draw search and the
// benchmark full-score-maximizing search. The zero value is the
// production configuration: disabled benchmark scoring, and
// FastestFirstCutoff defaulting to 5.
type Config struct {
	// Benchmark switches to "winner takes the empties" scoring and widens
	// the search window to +-64 so it maximizes final score rather than
	// just the win/loss/draw outcome.
	Benchmark bool
	// FastestFirstCutoff overrides the depth below which fastest-first
	// ordering gives way to plain negamax. Zero means the default, 5.
	FastestFirstCutoff int
}

func (c Config) cutoff() int {
	if c.FastestFirstCutoff == 0 {
		return defaultFastestFirstCutoff
	}
	return c.FastestFirstCutoff
}

func (c Config) initialBound() int {
	if c.Benchmark {
		return 64
	}
	return 1
}

// SolveGame returns the optimal next move for player under the production
// configuration (pure win/loss/draw search). If player has no legal move,
// it returns Move{-1, -1, InfinitySentinel}.
func SolveGame(player, opp bitboard.Bitboard) Move {
	return SolveGameWith(Config{}, player, opp)
}

// SolveGameWith is SolveGame with an explicit Config, standing in for the
// original engine's compile-time BENCHMARK flag: Go has no #ifdef, so the
// build-time choice becomes an ordinary, zero-value-safe argument instead.
func SolveGameWith(cfg Config, player, opp bitboard.Bitboard) Move {
	bound := cfg.initialBound()
	depth := 64 - bitboard.PopCount(player) - bitboard.PopCount(opp)

	moves := bitboard.FindMoves(player, opp)
	maxScore := -InfinitySentinel
	index := -1

	for moves != 0 {
		newMove := bitboard.ExtractDisk(moves)
		moves &^= newMove

		flipped := bitboard.ResolveMove(player, opp, newMove)
		playerBoard := (player ^ flipped) | newMove
		oppBoard := opp ^ flipped

		score := -negamaxFastestFirst(cfg, oppBoard, playerBoard, -bound, bound, false, depth)
		if score > maxScore {
			maxScore = score
			index = moveIndex(newMove)
		}
	}

	if index < 0 {
		return Move{X: -1, Y: -1, Score: InfinitySentinel}
	}
	return Move{X: index % 8, Y: index / 8, Score: maxScore}
}

// negamax is the shallow-search variant: children are visited in
// bit-extraction (LSB-first) order with no explicit reordering, since
// ordering overhead isn't worth it this close to the leaves.
func negamax(cfg Config, player, opp bitboard.Bitboard, alpha, beta int, passed bool) int {
	moves := bitboard.FindMoves(player, opp)
	if moves == 0 {
		if passed {
			return evaluate(cfg, player, opp)
		}
		return -negamax(cfg, opp, player, -beta, -alpha, true)
	}

	var playerBoards, oppBoards [MaxMoves]bitboard.Bitboard
	n := 0
	for moves != 0 {
		newMove := bitboard.ExtractDisk(moves)
		moves &^= newMove
		flipped := bitboard.ResolveMove(player, opp, newMove)
		playerBoards[n] = (player ^ flipped) | newMove
		oppBoards[n] = opp ^ flipped
		n++
	}

	maxScore := -InfinitySentinel
	for i := 0; i < n; i++ {
		score := -negamax(cfg, oppBoards[i], playerBoards[i], -beta, -alpha, false)
		if score > maxScore {
			maxScore = score
			if maxScore > alpha {
				alpha = maxScore
				if alpha >= beta {
					return alpha
				}
			}
		}
	}
	return maxScore
}

// negamaxFastestFirst is the deep-search variant. It generates all
// children up front, then repeatedly selects the not-yet-visited child
// whose reply leaves the opponent with the fewest moves: an O(n^2)
// selection loop, which beats an explicit sort for the small n this solver
// ever deals with.
func negamaxFastestFirst(cfg Config, player, opp bitboard.Bitboard, alpha, beta int, passed bool, depth int) int {
	if depth < cfg.cutoff() {
		return negamax(cfg, player, opp, alpha, beta, passed)
	}

	moves := bitboard.FindMoves(player, opp)
	if moves == 0 {
		if passed {
			return evaluate(cfg, player, opp)
		}
		return -negamaxFastestFirst(cfg, opp, player, -beta, -alpha, true, depth)
	}

	var playerBoards, oppBoards [MaxMoves]bitboard.Bitboard
	var oppMobilities [MaxMoves]int
	n := 0
	for moves != 0 {
		newMove := bitboard.ExtractDisk(moves)
		moves &^= newMove
		flipped := bitboard.ResolveMove(player, opp, newMove)

		playerBoard := (player ^ flipped) | newMove
		oppBoard := opp ^ flipped
		playerBoards[n] = playerBoard
		oppBoards[n] = oppBoard
		oppMobilities[n] = mobility(oppBoard, playerBoard)
		n++
	}

	maxScore := -InfinitySentinel
	for i := 0; i < n; i++ {
		bestMobility := MaxMoves + 1
		bestIndex := -1
		for j := 0; j < n; j++ {
			if oppMobilities[j] < bestMobility {
				bestMobility = oppMobilities[j]
				bestIndex = j
			}
		}
		oppMobilities[bestIndex] = MaxMoves + 1

		score := -negamaxFastestFirst(cfg, oppBoards[bestIndex], playerBoards[bestIndex], -beta, -alpha, false, depth-1)
		if score > maxScore {
			maxScore = score
			if maxScore > alpha {
				alpha = maxScore
				if alpha >= beta {
					return alpha
				}
			}
		}
	}
	return maxScore
}

func evaluate(cfg Config, player, opp bitboard.Bitboard) int {
	score := bitboard.PopCount(player) - bitboard.PopCount(opp)
	if !cfg.Benchmark {
		return score
	}
	empties := bitboard.PopCount(^(player | opp))
	switch {
	case score > 0:
		return score + empties
	case score < 0:
		return score - empties
	default:
		return 0
	}
}

func mobility(player, opp bitboard.Bitboard) int {
	return bitboard.PopCount(bitboard.FindMoves(player, opp))
}

func moveIndex(b bitboard.Bitboard) int {
	return bits.TrailingZeros64(uint64(b))
}
