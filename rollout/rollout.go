// Package rollout implements uniform-random playout of an Othello position
// to terminal state, plus a thin Game wrapper that records the resulting
// ply-by-ply log.
package rollout

import "github.com/maxwells-daemons/seldon/bitboard"

// Outcome is the result of a rollout, relative to the player who was to
// move when the rollout began ("active").
type Outcome int

const (
	// Active means the side to move at the start of the rollout won.
	Active Outcome = iota
	// Opponent means the side not to move at the start of the rollout won.
	Opponent
	// Draw means the rollout ended with equal disk counts.
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Opponent:
		return "opponent"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// RandSource is the random source rollouts draw moves from. math/rand.Rand
// and golang.org/x/exp/rand.Rand both satisfy it, as does any test double,
// so rollouts stay deterministic under test and contention-free when many
// run concurrently, each with its own source.
type RandSource interface {
	// Intn returns a uniform random int in [0, n).
	Intn(n int) int
}

// RandomRollout simulates uniform-random play from (active, other) to game
// end and returns the outcome relative to active, the side to move at the
// start of the rollout. Callers must not pre-swap active/other; the
// returned Outcome is only meaningful relative to whoever held the move at
// the moment this function was called.
func RandomRollout(active, other bitboard.Bitboard, src RandSource) Outcome {
	samePlayer := true
	justPassed := false

	for {
		moves := bitboard.FindMoves(active, other)

		if moves == 0 {
			if justPassed {
				break // both sides passed in a row: game over
			}
			justPassed = true
		} else {
			justPassed = false

			n := bitboard.PopCount(moves)
			k := src.Intn(n)
			pos := bitboard.SelectBit(moves, k+1)
			chosen := bitboard.Bitboard(1) << (pos - 1)

			flipped := bitboard.ResolveMove(active, other, chosen)
			active = (active ^ flipped) | chosen
			other = other ^ flipped
		}

		samePlayer = !samePlayer
		active, other = other, active
	}

	score := bitboard.PopCount(active) - bitboard.PopCount(other)
	switch {
	case score == 0:
		return Draw
	case (score > 0) == samePlayer:
		return Active
	default:
		return Opponent
	}
}
