package rollout

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/maxwells-daemons/seldon/bitboard"
)

// Ply is one half-move of a recorded game, from the mover's perspective:
// Active/Other are that side's boards before the ply, and ActiveAfter/
// OtherAfter are the same side's boards after it (still unswapped). A pass
// carries Move == 0 and leaves the boards unchanged.
type Ply struct {
	Active, Other           bitboard.Bitboard
	Move                    bitboard.Bitboard
	Passed                  bool
	ActiveAfter, OtherAfter bitboard.Bitboard
}

// Game is a full random playout recorded ply by ply, bounded by the same
// double-pass termination rule as RandomRollout.
type Game struct {
	Plies           []Ply
	FinalActive     bitboard.Bitboard
	FinalOther      bitboard.Bitboard
	FinalSamePlayer bool
}

// Play runs one uniform-random game to completion, recording its ply log.
// logger receives debug-level end-of-game notice and a warning if the game
// records more than two passes in total. Single passes earlier in the game
// count toward that total, so a legal game with one mid-game pass followed
// by the closing double pass triggers the warning.
func Play(active, other bitboard.Bitboard, src RandSource, logger zerolog.Logger) Game {
	var g Game
	samePlayer := true
	justPassed := false

	for {
		moves := bitboard.FindMoves(active, other)
		ply := Ply{Active: active, Other: other}

		if moves == 0 {
			ply.Passed = true
			ply.ActiveAfter, ply.OtherAfter = active, other
			g.Plies = append(g.Plies, ply)

			if justPassed {
				logger.Debug().Int("plies", len(g.Plies)).Msg("double pass, game over")
				break
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

			ply.Move = chosen
			ply.ActiveAfter, ply.OtherAfter = active, other
			g.Plies = append(g.Plies, ply)
		}

		samePlayer = !samePlayer
		active, other = other, active
	}

	g.FinalActive, g.FinalOther = active, other
	g.FinalSamePlayer = samePlayer

	passCount := lo.CountBy(g.Plies, func(p Ply) bool { return p.Passed })
	if passCount > 2 {
		logger.Warn().Int("passes", passCount).Int("plies", len(g.Plies)).
			Msg("game recorded more than two passes")
	}

	return g
}

// Outcome derives the RandomRollout-style result, relative to whoever was
// to move at ply 0.
func (g Game) Outcome() Outcome {
	score := bitboard.PopCount(g.FinalActive) - bitboard.PopCount(g.FinalOther)
	switch {
	case score == 0:
		return Draw
	case (score > 0) == g.FinalSamePlayer:
		return Active
	default:
		return Opponent
	}
}

// Replay re-applies the recorded ply log from scratch and returns the
// final (active, other) pair, which must match (g.FinalActive,
// g.FinalOther) for any game Play produced.
func (g Game) Replay() (active, other bitboard.Bitboard) {
	if len(g.Plies) == 0 {
		return 0, 0
	}

	active, other = g.Plies[0].Active, g.Plies[0].Other
	for i, ply := range g.Plies {
		if ply.Passed {
			if i > 0 && g.Plies[i-1].Passed {
				break // second pass in a row ends the game, as in Play: no swap
			}
			active, other = other, active
			continue
		}
		flipped := bitboard.ResolveMove(active, other, ply.Move)
		active = (active ^ flipped) | ply.Move
		other = other ^ flipped
		active, other = other, active
	}
	return active, other
}

// Moves returns the sequence of singleton moves played, skipping passes.
func (g Game) Moves() []bitboard.Bitboard {
	played := lo.Filter(g.Plies, func(p Ply, _ int) bool { return !p.Passed })
	return lo.Map(played, func(p Ply, _ int) bitboard.Bitboard { return p.Move })
}
