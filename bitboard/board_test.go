package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Standard Othello opening position, internal coordinates.
const (
	openingPlayer = Bitboard(0x0000000810000000)
	openingOpp    = Bitboard(0x0000001008000000)
)

func TestFindMovesOpeningPosition(t *testing.T) {
	moves := FindMoves(openingPlayer, openingOpp)
	assert.Equal(t, 4, PopCount(moves), "opening position has exactly 4 legal moves")
	assert.Zero(t, moves&(openingPlayer|openingOpp), "legal moves must land on empty squares")
}

func TestFindMovesNoMoveMeansNoFlip(t *testing.T) {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			bit := MakeSingleton(x, y)
			if bit&(openingPlayer|openingOpp) != 0 {
				continue
			}
			isLegal := FindMoves(openingPlayer, openingOpp)&bit != 0
			flips := ResolveMove(openingPlayer, openingOpp, bit)
			if isLegal {
				assert.NotZero(t, flips, "legal move at (%d,%d) must flip at least one disk", x, y)
			} else {
				assert.Zero(t, flips, "illegal move at (%d,%d) must not flip any disk", x, y)
			}
		}
	}
}

func TestFindMovesDoesNotWrapAtFileBoundary(t *testing.T) {
	// player at x=2, opp run at x=1,0 on row y=7: the only legal landing
	// square is off the west edge, which doesn't exist, so player has no
	// move here at all. A mask-before-shift bug instead drops that (absent)
	// landing square and fabricates a wrapped one at (7, 6), the H-file of
	// the row above.
	player := MakeSingleton(2, 7)
	opp := MakeSingleton(1, 7) | MakeSingleton(0, 7)

	moves := FindMoves(player, opp)
	assert.Zero(t, moves&MakeSingleton(7, 6), "must not fabricate a wrapped move on the row above")
	assert.Zero(t, moves, "opp's run ends at the board edge with no square to land on")

	for moves != 0 {
		bit := ExtractDisk(moves)
		moves &^= bit
		assert.NotZero(t, ResolveMove(player, opp, bit), "every returned move must flip at least one disk")
	}
}

func TestResolveMoveFlipChain(t *testing.T) {
	// Row y=4: player at x=0, three opp disks at x=1..3, new disk at x=4.
	player := MakeSingleton(0, 4)
	opp := MakeSingleton(1, 4) | MakeSingleton(2, 4) | MakeSingleton(3, 4)
	newDisk := MakeSingleton(4, 4)

	flips := ResolveMove(player, opp, newDisk)
	want := MakeSingleton(1, 4) | MakeSingleton(2, 4) | MakeSingleton(3, 4)
	assert.Equal(t, want, flips)
}

func TestResolveMoveDisjointnessAndConservation(t *testing.T) {
	player, opp := openingPlayer, openingOpp
	moves := FindMoves(player, opp)
	for moves != 0 {
		bit := ExtractDisk(moves)
		moves &^= bit

		flips := ResolveMove(player, opp, bit)
		require.NotZero(t, flips)

		newPlayer := (player ^ flips) | bit
		newOpp := opp ^ flips

		assert.Zero(t, newPlayer&newOpp, "disjointness must hold after a move")
		before := PopCount(player) + PopCount(opp)
		after := PopCount(newPlayer) + PopCount(newOpp)
		assert.Equal(t, before+1, after, "total disk count should grow by exactly one per move")
	}
}

func TestStabilityCornerAlwaysStable(t *testing.T) {
	player := MakeSingleton(0, 0)
	assert.Equal(t, player, Stability(player, 0))
}

func TestStabilityOnlyFlagsPlayerDisks(t *testing.T) {
	player := openingPlayer
	opp := openingOpp
	stable := Stability(player, opp)
	assert.Zero(t, stable&^player, "stability must be a subset of player's disks")
}

func TestStabilityFullBoardAllStable(t *testing.T) {
	// A fully occupied board: every disk is trivially unflippable.
	player := Bitboard(0xAAAAAAAAAAAAAAAA)
	opp := ^player
	stable := Stability(player, opp)
	assert.Equal(t, player, stable)
}

func TestStabilityMonotonicAfterFurtherMoves(t *testing.T) {
	// A corner held by player, far from an unrelated opening-style skirmish
	// elsewhere on the board: the corner's stability must survive any
	// further legal move by either side.
	corner := MakeSingleton(0, 0)
	player := corner | openingPlayer
	opp := openingOpp

	before := Stability(player, opp)
	require.NotZero(t, before&corner, "corner must start stable")

	moves := FindMoves(opp, player)
	require.NotZero(t, moves, "opponent must have a move to exercise monotonicity")
	move := ExtractDisk(moves)
	flips := ResolveMove(opp, player, move)
	newOpp := (opp ^ flips) | move
	newPlayer := player ^ flips

	after := Stability(newPlayer, newOpp)
	assert.NotZero(t, after&corner, "corner must remain stable after the opponent's move")
}

func TestMakeSingletonBitPosition(t *testing.T) {
	// (x=0, y=0) should be the most significant bit.
	assert.Equal(t, Bitboard(1)<<63, MakeSingleton(0, 0))
	// (x=7, y=7) should be the least significant bit.
	assert.Equal(t, Bitboard(1), MakeSingleton(7, 7))
}
