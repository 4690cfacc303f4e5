// Package adapter bridges the bit-packed Bitboard representation to the
// plain data shapes a caller outside this module is expected to hand in
// and expect back: an [8][8]bool occupancy matrix, and solver.Move results
// expressed in the caller's own (x, y) convention rather than the solver's
// internal one.
package adapter

import (
	"github.com/samber/lo"

	"github.com/maxwells-daemons/seldon/bitboard"
	"github.com/maxwells-daemons/seldon/solver"
)

// Point is a square in external (x, y) coordinates, both in [0, 7].
type Point struct {
	X, Y int
}

// Serialize packs an 8x8 occupancy matrix, indexed [y][x], into a
// Bitboard. It uses the same bit position as bitboard.MakeSingleton for
// every set cell: reading the matrix row-major MSB-first assigns square
// (x, y) bit (7-y)*8+(7-x), identical to MakeSingleton's own formula, so
// no coordinate reversal happens here.
func Serialize(m [8][8]bool) bitboard.Bitboard {
	var b bitboard.Bitboard
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m[y][x] {
				b |= bitboard.MakeSingleton(x, y)
			}
		}
	}
	return b
}

// Deserialize unpacks a Bitboard into an 8x8 occupancy matrix, the
// inverse of Serialize.
func Deserialize(b bitboard.Bitboard) [8][8]bool {
	var m [8][8]bool
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if b&bitboard.MakeSingleton(x, y) != 0 {
				m[y][x] = true
			}
		}
	}
	return m
}

// Locations returns every set cell of m as a Point, in row-major order.
func Locations(m [8][8]bool) []Point {
	var all []Point
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			all = append(all, Point{X: x, Y: y})
		}
	}
	return lo.Filter(all, func(p Point, _ int) bool { return m[p.Y][p.X] })
}

// FromLocations builds an occupancy matrix from a list of set cells, the
// inverse of Locations.
func FromLocations(pts []Point) [8][8]bool {
	var m [8][8]bool
	lo.ForEach(pts, func(p Point, _ int) { m[p.Y][p.X] = true })
	return m
}

// ExternalSingleton returns the singleton Bitboard for the square at
// external coordinates (xExt, yExt). The solver and bitboard packages
// work entirely in an internal coordinate system that is the (7-x, 7-y)
// mirror of this one; this is the one place that reversal happens on the
// way in.
func ExternalSingleton(xExt, yExt int) bitboard.Bitboard {
	return bitboard.MakeSingleton(7-xExt, 7-yExt)
}

// ExternalMove converts a solver.Move into external (x, y) coordinates,
// undoing the (7-x, 7-y) mirroring that falls out of how SolveGame
// derives X and Y from a raw bit index. ok is false when move carries no
// legal move (X < 0).
func ExternalMove(move solver.Move) (x, y int, ok bool) {
	if move.X < 0 {
		return 0, 0, false
	}
	return 7 - move.X, 7 - move.Y, true
}
