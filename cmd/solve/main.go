// Command solve runs the endgame solver on a board given as two hex
// bitboards and prints the chosen move in external coordinates.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxwells-daemons/seldon/adapter"
	"github.com/maxwells-daemons/seldon/bitboard"
	"github.com/maxwells-daemons/seldon/solver"
)

func main() {
	playerFlag := flag.String("player", "", "side to move, as a hex bitboard (required)")
	oppFlag := flag.String("opp", "", "opponent, as a hex bitboard (required)")
	benchmark := flag.Bool("benchmark", false, "use winner-takes-empties scoring with +-64 bounds")
	cutoff := flag.Int("cutoff", 0, "fastest-first depth cutoff, 0 = default (5)")
	verbose := flag.Bool("verbose", false, "log timing at debug level")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()

	if *playerFlag == "" || *oppFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: solve -player <hex> -opp <hex> [-benchmark] [-cutoff N]")
		os.Exit(2)
	}

	player, err := parseBitboard(*playerFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing -player: %v\n", err)
		os.Exit(2)
	}
	opp, err := parseBitboard(*oppFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing -opp: %v\n", err)
		os.Exit(2)
	}
	if player&opp != 0 {
		fmt.Fprintln(os.Stderr, "player and opp overlap")
		os.Exit(2)
	}

	cfg := solver.Config{Benchmark: *benchmark, FastestFirstCutoff: *cutoff}

	start := time.Now()
	move := solver.SolveGameWith(cfg, player, opp)
	elapsed := time.Since(start)
	logger.Debug().Dur("elapsed", elapsed).Msg("solve complete")

	x, y, ok := adapter.ExternalMove(move)
	if !ok {
		fmt.Println("no legal move")
		return
	}
	fmt.Printf("move (%d, %d) score %d\n", x, y, move.Score)
}

func parseBitboard(s string) (bitboard.Bitboard, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex bitboard %q: %w", s, err)
	}
	return bitboard.Bitboard(v), nil
}
