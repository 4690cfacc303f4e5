// Command rollout plays N uniform-random games from the standard Othello
// opening and reports the outcome distribution.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/maxwells-daemons/seldon/bitboard"
	"github.com/maxwells-daemons/seldon/rollout"
)

func main() {
	games := flag.Int("games", 1000, "number of random games to play")
	seed := flag.Uint64("seed", 1, "PRNG seed")
	verbose := flag.Bool("verbose", false, "log each game's ply count at debug level")
	flag.Parse()

	if *games <= 0 {
		fmt.Fprintln(os.Stderr, "-games must be > 0")
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()

	src := rand.New(rand.NewSource(*seed))
	active := bitboard.MakeSingleton(4, 3) | bitboard.MakeSingleton(3, 4)
	other := bitboard.MakeSingleton(3, 3) | bitboard.MakeSingleton(4, 4)

	var activeWins, opponentWins, draws int
	start := time.Now()
	for i := 0; i < *games; i++ {
		g := rollout.Play(active, other, src, logger)
		switch g.Outcome() {
		case rollout.Active:
			activeWins++
		case rollout.Opponent:
			opponentWins++
		case rollout.Draw:
			draws++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("games=%d active=%d opponent=%d draw=%d time=%v\n",
		*games, activeWins, opponentWins, draws, elapsed)
}
