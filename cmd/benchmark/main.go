// benchmark estimates a bot's Elo by playing it against an opponent of
// known rating over the opening set and converting the score fraction
// through the logistic Elo model.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/benedictbrady/chess-challenge/bot"
	"github.com/benedictbrady/chess-challenge/game"
	"github.com/benedictbrady/chess-challenge/openings"
)

// eloClamp bounds the estimate: perfect or zero scores would otherwise
// send the logistic term to infinity.
const eloClamp = 800

func main() {
	botFlag := flag.String("bot", bot.NameBaseline, "bot variant to rate")
	opponentFlag := flag.String("opponent", bot.NameDepth3, "opponent variant")
	opponentElo := flag.Float64("opponent-elo", 1500, "opponent's assumed rating")
	gamesFlag := flag.Int("games", 50, "number of games (color-alternated)")
	seedFlag := flag.Int64("seed", 1, "random seed")
	bookFlag := flag.String("book", "", "opening book file (empty = built-in)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	if *gamesFlag <= 0 {
		log.Fatalf("games must be positive, got %d", *gamesFlag)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	subject, err := bot.ByName(*botFlag, rng)
	if err != nil {
		log.Fatalf("benchmark: %v", err)
	}
	opponent, err := bot.ByName(*opponentFlag, rng)
	if err != nil {
		log.Fatalf("benchmark: %v", err)
	}

	book := openings.Default()
	if *bookFlag != "" {
		book, err = openings.Load(*bookFlag)
		if err != nil {
			log.Fatalf("benchmark: %v", err)
		}
	}

	var wins, draws, losses int
	for i := 0; i < *gamesFlag; i++ {
		opening := book[(i/2)%len(book)]
		white, black := bot.Bot(subject), bot.Bot(opponent)
		subjectIsWhite := i%2 == 0
		if !subjectIsWhite {
			white, black = black, white
		}

		result, err := bot.PlayGame(white, black, opening.FEN, bot.MaxGamePlies)
		if err != nil {
			log.Fatalf("benchmark game %d: %v", i+1, err)
		}
		switch {
		case result.Outcome == game.OutcomeWhiteWins && subjectIsWhite,
			result.Outcome == game.OutcomeBlackWins && !subjectIsWhite:
			wins++
		case result.Outcome == game.OutcomeDraw:
			draws++
		default:
			losses++
		}
	}

	n := float64(*gamesFlag)
	score := (float64(wins) + 0.5*float64(draws)) / n
	se := math.Sqrt(score * (1 - score) / n)
	low := score - 1.96*se
	high := score + 1.96*se

	fmt.Printf("%s vs %s (%.0f): +%d =%d -%d, score %.1f%%\n",
		subject.Name(), opponent.Name(), *opponentElo, wins, draws, losses, score*100)
	fmt.Printf("elo %.0f (95%% CI %.0f .. %.0f)\n",
		eloEstimate(score, *opponentElo),
		eloEstimate(low, *opponentElo),
		eloEstimate(high, *opponentElo))
}

// eloEstimate converts a score fraction against a known rating into a
// rating via the logistic model, clamped around the opponent's rating.
func eloEstimate(score, base float64) float64 {
	if score <= 0 {
		return base - eloClamp
	}
	if score >= 1 {
		return base + eloClamp
	}
	e := base + 400*math.Log10(score/(1-score))
	if e > base+eloClamp {
		return base + eloClamp
	}
	if e < base-eloClamp {
		return base - eloClamp
	}
	return e
}
