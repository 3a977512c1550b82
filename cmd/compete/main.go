// compete scores a candidate bot against the baseline over the full
// opening set, both colors per opening, and reports whether it clears
// the pass threshold. A diversity report flags degenerate play.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/benedictbrady/chess-challenge/bot"
	"github.com/benedictbrady/chess-challenge/game"
	"github.com/benedictbrady/chess-challenge/openings"
)

const passThreshold = 0.70

func main() {
	candidateFlag := flag.String("candidate", bot.NameBaseline, "candidate bot variant")
	opponentFlag := flag.String("opponent", bot.NameDepth3, "opponent bot variant")
	seedFlag := flag.Int64("seed", 1, "random seed")
	bookFlag := flag.String("book", "", "opening book file (empty = built-in)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seedFlag))
	candidate, err := bot.ByName(*candidateFlag, rng)
	if err != nil {
		log.Fatalf("compete: %v", err)
	}
	opponent, err := bot.ByName(*opponentFlag, rng)
	if err != nil {
		log.Fatalf("compete: %v", err)
	}

	book := openings.Default()
	if *bookFlag != "" {
		book, err = openings.Load(*bookFlag)
		if err != nil {
			log.Fatalf("compete: %v", err)
		}
	}

	var wins, draws, losses int
	firstMoves := make(map[string]int)
	sequences := make(map[string]int)

	games := 0
	for _, opening := range book {
		for color := 0; color < 2; color++ {
			white, black := bot.Bot(candidate), bot.Bot(opponent)
			candidateIsWhite := color == 0
			if !candidateIsWhite {
				white, black = black, white
			}

			result, err := bot.PlayGame(white, black, opening.FEN, bot.MaxGamePlies)
			if err != nil {
				log.Fatalf("compete (%s): %v", opening.Name, err)
			}
			games++

			switch {
			case result.Outcome == game.OutcomeWhiteWins && candidateIsWhite,
				result.Outcome == game.OutcomeBlackWins && !candidateIsWhite:
				wins++
			case result.Outcome == game.OutcomeDraw:
				draws++
			default:
				losses++
			}

			// Candidate's first move: ply 0 as white, ply 1 as black.
			firstPly := 0
			if !candidateIsWhite {
				firstPly = 1
			}
			if len(result.Moves) > firstPly {
				firstMoves[result.Moves[firstPly]]++
			}
			if len(result.Moves) >= 4 {
				sequences[strings.Join(result.Moves[:4], " ")]++
			}
		}
	}

	score := (float64(wins) + 0.5*float64(draws)) / float64(games)
	fmt.Printf("%s vs %s: +%d =%d -%d over %d games, score %.1f%%\n",
		candidate.Name(), opponent.Name(), wins, draws, losses, games, score*100)
	fmt.Printf("diversity: %d distinct first moves, %d distinct 4-move sequences, first-move entropy %.2f bits\n",
		len(firstMoves), len(sequences), entropy(firstMoves))

	if score >= passThreshold {
		fmt.Println("PASS")
		return
	}
	fmt.Printf("FAIL (need %.0f%%)\n", passThreshold*100)
	os.Exit(1)
}

// entropy computes the Shannon entropy in bits of a count histogram.
func entropy(counts map[string]int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
