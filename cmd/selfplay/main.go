// selfplay runs a match between two named bot variants, alternating
// colors over the opening set, and prints the running score. With -db
// every game is also persisted for later inspection.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/benedictbrady/chess-challenge/bot"
	"github.com/benedictbrady/chess-challenge/game"
	"github.com/benedictbrady/chess-challenge/openings"
	"github.com/benedictbrady/chess-challenge/storage"
)

func main() {
	aFlag := flag.String("a", bot.NameBaseline, "first bot variant")
	bFlag := flag.String("b", bot.NameDepth3, "second bot variant")
	gamesFlag := flag.Int("games", 20, "number of games to play")
	seedFlag := flag.Int64("seed", 1, "random seed")
	bookFlag := flag.String("book", "", "opening book file (empty = built-in)")
	dbFlag := flag.String("db", "", "badger directory to record games in (empty = no recording)")
	flag.Parse()

	if *gamesFlag <= 0 {
		log.Fatalf("games must be positive, got %d", *gamesFlag)
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	botA, err := bot.ByName(*aFlag, rng)
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}
	botB, err := bot.ByName(*bFlag, rng)
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}

	book := openings.Default()
	if *bookFlag != "" {
		book, err = openings.Load(*bookFlag)
		if err != nil {
			log.Fatalf("selfplay: %v", err)
		}
	}

	var store *storage.Store
	if *dbFlag != "" {
		store, err = storage.Open(*dbFlag)
		if err != nil {
			log.Fatalf("selfplay: %v", err)
		}
		defer store.Close()
	}

	var aWins, bWins, draws int
	for i := 0; i < *gamesFlag; i++ {
		opening := book[(i/2)%len(book)]
		white, black := bot.Bot(botA), bot.Bot(botB)
		if i%2 == 1 {
			white, black = black, white
		}

		result, err := bot.PlayGame(white, black, opening.FEN, bot.MaxGamePlies)
		if err != nil {
			log.Fatalf("selfplay game %d: %v", i+1, err)
		}

		switch result.Outcome {
		case game.OutcomeWhiteWins:
			if white == bot.Bot(botA) {
				aWins++
			} else {
				bWins++
			}
		case game.OutcomeBlackWins:
			if black == bot.Bot(botA) {
				aWins++
			} else {
				bWins++
			}
		default:
			draws++
		}

		if store != nil {
			_, err := store.RecordGame(storage.GameRecord{
				White:      white.Name(),
				Black:      black.Name(),
				Opening:    opening.Name,
				OpeningFEN: opening.FEN,
				Result:     result.Outcome.String(),
				Plies:      result.Plies,
				Moves:      result.Moves,
			})
			if err != nil {
				log.Fatalf("selfplay game %d: %v", i+1, err)
			}
		}

		fmt.Printf("game %d: %s vs %s (%s): %s in %d plies\n",
			i+1, white.Name(), black.Name(), opening.Name, result.Outcome, result.Plies)
	}

	fmt.Printf("%s %d - %d %s, %d draws\n", botA.Name(), aWins, bWins, botB.Name(), draws)
}
