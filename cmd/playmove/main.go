// playmove reads a position, picks a move with the requested bot, and
// prints a single JSON object describing the move and the resulting
// position. Intended to be driven by an external match runner.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/dylhunn/dragontoothmg"

	"github.com/benedictbrady/chess-challenge/bot"
	"github.com/benedictbrady/chess-challenge/game"
	"github.com/benedictbrady/chess-challenge/nn"
)

type response struct {
	UCI      string  `json:"uci"`
	FEN      string  `json:"fen"`
	GameOver bool    `json:"gameOver"`
	Outcome  *string `json:"outcome"`
}

func main() {
	fenFlag := flag.String("fen", dragontoothmg.Startpos, "position to move from")
	botFlag := flag.String("bot", bot.NameBaseline, "bot variant to play the move")
	modelFlag := flag.String("model", "", "NN weights file; overrides -bot with the network player")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	g, err := game.FromFEN(*fenFlag)
	if err != nil {
		log.Fatalf("playmove: %v", err)
	}

	var player bot.Bot
	if *modelFlag != "" {
		net := nn.NewNetwork()
		if err := net.Load(*modelFlag); err != nil {
			log.Fatalf("playmove: %v", err)
		}
		player = bot.NewNNBot("nn", net)
	} else {
		var rng *rand.Rand
		if *seedFlag != 0 {
			rng = rand.New(rand.NewSource(*seedFlag))
		}
		player, err = bot.ByName(*botFlag, rng)
		if err != nil {
			log.Fatalf("playmove: %v", err)
		}
	}

	resp := response{FEN: g.FEN()}
	if move, ok := player.ChooseMove(g); ok {
		if err := g.MakeMove(move); err != nil {
			log.Fatalf("playmove: %v", err)
		}
		resp.UCI = move.String()
		resp.FEN = g.FEN()
	}
	if outcome, over := g.Result(); over {
		resp.GameOver = true
		s := outcome.String()
		resp.Outcome = &s
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(&resp); err != nil {
		log.Fatalf("playmove: %v", err)
	}
}
