package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/Erzhan279/Durac-game-telegram/internal/bots"
	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
	"github.com/Erzhan279/Durac-game-telegram/internal/engine/sim"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	seed := flag.Int64("seed", 1, "seed of the first game")
	human := flag.String("human", "easy", "bot level in the human seat (easy|normal)")
	bot := flag.String("bot", "normal", "bot level in the bot seat (easy|normal)")
	maxSteps := flag.Int("max-steps", 2000, "step limit per game")
	verbose := flag.Bool("v", false, "print every game")
	flag.Parse()

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	if *verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	pterm.DefaultHeader.WithFullWidth().Println("Durak self-play")
	pterm.Info.Printfln("%d games from seed %d: %s (human seat) vs %s (bot seat)", *games, *seed, *human, *bot)

	s, err := play(*games, *seed, *maxSteps, *human, *bot, logger)
	if err != nil {
		logger.Error("self-play failed", "error", err)
		os.Exit(1)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(s.rows()).Render(); err != nil {
		logger.Error("render", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("avg %.1f steps, %.1f rounds per game", s.avgSteps(), s.avgRounds())
}

type summary struct {
	games  int
	wins   map[engine.Winner]int
	steps  int
	rounds int
}

func play(games int, seed int64, maxSteps int, human, bot string, logger *slog.Logger) (summary, error) {
	s := summary{wins: map[engine.Winner]int{}}
	for i := 0; i < games; i++ {
		gameSeed := seed + int64(i)
		res, err := sim.RunSelfPlay(gameSeed, maxSteps, bots.New(human, gameSeed*2), bots.New(bot, gameSeed*2+1))
		if err != nil {
			return s, err
		}
		logger.Debug("game finished",
			"seed", res.Seed,
			"winner", res.Winner.String(),
			"steps", res.Steps,
			"rounds", res.Rounds,
		)
		s.games++
		s.wins[res.Winner]++
		s.steps += res.Steps
		s.rounds += res.Rounds
	}
	return s, nil
}

func (s summary) rows() pterm.TableData {
	rows := pterm.TableData{{"Outcome", "Games", "Share"}}
	for _, w := range []engine.Winner{engine.WinnerHuman, engine.WinnerBot, engine.WinnerDraw} {
		n := s.wins[w]
		rows = append(rows, []string{w.String(), fmt.Sprint(n), fmt.Sprintf("%.1f%%", s.share(n))})
	}
	return rows
}

func (s summary) share(n int) float64 {
	if s.games == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.games)
}

func (s summary) avgSteps() float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.steps) / float64(s.games)
}

func (s summary) avgRounds() float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.rounds) / float64(s.games)
}
