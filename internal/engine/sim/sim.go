package sim

import (
	"fmt"
	"strings"

	"github.com/Erzhan279/Durac-game-telegram/internal/bots"
	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
)

type ActionRecord struct {
	Step  int
	Phase engine.Phase
	Side  engine.Side
	A     engine.Action
}

type Result struct {
	Seed   int64
	Winner engine.Winner
	Steps  int
	Rounds int
}

// RunSelfPlay plays one game between two bots and checks the engine
// invariants after every move.
func RunSelfPlay(seed int64, maxSteps int, human, bot bots.Bot) (Result, error) {
	state := engine.NewGame(seed)
	players := map[engine.Side]bots.Bot{
		engine.SideHuman: human,
		engine.SideBot:   bot,
	}
	res := Result{Seed: seed}
	records := []ActionRecord{}

	for step := 0; step < maxSteps; step++ {
		if state.Over() {
			res.Winner = state.Winner
			res.Steps = step
			return res, nil
		}
		side, ok := engine.CurrentActor(state)
		if !ok {
			return res, failure(seed, step, state, side, records, "no current actor")
		}
		legal := engine.LegalActions(state, side)
		if len(legal) == 0 {
			return res, failure(seed, step, state, side, records, "no legal actions")
		}
		prev := state.Clone()
		action := players[side].ChooseAction(state.Clone(), side)
		if err := engine.ApplyAction(&state, side, action); err != nil {
			return res, failure(seed, step, prev, side, records, fmt.Sprintf("apply error: %v", err))
		}
		records = append(records, ActionRecord{Step: step, Phase: prev.Phase, Side: side, A: action})
		if action.Type != engine.ActionPlayCard {
			res.Rounds++
		}
		if err := CheckInvariants(prev, state, side, action); err != nil {
			return res, failure(seed, step, state, side, records, err.Error())
		}
	}
	return res, failure(seed, maxSteps, state, engine.SideHuman, records, "step limit reached")
}

// CheckInvariants validates a single transition from prev to next.
func CheckInvariants(prev, next engine.GameState, side engine.Side, action engine.Action) error {
	total, dup := countCards(next)
	if total != engine.DeckSize {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if len(next.Table) > engine.MaxTablePairs {
		return fmt.Errorf("table too large: %d", len(next.Table))
	}
	open := 0
	for _, p := range next.Table {
		if p.Open() {
			open++
		}
	}
	if open > 1 {
		return fmt.Errorf("%d open pairs", open)
	}
	if next.TrumpCard.Suit != next.Trump {
		return fmt.Errorf("trump card %v does not match trump %v", next.TrumpCard, next.Trump)
	}
	if len(next.Deck) > 0 && next.Deck[0] != next.TrumpCard {
		return fmt.Errorf("trump card left the bottom of the deck")
	}
	if next.Phase == engine.PhaseRoundResolved {
		return fmt.Errorf("transient phase leaked")
	}

	switch action.Type {
	case engine.ActionTake:
		if len(next.Table) != 0 {
			return fmt.Errorf("table not empty after take")
		}
		if next.Attacker != prev.Attacker {
			return fmt.Errorf("take changed attacker")
		}
	case engine.ActionBita:
		if len(next.Table) != 0 {
			return fmt.Errorf("table not empty after bita")
		}
		if len(next.Discard) != len(prev.Discard)+len(prev.TableCards()) {
			return fmt.Errorf("discard grew by %d, table held %d", len(next.Discard)-len(prev.Discard), len(prev.TableCards()))
		}
		if next.Attacker == prev.Attacker {
			return fmt.Errorf("bita kept attacker")
		}
	}

	if !next.Over() && len(next.Deck) == 0 {
		if len(next.Hands[engine.SideHuman]) == 0 || len(next.Hands[engine.SideBot]) == 0 {
			return fmt.Errorf("empty hand with empty deck but no winner")
		}
	}
	if next.Over() && next.Phase != engine.PhaseGameOver {
		return fmt.Errorf("winner set outside game over phase")
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, hand := range state.Hands {
		for _, c := range hand {
			add(c)
		}
	}
	for _, c := range state.Deck {
		add(c)
	}
	for _, c := range state.TableCards() {
		add(c)
	}
	for _, c := range state.Discard {
		add(c)
	}
	return total, dup
}

func failure(seed int64, step int, state engine.GameState, side engine.Side, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	var log strings.Builder
	for _, r := range records[start:] {
		fmt.Fprintf(&log, "[s%d %s %v] %v\n", r.Step, r.Side, r.Phase, r.A)
	}
	return fmt.Errorf("seed=%d step=%d phase=%v side=%s reason=%s\nlast actions:\n%s",
		seed, step, state.Phase, side, reason, log.String())
}
