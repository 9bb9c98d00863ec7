package bots

import (
	"math/rand"

	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
)

type Bot interface {
	ChooseAction(state engine.GameState, side engine.Side) engine.Action
}

// New returns the bot for a configured level. Unknown levels get the policy bot.
func New(level string, seed int64) Bot {
	if level == "easy" {
		return NewEasy(seed)
	}
	return NewPolicy()
}

type EasyBot struct {
	RNG *rand.Rand
}

func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseAction(state engine.GameState, side engine.Side) engine.Action {
	legal := engine.LegalActions(state, side)
	if len(legal) == 0 {
		return fallback(state)
	}
	return legal[b.RNG.Intn(len(legal))]
}

// PolicyBot spends as little value as it can: it beats with the cheapest card,
// leads with its cheapest non-trump and throws in only the cheapest match.
type PolicyBot struct{}

func NewPolicy() *PolicyBot {
	return &PolicyBot{}
}

func (b *PolicyBot) ChooseAction(state engine.GameState, side engine.Side) engine.Action {
	switch state.Phase {
	case engine.PhaseAwaitingDefense:
		return defend(state, side)
	case engine.PhaseOpenAttack:
		return lead(state, side)
	case engine.PhaseThrowIn:
		return throwIn(state, side)
	default:
		return fallback(state)
	}
}

func defend(state engine.GameState, side engine.Side) engine.Action {
	attack := state.Table[state.OpenPair()].Attack
	hand := state.Hands[side]
	best := -1
	for i, c := range hand {
		if !engine.CanBeat(attack, c, state.Trump) {
			continue
		}
		if best < 0 || cheaper(c, hand[best], state.Trump) {
			best = i
		}
	}
	if best < 0 {
		return engine.Action{Type: engine.ActionTake}
	}
	return engine.Action{Type: engine.ActionPlayCard, Index: best}
}

func lead(state engine.GameState, side engine.Side) engine.Action {
	hand := state.Hands[side]
	best := -1
	for i, c := range hand {
		if best < 0 {
			best = i
			continue
		}
		b := hand[best]
		isTrump, bestTrump := c.Suit == state.Trump, b.Suit == state.Trump
		switch {
		case bestTrump && !isTrump:
			best = i
		case isTrump == bestTrump && c.Power() < b.Power():
			best = i
		}
	}
	return engine.Action{Type: engine.ActionPlayCard, Index: best}
}

func throwIn(state engine.GameState, side engine.Side) engine.Action {
	legal := engine.LegalActions(state, side)
	hand := state.Hands[side]
	best := -1
	for _, a := range legal {
		if a.Type != engine.ActionPlayCard {
			continue
		}
		if best < 0 || cheaper(hand[a.Index], hand[best], state.Trump) {
			best = a.Index
		}
	}
	if best < 0 {
		return engine.Action{Type: engine.ActionBita}
	}
	return engine.Action{Type: engine.ActionPlayCard, Index: best}
}

// cheaper orders by power, then non-trump before trump. Equal cards keep the
// earlier hand position.
func cheaper(c, than engine.Card, trump engine.Suit) bool {
	if c.Power() != than.Power() {
		return c.Power() < than.Power()
	}
	return c.Suit != trump && than.Suit == trump
}

func fallback(state engine.GameState) engine.Action {
	if state.Phase == engine.PhaseAwaitingDefense {
		return engine.Action{Type: engine.ActionTake}
	}
	return engine.Action{Type: engine.ActionBita}
}
