package bots

import (
	"testing"

	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
)

func c(s engine.Suit, r engine.Rank) engine.Card {
	return engine.Card{Suit: s, Rank: r}
}

// stateWith builds a conserved state where the deck holds every card not
// dealt to a hand, with a trump at the bottom.
func stateWith(t *testing.T, attacker engine.Side, trump engine.Suit, human, bot []engine.Card) engine.GameState {
	t.Helper()
	used := map[engine.Card]bool{}
	for _, card := range human {
		used[card] = true
	}
	for _, card := range bot {
		used[card] = true
	}
	deck := []engine.Card{}
	for _, card := range engine.BuildDeck() {
		if !used[card] {
			deck = append(deck, card)
		}
	}
	for i, card := range deck {
		if card.Suit == trump {
			deck[0], deck[i] = deck[i], deck[0]
			break
		}
	}
	g := engine.GameState{
		Deck:      deck,
		Trump:     trump,
		TrumpCard: deck[0],
		Attacker:  attacker,
		Phase:     engine.PhaseOpenAttack,
	}
	g.Hands[engine.SideHuman] = append([]engine.Card(nil), human...)
	g.Hands[engine.SideBot] = append([]engine.Card(nil), bot...)
	return g
}

func mustApply(t *testing.T, g *engine.GameState, side engine.Side, a engine.Action) {
	t.Helper()
	if err := engine.ApplyAction(g, side, a); err != nil {
		t.Fatalf("ApplyAction(%s, %v): %v", side, a, err)
	}
}

func TestDefenderPicksCheapestBeater(t *testing.T) {
	g := stateWith(t, engine.SideHuman, engine.SuitSpades,
		[]engine.Card{c(engine.SuitHearts, engine.Rank8)},
		[]engine.Card{
			c(engine.SuitHearts, engine.RankK),
			c(engine.SuitSpades, engine.Rank7),
			c(engine.SuitHearts, engine.Rank10),
			c(engine.SuitClubs, engine.Rank6),
		},
	)
	mustApply(t, &g, engine.SideHuman, engine.Action{Type: engine.ActionPlayCard, Index: 0})

	a := NewPolicy().ChooseAction(g, engine.SideBot)
	if a.Type != engine.ActionPlayCard || a.Index != 1 {
		t.Fatalf("expected lowest-power beater 7S at 1, got %v", a)
	}
}

func TestDefenderPrefersPlainOnEqualPower(t *testing.T) {
	g := stateWith(t, engine.SideHuman, engine.SuitSpades,
		[]engine.Card{c(engine.SuitHearts, engine.Rank8)},
		[]engine.Card{
			c(engine.SuitSpades, engine.Rank9),
			c(engine.SuitHearts, engine.Rank9),
		},
	)
	mustApply(t, &g, engine.SideHuman, engine.Action{Type: engine.ActionPlayCard, Index: 0})

	a := NewPolicy().ChooseAction(g, engine.SideBot)
	if a.Type != engine.ActionPlayCard || a.Index != 1 {
		t.Fatalf("expected 9H over 9S, got %v", a)
	}
}

// A six of hearts is led; the bot beats it when it can and takes otherwise.
func TestSixOfHeartsScenario(t *testing.T) {
	cases := []struct {
		name   string
		bot    []engine.Card
		defend bool
	}{
		{"higher heart", []engine.Card{c(engine.SuitClubs, engine.RankA), c(engine.SuitHearts, engine.Rank7)}, true},
		{"trump", []engine.Card{c(engine.SuitClubs, engine.RankA), c(engine.SuitSpades, engine.Rank6)}, true},
		{"nothing beats", []engine.Card{c(engine.SuitClubs, engine.RankA), c(engine.SuitDiamonds, engine.RankK)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := stateWith(t, engine.SideHuman, engine.SuitSpades,
				[]engine.Card{c(engine.SuitHearts, engine.Rank6), c(engine.SuitClubs, engine.Rank9)},
				tc.bot,
			)
			mustApply(t, &g, engine.SideHuman, engine.Action{Type: engine.ActionPlayCard, Index: 0})
			if len(g.Table) != 1 || !g.Table[0].Open() {
				t.Fatalf("expected one open pair")
			}
			before := len(g.Hands[engine.SideBot])

			a := NewPolicy().ChooseAction(g, engine.SideBot)
			mustApply(t, &g, engine.SideBot, a)
			if tc.defend {
				if a.Type != engine.ActionPlayCard || g.Table[0].Open() {
					t.Fatalf("expected a defense, got %v", a)
				}
				return
			}
			if a.Type != engine.ActionTake {
				t.Fatalf("expected take, got %v", a)
			}
			if len(g.Table) != 0 {
				t.Fatalf("table not empty after take")
			}
			if len(g.Hands[engine.SideBot]) < before+1 {
				t.Fatalf("bot hand: got %d, want at least %d", len(g.Hands[engine.SideBot]), before+1)
			}
		})
	}
}

func TestLeadConservesTrumps(t *testing.T) {
	g := stateWith(t, engine.SideBot, engine.SuitSpades,
		[]engine.Card{c(engine.SuitHearts, engine.Rank8)},
		[]engine.Card{
			c(engine.SuitSpades, engine.Rank6),
			c(engine.SuitHearts, engine.RankA),
			c(engine.SuitClubs, engine.Rank10),
		},
	)
	a := NewPolicy().ChooseAction(g, engine.SideBot)
	if a.Type != engine.ActionPlayCard || a.Index != 2 {
		t.Fatalf("expected 10C, got %v", a)
	}

	g = stateWith(t, engine.SideBot, engine.SuitSpades,
		[]engine.Card{c(engine.SuitHearts, engine.Rank8)},
		[]engine.Card{c(engine.SuitSpades, engine.RankQ), c(engine.SuitSpades, engine.Rank7)},
	)
	a = NewPolicy().ChooseAction(g, engine.SideBot)
	if a.Type != engine.ActionPlayCard || a.Index != 1 {
		t.Fatalf("all trumps: expected 7S, got %v", a)
	}
}

func TestThrowInCheapestOrBita(t *testing.T) {
	g := stateWith(t, engine.SideBot, engine.SuitSpades,
		[]engine.Card{c(engine.SuitHearts, engine.RankJ), c(engine.SuitClubs, engine.Rank6), c(engine.SuitDiamonds, engine.Rank6)},
		[]engine.Card{
			c(engine.SuitHearts, engine.Rank9),
			c(engine.SuitSpades, engine.RankJ),
			c(engine.SuitClubs, engine.Rank9),
			c(engine.SuitDiamonds, engine.RankJ),
			c(engine.SuitClubs, engine.RankK),
		},
	)
	bot := NewPolicy()
	mustApply(t, &g, engine.SideBot, bot.ChooseAction(g, engine.SideBot)) // 9H
	mustApply(t, &g, engine.SideHuman, engine.Action{Type: engine.ActionPlayCard, Index: 0})

	a := bot.ChooseAction(g, engine.SideBot)
	if a.Type != engine.ActionPlayCard || g.Hands[engine.SideBot][a.Index] != c(engine.SuitClubs, engine.Rank9) {
		t.Fatalf("expected 9C throw-in, got %v", a)
	}
	mustApply(t, &g, engine.SideBot, a)
	mustApply(t, &g, engine.SideHuman, engine.Action{Type: engine.ActionTake})

	// New round: the bot leads again, then has nothing matching to add.
	g2 := stateWith(t, engine.SideBot, engine.SuitSpades,
		[]engine.Card{c(engine.SuitHearts, engine.RankA)},
		[]engine.Card{c(engine.SuitHearts, engine.Rank7), c(engine.SuitClubs, engine.RankQ)},
	)
	mustApply(t, &g2, engine.SideBot, bot.ChooseAction(g2, engine.SideBot))
	mustApply(t, &g2, engine.SideHuman, engine.Action{Type: engine.ActionPlayCard, Index: 0})
	if a := bot.ChooseAction(g2, engine.SideBot); a.Type != engine.ActionBita {
		t.Fatalf("expected bita, got %v", a)
	}
}

func TestPolicyNeverChoosesIllegal(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		g := engine.NewGame(seed)
		bot := NewPolicy()
		for step := 0; step < 2000 && !g.Over(); step++ {
			side, ok := engine.CurrentActor(g)
			if !ok {
				t.Fatalf("seed %d: no actor", seed)
			}
			a := bot.ChooseAction(g.Clone(), side)
			legal := false
			for _, l := range engine.LegalActions(g, side) {
				if l == a {
					legal = true
					break
				}
			}
			if !legal {
				t.Fatalf("seed %d step %d: %v not in legal set", seed, step, a)
			}
			mustApply(t, &g, side, a)
		}
		if !g.Over() {
			t.Fatalf("seed %d: game did not finish", seed)
		}
	}
}

func TestNewSelectsLevel(t *testing.T) {
	if _, ok := New("easy", 1).(*EasyBot); !ok {
		t.Fatalf("expected easy bot")
	}
	if _, ok := New("normal", 1).(*PolicyBot); !ok {
		t.Fatalf("expected policy bot")
	}
	if _, ok := New("", 1).(*PolicyBot); !ok {
		t.Fatalf("expected policy bot by default")
	}
}
