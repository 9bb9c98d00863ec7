package engine

import "math/rand"

func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range AllSuits {
		for _, rank := range AllRanks {
			deck = append(deck, Card{Suit: s, Rank: rank})
		}
	}
	return deck
}

func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

type DealOptions struct {
	// LowestTrumpLeads gives the first attack to whoever holds the lowest
	// trump. The human leads when neither hand has a trump.
	LowestTrumpLeads bool
}

// NewGame deals a fresh game from seed with the human attacking first.
func NewGame(seed int64) GameState {
	return NewGameWithOptions(seed, DealOptions{})
}

// NewGameWithOptions deals HandSize cards to each side alternately from the
// end of the shuffled deck. The card left at the bottom becomes the trump
// card; it stays in the deck and is the last one drawn.
func NewGameWithOptions(seed int64, opts DealOptions) GameState {
	deck := Shuffle(BuildDeck(), seed)
	g := GameState{
		Seed:     seed,
		Attacker: SideHuman,
		Phase:    PhaseOpenAttack,
	}
	for i := 0; i < HandSize; i++ {
		for _, s := range []Side{SideHuman, SideBot} {
			g.Hands[s] = append(g.Hands[s], deck[len(deck)-1])
			deck = deck[:len(deck)-1]
		}
	}
	g.Deck = deck
	g.TrumpCard = deck[0]
	g.Trump = g.TrumpCard.Suit

	if opts.LowestTrumpLeads {
		if s, ok := lowestTrumpHolder(g); ok {
			g.Attacker = s
		}
	}
	return g
}

func lowestTrumpHolder(g GameState) (Side, bool) {
	best := -1
	holder := SideHuman
	for _, s := range []Side{SideHuman, SideBot} {
		for _, c := range g.Hands[s] {
			if c.Suit != g.Trump {
				continue
			}
			if best < 0 || c.Power() < best {
				best = c.Power()
				holder = s
			}
		}
	}
	return holder, best >= 0
}

func (g *GameState) draw() Card {
	c := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return c
}

// replenish fills the attacker's hand to HandSize first, then the defender's.
func replenish(g *GameState) {
	for _, s := range []Side{g.Attacker, g.Defender()} {
		for len(g.Hands[s]) < HandSize && len(g.Deck) > 0 {
			g.Hands[s] = append(g.Hands[s], g.draw())
		}
	}
}
