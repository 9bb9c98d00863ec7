package engine

// PublicState is what one side is allowed to see: its own hand, the size of
// the opponent's hand, and everything on the table.
type PublicState struct {
	Viewer        Side
	Hand          []Card
	OpponentCards int
	Table         []TablePair
	TrumpCard     Card
	Trump         Suit
	DeckCount     int
	DiscardCount  int
	Attacker      Side
	Phase         Phase
	Winner        Winner
	Legal         []Action
}

func Project(g GameState, viewer Side) PublicState {
	c := g.Clone()
	return PublicState{
		Viewer:        viewer,
		Hand:          c.Hands[viewer],
		OpponentCards: len(c.Hands[viewer.Other()]),
		Table:         c.Table,
		TrumpCard:     c.TrumpCard,
		Trump:         c.Trump,
		DeckCount:     len(c.Deck),
		DiscardCount:  len(c.Discard),
		Attacker:      c.Attacker,
		Phase:         c.Phase,
		Winner:        c.Winner,
		Legal:         LegalActions(c, viewer),
	}
}
