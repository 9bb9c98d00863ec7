package server

import "github.com/Erzhan279/Durac-game-telegram/internal/engine"

type GameView struct {
	SessionID     string      `json:"sessionId"`
	Viewer        string      `json:"viewer"`
	Hand          []CardDTO   `json:"hand"`
	OpponentCards int         `json:"opponentCards"`
	Table         []PairDTO   `json:"table"`
	TrumpCard     CardDTO     `json:"trumpCard"`
	Trump         string      `json:"trump"`
	DeckCount     int         `json:"deckCount"`
	DiscardCount  int         `json:"discardCount"`
	Attacker      string      `json:"attacker"`
	Phase         string      `json:"phase"`
	Winner        string      `json:"winner,omitempty"`
	YourTurn      bool        `json:"yourTurn"`
	LegalActions  []ActionDTO `json:"legalActions"`
}

// BuildGameView renders what the viewer is allowed to see. The opponent's hand
// is reduced to a count.
func BuildGameView(ps engine.PublicState, sessionID string) *GameView {
	table := make([]PairDTO, 0, len(ps.Table))
	for _, p := range ps.Table {
		table = append(table, pairToDTO(p))
	}
	legal := make([]ActionDTO, 0, len(ps.Legal))
	for _, a := range ps.Legal {
		legal = append(legal, ActionFromEngine(a))
	}
	view := &GameView{
		SessionID:     sessionID,
		Viewer:        ps.Viewer.String(),
		Hand:          cardsToDTO(ps.Hand),
		OpponentCards: ps.OpponentCards,
		Table:         table,
		TrumpCard:     cardToDTO(ps.TrumpCard),
		Trump:         ps.Trump.String(),
		DeckCount:     ps.DeckCount,
		DiscardCount:  ps.DiscardCount,
		Attacker:      ps.Attacker.String(),
		Phase:         ps.Phase.String(),
		YourTurn:      len(ps.Legal) > 0,
		LegalActions:  legal,
	}
	if ps.Winner != engine.WinnerNone {
		view.Winner = ps.Winner.String()
	}
	return view
}
