package server

import (
	"errors"
	"fmt"

	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
)

type CardDTO struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Power int    `json:"power"`
}

type PairDTO struct {
	Attack  CardDTO  `json:"attack"`
	Defense *CardDTO `json:"defense,omitempty"`
}

// ActionDTO is the wire form of a move. Index is only read for play_card.
type ActionDTO struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "play_card":
		return engine.Action{Type: engine.ActionPlayCard, Index: a.Index}, nil
	case "take":
		return engine.Action{Type: engine.ActionTake}, nil
	case "bita":
		return engine.Action{Type: engine.ActionBita}, nil
	default:
		return engine.Action{}, fmt.Errorf("unknown action type %q", a.Type)
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	dto := ActionDTO{Type: a.Type.String()}
	if a.Type == engine.ActionPlayCard {
		dto.Index = a.Index
	}
	return dto
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String(), Power: c.Power()}
}

func cardsToDTO(cards []engine.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToDTO(c))
	}
	return out
}

func pairToDTO(p engine.TablePair) PairDTO {
	dto := PairDTO{Attack: cardToDTO(p.Attack)}
	if p.Defense != nil {
		d := cardToDTO(*p.Defense)
		dto.Defense = &d
	}
	return dto
}
