package server

import "github.com/Erzhan279/Durac-game-telegram/internal/engine"

type EventPayload struct {
	Side   string    `json:"side,omitempty"`
	Cards  []CardDTO `json:"cards,omitempty"`
	Winner string    `json:"winner,omitempty"`
}

func buildEvents(prev engine.GameState, next engine.GameState, side engine.Side, action engine.Action) []Event {
	events := []Event{}
	switch action.Type {
	case engine.ActionPlayCard:
		hand := prev.Hands[side]
		if action.Index < 0 || action.Index >= len(hand) {
			break
		}
		card := hand[action.Index]
		if prev.Phase == engine.PhaseAwaitingDefense {
			attack := prev.Table[prev.OpenPair()].Attack
			events = append(events, Event{Type: "card_beaten", Data: EventPayload{
				Side:  side.String(),
				Cards: []CardDTO{cardToDTO(attack), cardToDTO(card)},
			}})
		} else {
			events = append(events, Event{Type: "card_played", Data: EventPayload{
				Side:  side.String(),
				Cards: []CardDTO{cardToDTO(card)},
			}})
		}
	case engine.ActionTake:
		events = append(events, Event{Type: "table_taken", Data: EventPayload{
			Side:  side.String(),
			Cards: cardsToDTO(prev.TableCards()),
		}})
	case engine.ActionBita:
		events = append(events, Event{Type: "bita", Data: EventPayload{
			Side:  side.String(),
			Cards: cardsToDTO(prev.TableCards()),
		}})
	}

	if !prev.Over() && next.Over() {
		events = append(events, Event{Type: "game_over", Data: EventPayload{Winner: next.Winner.String()}})
	}
	return events
}
