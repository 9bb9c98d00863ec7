package engine

import "fmt"

type ActionType int

const (
	ActionPlayCard ActionType = iota
	ActionTake
	ActionBita
)

func (t ActionType) String() string {
	switch t {
	case ActionPlayCard:
		return "play_card"
	case ActionTake:
		return "take"
	case ActionBita:
		return "bita"
	default:
		return "unknown"
	}
}

// Action is a move by one side. Index addresses a card in the acting side's
// hand and is only meaningful for ActionPlayCard.
type Action struct {
	Type  ActionType
	Index int
}

func (a Action) String() string {
	if a.Type == ActionPlayCard {
		return fmt.Sprintf("%s[%d]", a.Type, a.Index)
	}
	return a.Type.String()
}

// CurrentActor returns the side expected to act in the current phase.
func CurrentActor(g GameState) (Side, bool) {
	switch g.Phase {
	case PhaseOpenAttack, PhaseThrowIn:
		return g.Attacker, true
	case PhaseAwaitingDefense:
		return g.Defender(), true
	default:
		return SideHuman, false
	}
}

// LegalActions lists the moves side may make, card plays in hand order first.
func LegalActions(g GameState, side Side) []Action {
	if g.Over() {
		return nil
	}
	hand := g.Hands[side]
	out := []Action{}
	switch g.Phase {
	case PhaseOpenAttack:
		if side != g.Attacker {
			return nil
		}
		for i := range hand {
			out = append(out, Action{Type: ActionPlayCard, Index: i})
		}
	case PhaseAwaitingDefense:
		if side != g.Defender() {
			return nil
		}
		attack := g.Table[g.OpenPair()].Attack
		for i, c := range hand {
			if CanBeat(attack, c, g.Trump) {
				out = append(out, Action{Type: ActionPlayCard, Index: i})
			}
		}
		out = append(out, Action{Type: ActionTake})
	case PhaseThrowIn:
		if side != g.Attacker {
			return nil
		}
		if canAddPair(g) {
			for i, c := range hand {
				if CanThrowIn(c, g.Table) {
					out = append(out, Action{Type: ActionPlayCard, Index: i})
				}
			}
		}
		out = append(out, Action{Type: ActionBita})
	default:
		return nil
	}
	return out
}

// ApplyAction validates and applies a move. A rejected move leaves g untouched.
func ApplyAction(g *GameState, side Side, a Action) error {
	if g.Over() {
		return ErrGameOver
	}
	switch a.Type {
	case ActionPlayCard:
		return applyPlay(g, side, a.Index)
	case ActionTake:
		return applyTake(g, side)
	case ActionBita:
		return applyBita(g, side)
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
}

func applyPlay(g *GameState, side Side, idx int) error {
	switch g.Phase {
	case PhaseOpenAttack:
		if side != g.Attacker {
			return fmt.Errorf("%w: %s is defending", ErrOutOfTurn, side)
		}
		card, err := cardAt(g, side, idx)
		if err != nil {
			return err
		}
		g.RoundCapacity = roundCapacity(len(g.Hands[g.Defender()]))
		removeAt(&g.Hands[side], idx)
		g.Table = append(g.Table, TablePair{Attack: card})
		g.Phase = PhaseAwaitingDefense

	case PhaseAwaitingDefense:
		card, err := cardAt(g, side, idx)
		if err != nil {
			return err
		}
		if side == g.Attacker {
			return fmt.Errorf("%w: %s waits for the open pair to be beaten", ErrIllegalCard, card)
		}
		open := g.OpenPair()
		attack := g.Table[open].Attack
		if !CanBeat(attack, card, g.Trump) {
			return fmt.Errorf("%w: %s does not beat %s", ErrIllegalCard, card, attack)
		}
		removeAt(&g.Hands[side], idx)
		g.Table[open].Defense = &card
		g.Phase = PhaseThrowIn

	case PhaseThrowIn:
		if side != g.Attacker {
			return fmt.Errorf("%w: %s is defending", ErrOutOfTurn, side)
		}
		card, err := cardAt(g, side, idx)
		if err != nil {
			return err
		}
		if !CanThrowIn(card, g.Table) {
			return fmt.Errorf("%w: no %s on the table", ErrIllegalCard, card.Rank)
		}
		if !canAddPair(*g) {
			return fmt.Errorf("%w: table holds %d of %d pairs", ErrIllegalCard, len(g.Table), TableCapacity(*g))
		}
		removeAt(&g.Hands[side], idx)
		g.Table = append(g.Table, TablePair{Attack: card})
		g.Phase = PhaseAwaitingDefense

	default:
		return fmt.Errorf("%w: phase %s", ErrOutOfTurn, g.Phase)
	}
	detectWinner(g)
	return nil
}

func cardAt(g *GameState, side Side, idx int) (Card, error) {
	hand := g.Hands[side]
	if idx < 0 || idx >= len(hand) {
		return Card{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, idx, len(hand))
	}
	return hand[idx], nil
}

func removeAt(hand *[]Card, idx int) {
	*hand = append((*hand)[:idx], (*hand)[idx+1:]...)
}
