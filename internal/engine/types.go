package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

const (
	Rank6 Rank = iota
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

const (
	DeckSize      = 36
	HandSize      = 6
	MaxTablePairs = 6
)

var (
	AllSuits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}
	AllRanks = []Rank{Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA}
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	case SuitSpades:
		return "♠"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank6:
		return "6"
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case Rank10:
		return "10"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

// Power is the comparison strength of a rank, 6 for a six up to 14 for an ace.
func (r Rank) Power() int {
	return int(r) + 6
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

func (c Card) Power() int {
	return c.Rank.Power()
}

// Side is one of the two seats at the table.
type Side int

const (
	SideHuman Side = iota
	SideBot
)

func (s Side) Other() Side {
	if s == SideHuman {
		return SideBot
	}
	return SideHuman
}

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideBot:
		return "bot"
	default:
		return "unknown"
	}
}

type Phase int

const (
	PhaseOpenAttack Phase = iota
	PhaseAwaitingDefense
	PhaseThrowIn
	PhaseRoundResolved
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseOpenAttack:
		return "OpenAttack"
	case PhaseAwaitingDefense:
		return "AwaitingDefense"
	case PhaseThrowIn:
		return "ThrowIn"
	case PhaseRoundResolved:
		return "RoundResolved"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

type Winner int

const (
	WinnerNone Winner = iota
	WinnerHuman
	WinnerBot
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerHuman:
		return "human"
	case WinnerBot:
		return "bot"
	case WinnerDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// TablePair is one attack card and, once beaten, the card that beat it.
type TablePair struct {
	Attack  Card
	Defense *Card
}

func (p TablePair) Open() bool {
	return p.Defense == nil
}

type GameState struct {
	Seed      int64
	Deck      []Card
	Trump     Suit
	TrumpCard Card
	Hands     [2][]Card
	Table     []TablePair
	Discard   []Card
	Attacker  Side
	Phase     Phase
	// RoundCapacity caps the number of pairs in the current round. It is fixed
	// when the round is opened from the defender's hand size at that moment.
	RoundCapacity int
	Winner        Winner
}

func (g GameState) Defender() Side {
	return g.Attacker.Other()
}

func (g GameState) Hand(s Side) []Card {
	return g.Hands[s]
}

// OpenPair returns the index of the undefended pair, or -1.
func (g GameState) OpenPair() int {
	for i, p := range g.Table {
		if p.Open() {
			return i
		}
	}
	return -1
}

func (g GameState) TableCards() []Card {
	out := make([]Card, 0, len(g.Table)*2)
	for _, p := range g.Table {
		out = append(out, p.Attack)
		if p.Defense != nil {
			out = append(out, *p.Defense)
		}
	}
	return out
}

func (g GameState) Over() bool {
	return g.Winner != WinnerNone
}

// Clone returns a deep copy that shares no slices with g.
func (g GameState) Clone() GameState {
	out := g
	out.Deck = cloneCards(g.Deck)
	out.Discard = cloneCards(g.Discard)
	for i := range g.Hands {
		out.Hands[i] = cloneCards(g.Hands[i])
	}
	if g.Table != nil {
		out.Table = make([]TablePair, len(g.Table))
		for i, p := range g.Table {
			out.Table[i] = TablePair{Attack: p.Attack}
			if p.Defense != nil {
				d := *p.Defense
				out.Table[i].Defense = &d
			}
		}
	}
	return out
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	return append(make([]Card, 0, len(cards)), cards...)
}

// CardCount totals every card the state tracks; it is DeckSize for any
// reachable state.
func (g GameState) CardCount() int {
	return len(g.Deck) + len(g.Hands[SideHuman]) + len(g.Hands[SideBot]) + len(g.TableCards()) + len(g.Discard)
}
