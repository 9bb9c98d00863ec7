package engine

// CanBeat reports whether defense beats attack under the given trump. Any trump
// beats any non-trump; otherwise only a higher card of the same suit beats.
func CanBeat(attack, defense Card, trump Suit) bool {
	if defense.Suit == trump && attack.Suit != trump {
		return true
	}
	if defense.Suit == attack.Suit {
		return defense.Power() > attack.Power()
	}
	return false
}

// CanThrowIn reports whether card matches the rank of any card on the table,
// attack or defense side. Every card is legal on an empty table.
func CanThrowIn(card Card, table []TablePair) bool {
	if len(table) == 0 {
		return true
	}
	for _, p := range table {
		if p.Attack.Rank == card.Rank {
			return true
		}
		if p.Defense != nil && p.Defense.Rank == card.Rank {
			return true
		}
	}
	return false
}

// TableCapacity is the most pairs the current round may hold.
func TableCapacity(g GameState) int {
	if len(g.Table) == 0 {
		return roundCapacity(len(g.Hands[g.Defender()]))
	}
	return g.RoundCapacity
}

func roundCapacity(defenderHand int) int {
	if defenderHand < MaxTablePairs {
		return defenderHand
	}
	return MaxTablePairs
}

func allDefended(table []TablePair) bool {
	for _, p := range table {
		if p.Open() {
			return false
		}
	}
	return true
}

// canAddPair applies the structural throw-in gates: every pair defended and
// the round below capacity.
func canAddPair(g GameState) bool {
	return allDefended(g.Table) && len(g.Table) < TableCapacity(g)
}

func outcome(g GameState) Winner {
	if len(g.Deck) > 0 {
		return WinnerNone
	}
	humanOut := len(g.Hands[SideHuman]) == 0
	botOut := len(g.Hands[SideBot]) == 0
	switch {
	case humanOut && botOut:
		return WinnerDraw
	case humanOut:
		return WinnerHuman
	case botOut:
		return WinnerBot
	default:
		return WinnerNone
	}
}

// detectWinner ends the game once the deck is exhausted and a hand is empty.
func detectWinner(g *GameState) bool {
	w := outcome(*g)
	if w == WinnerNone {
		return false
	}
	g.Winner = w
	g.Phase = PhaseGameOver
	return true
}
