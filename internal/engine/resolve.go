package engine

import "fmt"

// applyTake moves every table card into the defender's hand. The attacker
// keeps the initiative for the next round.
func applyTake(g *GameState, side Side) error {
	if g.Phase != PhaseAwaitingDefense || side != g.Defender() {
		return fmt.Errorf("%w: only the defender takes while a pair is open", ErrOutOfTurn)
	}
	def := g.Defender()
	g.Hands[def] = append(g.Hands[def], g.TableCards()...)
	g.Table = nil
	resolveRound(g, false)
	return nil
}

// applyBita discards a fully defended table and hands the attack over.
func applyBita(g *GameState, side Side) error {
	if g.Phase != PhaseThrowIn || side != g.Attacker {
		return fmt.Errorf("%w: only the attacker ends a fully defended round", ErrOutOfTurn)
	}
	g.Discard = append(g.Discard, g.TableCards()...)
	g.Table = nil
	resolveRound(g, true)
	return nil
}

// resolveRound replenishes hands, attacker of the finished round first, and
// either ends the game or opens the next round.
func resolveRound(g *GameState, swap bool) {
	g.Phase = PhaseRoundResolved
	g.RoundCapacity = 0
	replenish(g)
	if swap {
		g.Attacker = g.Defender()
	}
	if detectWinner(g) {
		return
	}
	g.Phase = PhaseOpenAttack
}
