package engine_test

import (
	"testing"

	"github.com/Erzhan279/Durac-game-telegram/internal/bots"
	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
	"github.com/Erzhan279/Durac-game-telegram/internal/engine/sim"
)

func TestSelfPlayManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		res, err := sim.RunSelfPlay(seed, 2000, bots.NewPolicy(), bots.NewPolicy())
		if err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
		if res.Winner == engine.WinnerNone {
			t.Fatalf("seed %d finished without a winner", seed)
		}
	}
}

func TestSelfPlayRandomOpponent(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		if _, err := sim.RunSelfPlay(seed, 2000, bots.NewEasy(seed+10), bots.NewPolicy()); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	}
}

func FuzzSelfPlay(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(20251015))
	f.Fuzz(func(t *testing.T, seed int64) {
		if _, err := sim.RunSelfPlay(seed, 2000, bots.NewEasy(seed), bots.NewEasy(seed+1)); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	})
}
