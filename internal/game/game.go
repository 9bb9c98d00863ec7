package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Erzhan279/Durac-game-telegram/internal/bots"
	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
)

const DefaultBotDelay = time.Second

type UpdateKind int

const (
	UpdateStarted UpdateKind = iota
	UpdateMove
)

// Update describes one accepted transition. Prev and Next are private copies.
type Update struct {
	Kind   UpdateKind
	Side   engine.Side
	Action engine.Action
	Prev   engine.GameState
	Next   engine.GameState
}

type Options struct {
	Bot      bots.Bot
	BotDelay time.Duration
	Deal     engine.DealOptions
	// Seed returns the seed for each new deal. Defaults to the wall clock.
	Seed func() int64
	// Listener sees every accepted transition in order. It runs with the game
	// locked and must not call back into the Game.
	Listener func(Update)
	// OnFinish is called once per finished game with the outcome.
	OnFinish func(id string, w engine.Winner)
	Logger   *zap.Logger
}

// Game is one table: a human seat, a bot seat and a single writer.
type Game struct {
	mu       sync.Mutex
	id       string
	opts     Options
	state    engine.GameState
	started  bool
	closed   bool
	gen      uint64
	timer    *time.Timer
	finished bool
	log      *zap.Logger
}

func New(id string, opts Options) *Game {
	if opts.Bot == nil {
		opts.Bot = bots.NewPolicy()
	}
	if opts.BotDelay < 0 {
		opts.BotDelay = 0
	}
	if opts.Seed == nil {
		opts.Seed = func() int64 { return time.Now().UnixNano() }
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Game{
		id:   id,
		opts: opts,
		log:  opts.Logger.With(zap.String("session", id)),
	}
}

func (g *Game) ID() string {
	return g.id
}

// Start deals a new game, replacing any game in progress. A pending bot move
// for the old game is cancelled.
func (g *Game) Start() engine.PublicState {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancelBotLocked()
	g.gen++
	prev := g.state.Clone()
	g.state = engine.NewGameWithOptions(g.opts.Seed(), g.opts.Deal)
	g.started = true
	g.closed = false
	g.finished = false
	g.log.Info("game started",
		zap.Int64("seed", g.state.Seed),
		zap.String("trump", g.state.TrumpCard.String()),
		zap.Stringer("attacker", g.state.Attacker),
	)
	g.emitLocked(Update{Kind: UpdateStarted, Prev: prev, Next: g.state.Clone()})
	g.scheduleBotLocked()
	return engine.Project(g.state, engine.SideHuman)
}

func (g *Game) SubmitMove(side engine.Side, index int) error {
	return g.apply(side, engine.Action{Type: engine.ActionPlayCard, Index: index})
}

func (g *Game) DeclareTake(side engine.Side) error {
	return g.apply(side, engine.Action{Type: engine.ActionTake})
}

func (g *Game) DeclareBita(side engine.Side) error {
	return g.apply(side, engine.Action{Type: engine.ActionBita})
}

// Apply runs an arbitrary action for side.
func (g *Game) Apply(side engine.Side, a engine.Action) error {
	return g.apply(side, a)
}

func (g *Game) PublicState(side engine.Side) engine.PublicState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.Project(g.state, side)
}

// Snapshot returns a private copy of the full state.
func (g *Game) Snapshot() engine.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

func (g *Game) Started() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

// BotPending reports whether a bot move is scheduled.
func (g *Game) BotPending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timer != nil
}

// Close cancels any pending bot move. Later calls other than Start are
// rejected as if the game were over.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelBotLocked()
	g.gen++
	g.closed = true
}

func (g *Game) apply(side engine.Side, a engine.Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.started || g.closed {
		return engine.ErrGameOver
	}
	if err := g.applyLocked(side, a); err != nil {
		g.log.Debug("move rejected",
			zap.Stringer("side", side),
			zap.Stringer("action", a),
			zap.Error(err),
		)
		return err
	}
	g.scheduleBotLocked()
	return nil
}

func (g *Game) applyLocked(side engine.Side, a engine.Action) error {
	prev := g.state.Clone()
	if err := engine.ApplyAction(&g.state, side, a); err != nil {
		return err
	}
	g.emitLocked(Update{Kind: UpdateMove, Side: side, Action: a, Prev: prev, Next: g.state.Clone()})
	if g.state.Over() && !g.finished {
		g.finished = true
		g.log.Info("game finished", zap.Stringer("winner", g.state.Winner))
		if g.opts.OnFinish != nil {
			g.opts.OnFinish(g.id, g.state.Winner)
		}
	}
	return nil
}

func (g *Game) emitLocked(u Update) {
	if g.opts.Listener != nil {
		g.opts.Listener(u)
	}
}

// scheduleBotLocked arms the single bot timer when the bot has to act next.
func (g *Game) scheduleBotLocked() {
	if g.timer != nil || g.closed || g.state.Over() {
		return
	}
	side, ok := engine.CurrentActor(g.state)
	if !ok || side != engine.SideBot {
		return
	}
	gen := g.gen
	g.timer = time.AfterFunc(g.opts.BotDelay, func() { g.botTurn(gen) })
}

func (g *Game) cancelBotLocked() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func (g *Game) botTurn(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.gen {
		g.log.Debug("stale bot turn dropped", zap.Uint64("gen", gen), zap.Uint64("current", g.gen))
		return
	}
	g.timer = nil
	if g.closed || g.state.Over() {
		return
	}
	side, ok := engine.CurrentActor(g.state)
	if !ok || side != engine.SideBot {
		return
	}
	a := g.opts.Bot.ChooseAction(g.state.Clone(), engine.SideBot)
	if err := g.applyLocked(engine.SideBot, a); err != nil {
		// A bot that returns an illegal move would stall the table; fall back
		// to the first legal action.
		g.log.Warn("bot action rejected", zap.Stringer("action", a), zap.Error(err))
		legal := engine.LegalActions(g.state, engine.SideBot)
		if len(legal) == 0 {
			return
		}
		if err := g.applyLocked(engine.SideBot, legal[0]); err != nil {
			g.log.Error("bot fallback rejected", zap.Error(err))
			return
		}
	}
	g.scheduleBotLocked()
}
