package game

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Arena holds one Game per session. Games share nothing with each other.
type Arena struct {
	mu      sync.Mutex
	games   map[string]*Game
	options func(id string) Options
	log     *zap.Logger
}

// NewArena builds an arena; options is called for every new session.
func NewArena(log *zap.Logger, options func(id string) Options) *Arena {
	if log == nil {
		log = zap.NewNop()
	}
	return &Arena{
		games:   map[string]*Game{},
		options: options,
		log:     log,
	}
}

// Create registers a game under a fresh session id. Each customize func may
// adjust the options for this game only, e.g. to attach a listener.
func (a *Arena) Create(customize ...func(*Options)) *Game {
	return a.CreateWithID(uuid.NewString(), customize...)
}

// CreateWithID registers a game under id, closing any game it replaces.
func (a *Arena) CreateWithID(id string, customize ...func(*Options)) *Game {
	var opts Options
	if a.options != nil {
		opts = a.options(id)
	}
	for _, fn := range customize {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = a.log
	}
	g := New(id, opts)

	a.mu.Lock()
	old := a.games[id]
	a.games[id] = g
	n := len(a.games)
	a.mu.Unlock()

	if old != nil {
		old.Close()
	}
	a.log.Debug("session created", zap.String("session", id), zap.Int("sessions", n))
	return g
}

func (a *Arena) Get(id string) (*Game, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	g, ok := a.games[id]
	return g, ok
}

// Destroy closes and forgets the game for id.
func (a *Arena) Destroy(id string) {
	a.mu.Lock()
	g, ok := a.games[id]
	delete(a.games, id)
	n := len(a.games)
	a.mu.Unlock()

	if ok {
		g.Close()
		a.log.Debug("session destroyed", zap.String("session", id), zap.Int("sessions", n))
	}
}

func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.games)
}

// Close closes every game, cancelling their pending bot moves.
func (a *Arena) Close() {
	a.mu.Lock()
	games := a.games
	a.games = map[string]*Game{}
	a.mu.Unlock()

	for _, g := range games {
		g.Close()
	}
}
