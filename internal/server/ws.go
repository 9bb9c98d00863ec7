package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
	"github.com/Erzhan279/Durac-game-telegram/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server upgrades connections and gives each one its own game.
type Server struct {
	arena *game.Arena
	log   *zap.Logger

	mu      sync.Mutex
	results map[string]int
}

func NewServer(arena *game.Arena, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{arena: arena, log: log, results: map[string]int{}}
}

// ServeWS handles one WebSocket client for the lifetime of its connection.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ws upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sess := newSession(conn, s.log)
	g := s.arena.Create(func(o *game.Options) {
		o.Listener = sess.onUpdate
		finish := o.OnFinish
		o.OnFinish = func(id string, w engine.Winner) {
			s.recordResult(w)
			if finish != nil {
				finish(id, w)
			}
		}
	})
	sess.attach(g)
	defer s.arena.Destroy(g.ID())

	sess.log.Info("client connected", zap.String("remote", r.RemoteAddr))
	g.Start()
	sess.HandleConnection()
	sess.log.Info("client disconnected")
}

func (s *Server) recordResult(w engine.Winner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[w.String()]++
}

// Stats reports live sessions and finished games per outcome.
type Stats struct {
	Sessions int            `json:"sessions"`
	Results  map[string]int `json:"results"`
}

func (s *Server) Stats() Stats {
	s.mu.Lock()
	results := make(map[string]int, len(s.results))
	for k, v := range s.results {
		results[k] = v
	}
	s.mu.Unlock()
	return Stats{Sessions: s.arena.Len(), Results: results}
}
