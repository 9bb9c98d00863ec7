package server

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Erzhan279/Durac-game-telegram/internal/engine"
	"github.com/Erzhan279/Durac-game-telegram/internal/game"
)

type ClientMessage struct {
	Type      string     `json:"type"`
	ActionId  string     `json:"actionId,omitempty"`
	Action    *ActionDTO `json:"action,omitempty"`
	RequestId string     `json:"requestId,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Session binds one connection to one game. The human always sits on
// engine.SideHuman.
type Session struct {
	id   string
	game *game.Game
	log  *zap.Logger

	// writeMu serializes writes to conn. It may be taken while the game is
	// locked (from onUpdate), never the other way round.
	writeMu sync.Mutex
	conn    *websocket.Conn

	mu        sync.Mutex
	actionIds map[string]bool
}

func newSession(conn *websocket.Conn, log *zap.Logger) *Session {
	return &Session{
		conn:      conn,
		log:       log,
		actionIds: map[string]bool{},
	}
}

func (s *Session) attach(g *game.Game) {
	s.id = g.ID()
	s.game = g
	s.log = s.log.With(zap.String("session", s.id))
}

// HandleConnection reads client messages until the connection drops.
func (s *Session) HandleConnection() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("read failed", zap.Error(err))
			}
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_game", "restart":
		s.startGame()
	case "player_action":
		s.applyAction(msg.ActionId, msg.Action)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame() {
	s.mu.Lock()
	s.actionIds = map[string]bool{}
	s.mu.Unlock()
	// The new deal reaches the client through onUpdate.
	s.game.Start()
}

func (s *Session) applyAction(actionId string, dto *ActionDTO) {
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	s.mu.Lock()
	seen := s.actionIds[actionId]
	s.actionIds[actionId] = true
	s.mu.Unlock()
	if seen {
		s.sendState(nil)
		return
	}

	action, err := dto.ToEngine()
	if err != nil {
		s.sendError("bad_action", err.Error())
		return
	}
	if err := s.game.Apply(engine.SideHuman, action); err != nil {
		s.sendError(errorCode(err), err.Error())
	}
}

// onUpdate is the game listener. It runs with the game locked.
func (s *Session) onUpdate(u game.Update) {
	var events []Event
	if u.Kind == game.UpdateMove {
		events = buildEvents(u.Prev, u.Next, u.Side, u.Action)
	}
	s.write(ServerMessage{
		Type:   "state",
		State:  BuildGameView(engine.Project(u.Next, engine.SideHuman), s.id),
		Events: events,
	})
}

func (s *Session) sendState(events []Event) {
	ps := s.game.PublicState(engine.SideHuman)
	s.write(ServerMessage{
		Type:   "state",
		State:  BuildGameView(ps, s.id),
		Events: events,
	})
}

func (s *Session) sendError(code, message string) {
	s.write(ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	})
}

func (s *Session) write(msg ServerMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Debug("write failed", zap.String("type", msg.Type), zap.Error(err))
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrOutOfTurn):
		return "out_of_turn"
	case errors.Is(err, engine.ErrIllegalCard):
		return "illegal_card"
	case errors.Is(err, engine.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, engine.ErrGameOver):
		return "game_over"
	default:
		return "bad_action"
	}
}
