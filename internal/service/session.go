package service

import (
	"sync"
	"time"

	"github.com/benbeisheim/checkmate-backend/internal/model"
	"github.com/benbeisheim/checkmate-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the part of a WebSocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Session is one game plus the connections observing it. The mutex gives the
// game a single logical caller at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	game *model.Game

	connections *sessionConnections
}

type sessionConnections struct {
	conns map[string]Conn // clientID -> connection
	mu    sync.Mutex
}

func newSession(id string, players model.Players) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   time.Now(),
		game:        model.NewGame(players),
		connections: &sessionConnections{conns: make(map[string]Conn)},
	}
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

func (s *Session) Select(pos model.Position) (model.GameState, error) {
	return s.cursor(func(g *model.Game) error {
		return g.Select(pos)
	})
}

func (s *Session) Deselect() model.GameState {
	state, _ := s.cursor(func(g *model.Game) error {
		g.Deselect()
		return nil
	})
	return state
}

// cursor runs a selection change and broadcasts the state without events.
func (s *Session) cursor(op func(g *model.Game) error) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := op(s.game)
	state := s.game.State()
	if err != nil {
		return state, err
	}
	s.broadcast(nil, state)
	return state, nil
}

// Move plays to with the piece on from, or with the selected piece when from
// is nil.
func (s *Session) Move(from *model.Position, to model.Position) ([]model.Event, model.GameState, error) {
	return s.run(func(g *model.Game) ([]model.Event, error) {
		if from == nil {
			return g.RequestMove(to)
		}
		return g.Move(*from, to)
	})
}

func (s *Session) Promote(kind model.PieceKind) ([]model.Event, model.GameState, error) {
	return s.run(func(g *model.Game) ([]model.Event, error) {
		return g.SupplyPromotion(kind)
	})
}

func (s *Session) NewGame() ([]model.Event, model.GameState, error) {
	return s.run(func(g *model.Game) ([]model.Event, error) {
		return g.NewGame(), nil
	})
}

// run applies op and broadcasts its outcome. The broadcast happens under
// s.mu so clients see states in the order the operations ran.
func (s *Session) run(op func(g *model.Game) ([]model.Event, error)) ([]model.Event, model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := op(s.game)
	state := s.game.State()
	if err != nil {
		return nil, state, err
	}
	for _, e := range events {
		if e.Type == model.EventGameEnded {
			log.Infof("game %s ended: %s %s", s.ID, e.Outcome.Status, e.Winner)
		}
	}
	s.broadcast(events, state)
	return events, state, nil
}

// Register attaches a connection for clientID and sends it the current
// state. A client may hold one connection per session.
func (s *Session) Register(clientID string, conn Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.game.State())
	if err != nil {
		return err
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if _, exists := s.connections.conns[clientID]; exists {
		return ErrAlreadyConnected
	}
	if err := conn.WriteJSON(msg); err != nil {
		return err
	}
	s.connections.conns[clientID] = conn
	log.Debugf("registered connection for client %s on game %s", clientID, s.ID)
	return nil
}

// Unregister drops clientID's connection if it is still conn.
func (s *Session) Unregister(clientID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if current, exists := s.connections.conns[clientID]; exists && current == conn {
		delete(s.connections.conns, clientID)
		log.Debugf("unregistered connection for client %s on game %s", clientID, s.ID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	return len(s.connections.conns)
}

func (s *Session) closeAll() {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for clientID, conn := range s.connections.conns {
		conn.Close()
		delete(s.connections.conns, clientID)
	}
}

// broadcast sends each event and then the state to every connection. Callers
// hold s.mu; writes happen under the connection lock so a socket never has
// two writers.
func (s *Session) broadcast(events []model.Event, state model.GameState) {
	msgs := make([]ws.Message, 0, len(events)+1)
	for _, e := range events {
		msg, err := ws.NewMessage(ws.MessageTypeEvent, e)
		if err != nil {
			log.Errorf("marshal event %s: %v", e.Type, err)
			continue
		}
		msgs = append(msgs, msg)
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("marshal state for game %s: %v", s.ID, err)
	} else {
		msgs = append(msgs, msg)
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for clientID, conn := range s.connections.conns {
		for _, msg := range msgs {
			if err := conn.WriteJSON(msg); err != nil {
				log.Warnf("dropping connection for client %s on game %s: %v", clientID, s.ID, err)
				conn.Close()
				delete(s.connections.conns, clientID)
				break
			}
		}
	}
}

// SendError reports a rejected request to the client that made it.
func (s *Session) SendError(clientID string, cause error) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: cause.Error()})
	if err != nil {
		log.Errorf("marshal error message: %v", err)
		return
	}
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if conn, ok := s.connections.conns[clientID]; ok {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("send error to client %s on game %s: %v", clientID, s.ID, err)
		}
	}
}
