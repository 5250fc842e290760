// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/checkmate-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrAlreadyConnected = errors.New("connection already exists")
)

type GameManager struct {
	games map[string]*Session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Session),
	}
}

func (gm *GameManager) CreateGame(players model.Players) *Session {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID := uuid.New().String()
	session := newSession(gameID, players)
	gm.games[gameID] = session
	log.Infof("created game %s (%s vs %s)", gameID, players.White, players.Black)
	return session
}

func (gm *GameManager) GetSession(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// ListGames returns the ids of all live games in sorted order.
func (gm *GameManager) ListGames() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := maps.Keys(gm.games)
	slices.Sort(ids)
	return ids
}

// RemoveGame forgets the game and closes every connection observing it.
func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	session, exists := gm.games[gameID]
	if !exists {
		gm.mu.Unlock()
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	gm.mu.Unlock()

	session.closeAll()
	log.Infof("removed game %s", gameID)
	return nil
}
