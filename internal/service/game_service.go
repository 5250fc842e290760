package service

import (
	"github.com/benbeisheim/checkmate-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(white, black string) string {
	return gs.gameManager.CreateGame(model.NewPlayers(white, black)).ID
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.ListGames()
}

func (gs *GameService) RemoveGame(gameID string) error {
	return gs.gameManager.RemoveGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.State(), nil
}

func (gs *GameService) Select(gameID string, pos model.Position) (model.GameState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Select(pos)
}

func (gs *GameService) Deselect(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Deselect(), nil
}

func (gs *GameService) HandleMove(gameID string, from *model.Position, to model.Position) ([]model.Event, model.GameState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, model.GameState{}, err
	}
	return session.Move(from, to)
}

func (gs *GameService) HandlePromotion(gameID string, kind model.PieceKind) ([]model.Event, model.GameState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, model.GameState{}, err
	}
	return session.Promote(kind)
}

func (gs *GameService) NewGame(gameID string) ([]model.Event, model.GameState, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, model.GameState{}, err
	}
	return session.NewGame()
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn Conn) error {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	return session.Register(clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn Conn) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	session.Unregister(clientID, conn)
}

// ConnectionCount reports how many clients observe the game, zero for an
// unknown game.
func (gs *GameService) ConnectionCount(gameID string) int {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return 0
	}
	return session.ConnectionCount()
}

func (gs *GameService) SendError(gameID string, clientID string, cause error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	session.SendError(clientID, cause)
}
