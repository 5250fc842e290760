package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/checkmate-backend/internal/model"
	"github.com/benbeisheim/checkmate-backend/internal/service"
	"github.com/benbeisheim/checkmate-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

var errUnknownMessage = errors.New("unknown message type")

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	clientID, _ := c.Locals("wsClientID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		log.Warnf("register connection for client %s on game %s: %v", clientID, gameID, err)
		c.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()),
		)
		c.Close()
		return
	}
	log.Debugf("client %s joined game %s (%d connected)", clientID, gameID, wsc.gameService.ConnectionCount(gameID))
	defer func() {
		wsc.gameService.UnregisterConnection(gameID, clientID, c)
		log.Debugf("client %s left game %s (%d connected)", clientID, gameID, wsc.gameService.ConnectionCount(gameID))
	}()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read from client %s on game %s: %v", clientID, gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.gameService.SendError(gameID, clientID, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			wsc.gameService.SendError(gameID, clientID, err)
		}
	}
}

// handleMessage applies one client request. Successful requests reach every
// client through the session broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeSelect:
		var pos model.Position
		if err := json.Unmarshal(msg.Payload, &pos); err != nil {
			return err
		}
		_, err := wsc.gameService.Select(gameID, pos)
		return err

	case ws.MessageTypeDeselect:
		_, err := wsc.gameService.Deselect(gameID)
		return err

	case ws.MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		if req.To == nil {
			return errors.New("target square is required")
		}
		_, _, err := wsc.gameService.HandleMove(gameID, req.From, *req.To)
		return err

	case ws.MessageTypePromote:
		var req promoteRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		_, _, err := wsc.gameService.HandlePromotion(gameID, req.Kind)
		return err

	case ws.MessageTypeNewGame:
		_, _, err := wsc.gameService.NewGame(gameID)
		return err

	default:
		return fmt.Errorf("%w: %s", errUnknownMessage, msg.Type)
	}
}
