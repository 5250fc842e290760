package controller

import (
	"bytes"
	"errors"

	"github.com/benbeisheim/checkmate-backend/internal/model"
	"github.com/benbeisheim/checkmate-backend/internal/render"
	"github.com/benbeisheim/checkmate-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type createGameRequest struct {
	White string `json:"white"`
	Black string `json:"black"`
}

type moveRequest struct {
	From *model.Position `json:"from"`
	To   *model.Position `json:"to"`
}

type promoteRequest struct {
	Kind model.PieceKind `json:"kind"`
}

type moveResponse struct {
	Events []model.Event   `json:"events"`
	State  model.GameState `json:"state"`
}

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	gameID := gc.gameService.CreateGame(req.White, req.Black)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"gameId":  gameID,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) BoardSVG(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	var buf bytes.Buffer
	render.Board(&buf, gameState)
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

func (gc *GameController) Select(c *fiber.Ctx) error {
	var pos model.Position
	if err := c.BodyParser(&pos); err != nil {
		return badRequest(c, "invalid request body")
	}
	gameState, err := gc.gameService.Select(c.Params("gameId"), pos)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) Deselect(c *fiber.Ctx) error {
	gameState, err := gc.gameService.Deselect(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) Move(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.To == nil {
		return badRequest(c, "target square is required")
	}
	events, gameState, err := gc.gameService.HandleMove(c.Params("gameId"), req.From, *req.To)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(moveResponse{Events: events, State: gameState})
}

func (gc *GameController) Promote(c *fiber.Ctx) error {
	var req promoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	events, gameState, err := gc.gameService.HandlePromotion(c.Params("gameId"), req.Kind)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(moveResponse{Events: events, State: gameState})
}

func (gc *GameController) NewGame(c *fiber.Ctx) error {
	events, gameState, err := gc.gameService.NewGame(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(moveResponse{Events: events, State: gameState})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.RemoveGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrNoSelection),
		errors.Is(err, model.ErrInvalidPromotion):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrPromotionPending),
		errors.Is(err, model.ErrNoPromotionPending),
		errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"error": "internal error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
