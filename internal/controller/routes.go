package controller

import (
	"strings"

	"github.com/benbeisheim/checkmate-backend/internal/config"
	"github.com/benbeisheim/checkmate-backend/internal/middleware"
	"github.com/benbeisheim/checkmate-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

// NewApp wires the HTTP and WebSocket routes for gameService.
func NewApp(cfg config.Config, gameService *service.GameService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "checkmate",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Origins(), ","),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		Origins:         cfg.Origins(),
	}))

	api := app.Group("/api", middleware.EnsureClientID())
	api.Get("/games", gameController.ListGames)

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/board.svg", gameController.BoardSVG)
	gameRoutes.Post("/:gameId/select", gameController.Select)
	gameRoutes.Post("/:gameId/deselect", gameController.Deselect)
	gameRoutes.Post("/:gameId/move", gameController.Move)
	gameRoutes.Post("/:gameId/promote", gameController.Promote)
	gameRoutes.Post("/:gameId/new", gameController.NewGame)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)

	return app
}
