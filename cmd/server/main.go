package main

import (
	"os"
	"strings"

	"github.com/benbeisheim/checkmate-backend/internal/config"
	"github.com/benbeisheim/checkmate-backend/internal/controller"
	"github.com/benbeisheim/checkmate-backend/internal/service"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)
	app := controller.NewApp(cfg, gameService)

	log.Infof("listening on %s (origins: %s)", cfg.Addr, strings.Join(cfg.Origins(), ", "))
	log.Fatal(app.Listen(cfg.Addr))
}
