package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/willcla/backrank/internal/controller"
	"github.com/willcla/backrank/internal/engine"
	"github.com/willcla/backrank/internal/middleware"
	"github.com/willcla/backrank/internal/service"
)

func main() {
	app := fiber.New()

	origin := envOr("CORS_ORIGIN", "http://localhost:5173")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(logger.New())

	gameManager := service.NewGameManager(engine.FindBestMove)
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(
		wsController.HandleConnection,
		websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         []string{origin},
		},
	))

	api := app.Group("/api", middleware.EnsurePlayerID())
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", gameController.GetLegalMoves)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/restart", gameController.RestartGame)

	log.Fatal(app.Listen(":" + envOr("PORT", "3000")))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
