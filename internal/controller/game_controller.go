package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/willcla/backrank/internal/model"
	"github.com/willcla/backrank/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Color model.Color `json:"color"`
	Depth int         `json:"depth"`
}

// CreateGame starts a new game against the engine. The body may pick
// the human's color and the search depth; both are optional.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "malformed request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(playerID, req.Color, req.Depth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}
	return c.JSON(state)
}

// GetLegalMoves drives move highlighting: the legal destinations for
// the piece at the queried square. A square with nothing movable
// yields an empty list.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	x := c.QueryInt("x", -1)
	y := c.QueryInt("y", -1)

	moves, err := gc.gameService.LegalMoves(gameID, x, y)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch legal moves",
		})
	}
	if moves == nil {
		moves = []model.Square{}
	}
	return c.JSON(fiber.Map{"moves": moves})
}

// MakeMove commits a move over REST; the resulting state arrives on
// the websocket, and also in this response for clients that poll.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var move model.Move
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, move); err != nil {
		return c.Status(moveErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}
	return c.JSON(state)
}

func (gc *GameController) RestartGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.RestartGame(gameID, playerID); err != nil {
		return c.Status(moveErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Game restarted"})
}

// moveErrorStatus maps the model's typed rejections onto HTTP codes:
// the client can tell "illegal move" apart from "game over" apart
// from "not your game".
func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrNotSeated):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrWrongTurn),
		errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
