package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"

	"github.com/willcla/backrank/internal/model"
)

// GameService is the facade the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

func (gs *GameService) CreateGame(playerID string, humanColor model.Color, depth int) (string, error) {
	game, err := gs.gameManager.CreateGame(playerID, humanColor, depth)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return game.ID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

// LegalMoves returns the destinations for the piece at (x, y), used
// by clients to highlight squares. An empty or out-of-range square is
// an empty list, not an error.
func (gs *GameService) LegalMoves(gameID string, x, y int) ([]model.Square, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalDestinations(x, y), nil
}

func (gs *GameService) HandleMove(gameID, playerID string, m model.Move) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, m)
}

func (gs *GameService) RestartGame(gameID, playerID string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Restart(playerID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
