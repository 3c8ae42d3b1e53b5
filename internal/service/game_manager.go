package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/willcla/backrank/internal/model"
)

var ErrGameNotFound = errors.New("game not found")

const (
	defaultSearchDepth = 3
	maxSearchDepth     = 5
)

// GameManager owns the registry of running games.
type GameManager struct {
	mu       sync.RWMutex
	games    map[string]*model.Game
	findMove model.MoveFinder
}

func NewGameManager(findMove model.MoveFinder) *GameManager {
	return &GameManager{
		games:    make(map[string]*model.Game),
		findMove: findMove,
	}
}

// CreateGame registers a new game against the engine. humanColor
// defaults to white and depth is clamped to a sane ply range.
func (gm *GameManager) CreateGame(playerID string, humanColor model.Color, depth int) (*model.Game, error) {
	if depth <= 0 {
		depth = defaultSearchDepth
	}
	if depth > maxSearchDepth {
		depth = maxSearchDepth
	}

	game := model.NewGame(uuid.New().String(), humanColor, depth, gm.findMove)
	if _, err := game.Join(playerID); err != nil {
		return nil, err
	}

	gm.mu.Lock()
	gm.games[game.ID] = game
	gm.mu.Unlock()

	game.Start()
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}
