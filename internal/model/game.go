package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/willcla/backrank/internal/ws"
)

var (
	ErrSeatTaken = errors.New("game already has a player")
	ErrNotSeated = errors.New("player is not seated in this game")
)

// MoveFinder produces the engine side's reply for a board position.
// It is injected by the service layer so the model does not depend on
// the search package.
type MoveFinder func(b *Board, color Color, depth int) (Move, bool)

// GameConnections tracks the sockets watching a single game.
type GameConnections struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

func NewGameConnections() *GameConnections {
	return &GameConnections{conns: make(map[string]*websocket.Conn)}
}

// Game ties one board to its human player, the engine opponent and
// the sockets observing it. The board has no locking of its own;
// every access goes through the game mutex. In particular the
// engine's search holds the mutex for the whole FindBestMove call, so
// it owns the board exclusively while it runs.
type Game struct {
	ID string

	mu          sync.Mutex
	board       *Board
	history     []Move
	thinking    bool
	humanID     string
	humanColor  Color
	engineColor Color
	depth       int
	findMove    MoveFinder
	whiteClock  *Clock
	blackClock  *Clock

	connections *GameConnections
}

// GameState is the snapshot pushed to clients.
type GameState struct {
	GameID          string       `json:"gameId"`
	Board           [8][8]*Piece `json:"board"`
	ToMove          Color        `json:"toMove"`
	Status          Status       `json:"status"`
	IsCheck         bool         `json:"isCheck"`
	Thinking        bool         `json:"thinking"`
	EnPassantTarget *Square      `json:"enPassantTarget"`
	LastMove        *Move        `json:"lastMove"`
	MoveHistory     []Move       `json:"moveHistory"`
	Players         struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

// NewGame creates a game where the human holds humanColor and the
// engine answers at the given ply depth.
func NewGame(id string, humanColor Color, depth int, findMove MoveFinder) *Game {
	if humanColor != Black {
		humanColor = White
	}
	return &Game{
		ID:          id,
		board:       NewBoard(),
		humanColor:  humanColor,
		engineColor: humanColor.Opponent(),
		depth:       depth,
		findMove:    findMove,
		whiteClock:  NewClock(),
		blackClock:  NewClock(),
		connections: NewGameConnections(),
	}
}

// Join seats the player. Rejoining with the same ID is a no-op so a
// reconnecting client keeps its seat.
func (g *Game) Join(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.humanID {
	case "", playerID:
		g.humanID = playerID
		return g.humanColor, nil
	default:
		return "", ErrSeatTaken
	}
}

// Start begins the clocks and, when the engine has the first move,
// kicks off its opening reply.
func (g *Game) Start() {
	g.mu.Lock()
	g.clockFor(g.board.Turn()).Start()
	engineOpens := g.board.Turn() == g.engineColor && g.findMove != nil
	g.mu.Unlock()

	if engineOpens {
		go g.playEngineReply()
	}
}

// MakeMove commits the human player's move. On success the state is
// broadcast and, if the game is still running, the engine's reply is
// computed on its own goroutine so the caller is not held for the
// duration of the search.
func (g *Game) MakeMove(playerID string, m Move) error {
	g.mu.Lock()
	if g.humanID != "" && playerID != g.humanID {
		g.mu.Unlock()
		return ErrNotSeated
	}
	if g.board.GameStatus() == StatusActive && g.board.Turn() != g.humanColor {
		g.mu.Unlock()
		return ErrWrongTurn
	}
	if err := g.board.AttemptMove(m); err != nil {
		g.mu.Unlock()
		return err
	}
	g.history = append(g.history, m)
	g.clockFor(g.humanColor).Stop()
	engineTurn := g.board.GameStatus() == StatusActive && g.board.Turn() == g.engineColor && g.findMove != nil
	if engineTurn {
		g.clockFor(g.engineColor).Start()
	}
	g.mu.Unlock()

	g.broadcastState()
	if engineTurn {
		go g.playEngineReply()
	}
	return nil
}

// playEngineReply runs the search and commits its move. The game
// mutex is held across the whole search: the board belongs to the
// worker until the call returns.
func (g *Game) playEngineReply() {
	g.mu.Lock()
	if g.board.GameStatus() != StatusActive || g.board.Turn() != g.engineColor || g.thinking {
		g.mu.Unlock()
		return
	}
	g.thinking = true
	g.mu.Unlock()
	g.broadcastState()

	g.mu.Lock()
	if g.board.GameStatus() == StatusActive && g.board.Turn() == g.engineColor {
		if m, ok := g.findMove(g.board, g.engineColor, g.depth); ok {
			if err := g.board.AttemptMove(m); err != nil {
				log.Printf("game %s: engine move %v rejected: %v", g.ID, m, err)
			} else {
				g.history = append(g.history, m)
			}
		}
		g.clockFor(g.engineColor).Stop()
		if g.board.GameStatus() == StatusActive {
			g.clockFor(g.humanColor).Start()
		}
	}
	g.thinking = false
	g.mu.Unlock()
	g.broadcastState()
}

// LegalDestinations returns the legal destination squares for the
// piece at (x, y); empty, foreign and out-of-range squares yield an
// empty list, never an error. Drives client-side highlighting.
func (g *Game) LegalDestinations(x, y int) []Square {
	g.mu.Lock()
	defer g.mu.Unlock()

	piece := g.board.PieceAt(x, y)
	if piece == nil || piece.Color != g.board.Turn() {
		return nil
	}
	return g.board.LegalMovesFrom(Square{x, y})
}

// Restart puts the game back in the starting position, keeping seats
// and connections.
func (g *Game) Restart(playerID string) error {
	g.mu.Lock()
	if g.humanID != "" && playerID != g.humanID {
		g.mu.Unlock()
		return ErrNotSeated
	}
	g.board = NewBoard()
	g.history = nil
	g.whiteClock = NewClock()
	g.blackClock = NewClock()
	g.mu.Unlock()

	g.broadcastState()
	g.Start()
	return nil
}

// State returns a snapshot safe to use after the lock is released.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GameState{
		GameID:          g.ID,
		Board:           g.board.Grid(),
		ToMove:          g.board.Turn(),
		Status:          g.board.GameStatus(),
		IsCheck:         g.board.InCheck(g.board.Turn()),
		Thinking:        g.thinking,
		EnPassantTarget: g.board.EnPassantTarget(),
		MoveHistory:     append([]Move(nil), g.history...),
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		state.LastMove = &last
	}
	human := ClientPlayer{ID: g.humanID, Color: g.humanColor}
	engine := ClientPlayer{Color: g.engineColor, Engine: true}
	if g.humanColor == White {
		human.TimeSpentMs = g.whiteClock.Elapsed().Milliseconds()
		engine.TimeSpentMs = g.blackClock.Elapsed().Milliseconds()
		state.Players.White, state.Players.Black = human, engine
	} else {
		human.TimeSpentMs = g.blackClock.Elapsed().Milliseconds()
		engine.TimeSpentMs = g.whiteClock.Elapsed().Milliseconds()
		state.Players.Black, state.Players.White = human, engine
	}
	return state
}

func (g *Game) clockFor(color Color) *Clock {
	if color == White {
		return g.whiteClock
	}
	return g.blackClock
}

// RegisterConnection attaches a socket to the game and sends it the
// current state. A second connection for the same player replaces
// nothing; the existing one wins.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.conns[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.conns[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.conns, playerID)
}

func (g *Game) broadcastState() {
	payload, err := json.Marshal(g.State())
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: payload}

	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.conns))
	for id, conn := range g.connections.conns {
		active[id] = conn
	}
	g.connections.mu.RUnlock()

	var failed []string
	for id, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, id, err)
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		g.connections.mu.Lock()
		for _, id := range failed {
			delete(g.connections.conns, id)
		}
		g.connections.mu.Unlock()
	}
}
