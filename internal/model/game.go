package model

import (
	"fmt"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Subscriber receives game state updates. *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// The connections watching a specific game
type GameConnections struct {
	connections map[string]Subscriber // connectionID -> connection
	mu          sync.RWMutex
}

// Game serialises access to one GameState and fans state out to its observers.
type Game struct {
	ID          string
	Name        string
	mu          sync.Mutex
	state       *GameState
	lastMove    *SimpleMove
	connections *GameConnections
}

// GameView is the JSON snapshot sent to clients.
type GameView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Board       [][]string  `json:"board"`
	ToMove      PlayerColor `json:"toMove"`
	MoveHistory []string    `json:"moveHistory"`
	IsCheck     bool        `json:"isCheck"`
	LastMove    *SimpleMove `json:"lastMove"`
}

type MoveResult struct {
	Notation string   `json:"notation"`
	Special  Special  `json:"special"`
	State    GameView `json:"state"`
}

func NewGame(id, name string) *Game {
	return NewGameFrom(id, name, NewGameState())
}

func NewGameFrom(id, name string, state *GameState) *Game {
	return &Game{
		ID:          id,
		Name:        name,
		state:       state,
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Subscriber),
	}
}

func (g *Game) GetState() GameView {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.view()
}

func (g *Game) view() GameView {
	return GameView{
		ID:          g.ID,
		Name:        g.Name,
		Board:       g.state.Board.Codes(),
		ToMove:      g.state.SideToMove(),
		MoveHistory: g.state.MoveHistory(),
		IsCheck:     g.state.InCheck(g.state.SideToMove()),
		LastMove:    g.lastMove,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Board
}

func (g *Game) LegalTargets(from Square) []Square {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.LegalTargets(from)
}

// MakeMove validates and applies a move from one square to another, then
// broadcasts the new state. A rejected move leaves the game untouched.
func (g *Game) MakeMove(from, to Square) (MoveResult, error) {
	g.mu.Lock()
	move := NewMove(from, to, &g.state.Board)
	special, err := g.state.Validate(move)
	if err != nil {
		g.mu.Unlock()
		log.Debugf("game %s: rejected %s: %v", g.ID, move.Notation(), err)
		return MoveResult{}, err
	}
	g.state.ApplyMove(move, special)
	g.lastMove = &SimpleMove{From: from, To: to}
	result := MoveResult{
		Notation: move.Notation(),
		Special:  special,
		State:    g.view(),
	}
	g.mu.Unlock()

	log.Infof("game %s: %s played %s", g.ID, move.PieceMoved.Color, result.Notation)
	g.broadcastState(result.State)
	return result, nil
}

// RegisterConnection subscribes conn to state updates and sends it the current state.
func (g *Game) RegisterConnection(connID string, conn Subscriber) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[connID]; exists {
		g.connections.mu.Unlock()
		return fmt.Errorf("connection %s already registered", connID)
	}
	g.connections.connections[connID] = conn
	g.connections.mu.Unlock()
	log.Debugf("game %s: registered connection %s", g.ID, connID)

	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.GetState())
	if err != nil {
		g.UnregisterConnection(connID)
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		g.UnregisterConnection(connID)
		return fmt.Errorf("send state to %s: %w", connID, err)
	}
	return nil
}

func (g *Game) UnregisterConnection(connID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[connID]; exists {
		log.Debugf("game %s: unregistering connection %s", g.ID, connID)
		delete(g.connections.connections, connID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()

	return len(g.connections.connections)
}

// broadcastState sends view to every subscriber and drops the ones that fail.
func (g *Game) broadcastState(view GameView) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, view)
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]Subscriber, len(g.connections.connections))
	for connID, conn := range g.connections.connections {
		active[connID] = conn
	}
	g.connections.mu.RUnlock()

	var failed []string
	for connID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: failed to send state to %s: %v", g.ID, connID, err)
			failed = append(failed, connID)
		}
	}
	if len(failed) == 0 {
		return
	}
	g.connections.mu.Lock()
	for _, connID := range failed {
		delete(g.connections.connections, connID)
	}
	g.connections.mu.Unlock()
}
