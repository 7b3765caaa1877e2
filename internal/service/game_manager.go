// service/game_manager.go
package service

import (
	"errors"
	"sort"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrBadSquare    = errors.New("bad square")
)

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

type GameSummary struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	ToMove model.PlayerColor `json:"toMove"`
	Moves  int               `json:"moves"`
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

// NewGameName returns a human friendly label such as "brave-otter".
func NewGameName() string {
	return petname.Generate(2, "-")
}

func (gm *GameManager) CreateGame(gameID, name string) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	game := model.NewGame(gameID, name)
	gm.games[gameID] = game
	log.Infof("created game %s (%s)", gameID, name)
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

func (gm *GameManager) ListGames() []GameSummary {
	gm.mu.RLock()
	games := make([]*model.Game, 0, len(gm.games))
	for _, game := range gm.games {
		games = append(games, game)
	}
	gm.mu.RUnlock()

	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		state := game.GetState()
		summaries = append(summaries, GameSummary{
			ID:     game.ID,
			Name:   game.Name,
			ToMove: state.ToMove,
			Moves:  len(state.MoveHistory),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	log.Infof("deleted game %s", gameID)
	return nil
}

// MakeMove only holds the manager's read lock for the lookup; the game
// serialises moves itself.
func (gm *GameManager) MakeMove(gameID string, from, to model.Square) (model.MoveResult, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.MoveResult{}, err
	}

	return game.MakeMove(from, to)
}

func (gm *GameManager) RegisterConnection(gameID string, conn model.Subscriber) (string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	connID := uuid.New().String()
	if err := game.RegisterConnection(connID, conn); err != nil {
		return "", err
	}
	return connID, nil
}

func (gm *GameManager) UnregisterConnection(gameID, connID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(connID)
}
