package service

import (
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (model.GameView, error) {
	gameID := uuid.New().String()

	game, err := gs.gameManager.CreateGame(gameID, NewGameName())
	if err != nil {
		return model.GameView{}, fmt.Errorf("failed to create game: %w", err)
	}

	return game.GetState(), nil
}

func (gs *GameService) ListGames() []GameSummary {
	return gs.gameManager.ListGames()
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameView, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameView{}, err
	}

	return game.GetState(), nil
}

func (gs *GameService) GetBoard(gameID string) (model.Board, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Board{}, err
	}

	return game.Board(), nil
}

// HandleMove parses algebraic squares such as "e2" and plays the move.
func (gs *GameService) HandleMove(gameID string, from, to string) (model.MoveResult, error) {
	fromSq, toSq, err := parseSquares(from, to)
	if err != nil {
		return model.MoveResult{}, err
	}

	return gs.gameManager.MakeMove(gameID, fromSq, toSq)
}

func (gs *GameService) LegalTargets(gameID string, from string) ([]model.Square, error) {
	fromSq, err := model.ParseSquare(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSquare, err)
	}
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	return game.LegalTargets(fromSq), nil
}

func (gs *GameService) RegisterConnection(gameID string, conn model.Subscriber) (string, error) {
	return gs.gameManager.RegisterConnection(gameID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, connID string) {
	gs.gameManager.UnregisterConnection(gameID, connID)
}

func parseSquares(from, to string) (model.Square, model.Square, error) {
	fromSq, err := model.ParseSquare(from)
	if err != nil {
		return model.Square{}, model.Square{}, fmt.Errorf("%w: %v", ErrBadSquare, err)
	}
	toSq, err := model.ParseSquare(to)
	if err != nil {
		return model.Square{}, model.Square{}, fmt.Errorf("%w: %v", ErrBadSquare, err)
	}
	return fromSq, toSq, nil
}
