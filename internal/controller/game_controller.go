package controller

import (
	"errors"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/render"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// Register mounts the game routes on router.
func (gc *GameController) Register(router fiber.Router) {
	router.Get("/", gc.ListGames)
	router.Post("/create", gc.CreateGame)
	router.Get("/:gameId", gc.GetGameState)
	router.Delete("/:gameId", gc.DeleteGame)
	router.Post("/:gameId/move", gc.MakeMove)
	router.Get("/:gameId/targets/:square", gc.GetLegalTargets)
	router.Get("/:gameId/board.svg", gc.GetBoardSVG)
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	state, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": state.ID,
		"name":    state.Name,
		"state":   state,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req ws.MovePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := gc.gameService.HandleMove(c.Params("gameId"), req.From, req.To)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

func (gc *GameController) GetLegalTargets(c *fiber.Ctx) error {
	from := c.Params("square")
	targets, err := gc.gameService.LegalTargets(c.Params("gameId"), from)
	if err != nil {
		return errorResponse(c, err)
	}

	notations := make([]string, 0, len(targets))
	for _, sq := range targets {
		notations = append(notations, sq.Notation())
	}
	return c.JSON(fiber.Map{
		"from":    from,
		"targets": notations,
	})
}

// GetBoardSVG renders the board; ?from=e2 highlights the legal targets of that square.
func (gc *GameController) GetBoardSVG(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	board, err := gc.gameService.GetBoard(gameID)
	if err != nil {
		return errorResponse(c, err)
	}

	var marked []model.Square
	if from := c.Query("from"); from != "" {
		if marked, err = gc.gameService.LegalTargets(gameID, from); err != nil {
			return errorResponse(c, err)
		}
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	render.SVG(c, &board, marked)
	return nil
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrBadSquare):
		status = fiber.StatusBadRequest
	case errors.Is(err, model.ErrInvalidMove):
		status = fiber.StatusUnprocessableEntity
	default:
		log.Errorf("request %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
