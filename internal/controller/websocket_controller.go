package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// lockedConn serialises writes to one connection. Broadcasts for moves made
// on other connections and error replies from this read loop both write to it.
type lockedConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (lc *lockedConn) WriteJSON(v interface{}) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.conn.WriteJSON(v)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	conn := &lockedConn{conn: c}

	// Register this connection with the game
	connID, err := wsc.gameService.RegisterConnection(gameID, conn)
	if err != nil {
		log.Warnf("failed to register connection for game %s: %v", gameID, err)
		wsc.sendError(conn, err)
		c.Close()
		return
	}
	log.Infof("websocket %s connected to game %s", connID, gameID)

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("websocket %s read error: %v", connID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("websocket %s parse error: %v", connID, err)
			wsc.sendError(conn, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			wsc.sendError(conn, err)
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(gameID, connID)
	log.Infof("websocket %s left game %s", connID, gameID)
}

// handleMessage dispatches one inbound message. Accepted moves reach every
// subscriber through the game's broadcast, so nothing is written here.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move payload: %w", err)
		}
		_, err := wsc.gameService.HandleMove(gameID, move.From, move.To)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn *lockedConn, err error) {
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		log.Errorf("failed to marshal error message: %v", merr)
		return
	}
	if werr := conn.WriteJSON(msg); werr != nil {
		log.Debugf("failed to send error message: %v", werr)
	}
}
