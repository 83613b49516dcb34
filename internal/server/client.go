package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"spiderden-server/internal/domain"
	"spiderden-server/internal/spawner"
	"spiderden-server/pkg/api"
	"spiderden-server/pkg/logger"
	"spiderden-server/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и цепочкой спауна
type Client struct {
	ID      string
	Spawner *spawner.Service
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
}

func NewClient(svc *spawner.Service, conn *websocket.Conn) *Client {
	return &Client{
		ID:      utils.GenerateID("cl_"),
		Spawner: svc,
		Conn:    conn,
		Send:    make(chan api.ServerResponse, 16),
	}
}

// readPump читает команды от клиента и гоняет их через цепочку.
// Команда обрабатывается прямо в горутине чтения: спаун может висеть
// на имитации задержки, но другим клиентам это не мешает.
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("Unexpected websocket close")
			}
			return
		}
		c.Send <- c.handleCommand(cmd)
	}
}

// handleCommand выполняет одну команду и строит ответ
func (c *Client) handleCommand(cmd api.ClientCommand) api.ServerResponse {
	if err := cmd.Validate(); err != nil {
		return api.ServerResponse{Type: api.ResponseError, Error: err.Error()}
	}

	id := domain.PrefabID(cmd.PrefabID)

	var ent *domain.Entity
	switch cmd.Action {
	case api.ActionSpawn:
		ent = c.Spawner.CreateProtectedEntity(id, domain.Role(cmd.Role))
	case api.ActionAccess:
		ent = c.Spawner.AccessEntity(id)
	}

	resp := api.ServerResponse{Type: api.ResponseSpawnResult}
	if ent != nil {
		resp.Entity = &api.EntityView{
			ID:        string(ent.ID),
			Name:      ent.Name,
			MaxHealth: ent.MaxHealth,
			Damage:    ent.Damage,
		}
	}
	return resp
}

// writePump пишет ответы и пинги в сокет
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case resp, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// readPump закрыл канал - прощаемся
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := json.Marshal(resp)
			if err != nil {
				logger.Log.WithError(err).Error("Failed to marshal response")
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
