package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kilian1103/gattaca-game/internal/network"
	"github.com/kilian1103/gattaca-game/pkg/api"
	"github.com/kilian1103/gattaca-game/pkg/logger"
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

// Client — посредник между Websocket и Broadcaster.
// Зрители пассивны: фид односторонний, readPump нужен только для
// обработки ping/pong и закрытия соединения.
type Client struct {
	Hub       *network.Broadcaster
	Conn      *websocket.Conn
	Send      chan api.ServerEvent
	SessionID string
}

func NewClient(hub *network.Broadcaster, conn *websocket.Conn) *Client {
	return &Client{
		Hub:  hub,
		Conn: conn,
		Send: make(chan api.ServerEvent, 256),
	}
}

// readPump следит за соединением зрителя
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("session_id", c.SessionID).Info("Spectator disconnected")
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

	// ПОДПИСКА НА СОБЫТИЯ
	c.SessionID = newSessionID()
	feed := c.Hub.Register(c.SessionID)
	logger.Log.WithField("session_id", c.SessionID).Info("Spectator connected")

	// Пересылка событий из Hub в writePump
	go func() {
		for ev := range feed {
			c.Send <- ev
		}
		close(c.Send)
	}()

	// Входящие сообщения зрителей игнорируем, но читать обязаны:
	// иначе не работают pong-фреймы и закрытие
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
	}
}

// writePump отправляет события зрителю + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(ev); err != nil {
				logger.Log.WithError(err).Debug("write failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
