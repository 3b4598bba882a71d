package realtime

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/work-suite-api/internal/auth"
	"github.com/work-suite-api/internal/notify"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Сообщения клиента
const (
	eventJoin   = "join"
	eventLeave  = "leave"
	eventJoined = "joined"
	eventLeft   = "left"
	eventError  = "error"
)

var errInvalidUserID = errors.New("userId must be a positive integer")

type inboundMessage struct {
	Event  string          `json:"event"`
	UserID json.RawMessage `json:"userId"`
}

type serverMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client - одно WebSocket подключение. Исходящие сообщения идут через
// одну очередь и один писатель, поэтому порядок сохраняется.
type Client struct {
	id       string
	hub      *Hub
	conn     *websocket.Conn
	identity *auth.Identity
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	logger   *slog.Logger
}

func newClient(hub *Hub, conn *websocket.Conn, identity *auth.Identity, logger *slog.Logger) *Client {
	id := uuid.NewString()
	return &Client{
		id:       id,
		hub:      hub,
		conn:     conn,
		identity: identity,
		send:     make(chan []byte, sendBuffer),
		done:     make(chan struct{}),
		logger:   logger.With(slog.String("client_id", id)),
	}
}

// enqueue не блокируется: false, если подключение закрыто или очередь полна
func (c *Client) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *Client) reply(event string, data any) {
	msg, err := json.Marshal(serverMessage{Event: event, Data: data})
	if err != nil {
		c.logger.Error("failed to encode reply", slog.Any("error", err))
		return
	}
	c.enqueue(msg)
}

func (c *Client) replyError(message string) {
	c.reply(eventError, map[string]string{"message": message})
}

// readPump читает сообщения join/leave до разрыва соединения
func (c *Client) readPump() {
	defer func() {
		c.hub.Remove(c)
		c.close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", slog.Any("error", err))
			}
			return
		}
		c.handle(bytes.TrimSpace(data))
	}
}

func (c *Client) handle(data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.replyError("invalid message")
		return
	}

	switch msg.Event {
	case eventJoin, eventLeave:
	default:
		c.replyError("unknown event")
		return
	}

	userID, err := parseUserID(msg.UserID)
	if err != nil {
		c.replyError(err.Error())
		return
	}

	if c.identity != nil && !c.identity.IsPrivileged() && c.identity.ID != userID {
		c.replyError("Access Denied")
		return
	}

	room := notify.UserRoom(userID)
	if msg.Event == eventJoin {
		c.hub.Join(c, room)
		c.logger.Info("joined room", slog.String("room", room))
		c.reply(eventJoined, map[string]string{"room": room})
		return
	}

	c.hub.Leave(c, room)
	c.reply(eventLeft, map[string]string{"room": room})
}

// writePump - единственный писатель в соединение
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// parseUserID принимает число или строку с числом
func parseUserID(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, errInvalidUserID
	}

	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errInvalidUserID
		}
		id, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errInvalidUserID
		}
	}

	if id <= 0 {
		return 0, errInvalidUserID
	}
	return id, nil
}
