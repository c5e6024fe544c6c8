// Package websocket pushes club events (lineup changes, week advances) to connected
// clients.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the message envelope sent to clients.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	ClubID    string      `json:"club_id"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventLineupUpdated  = "lineup_updated"
	EventWeekAdvanced   = "week_advanced"
	EventScoutingUpdate = "scouting_updated"
	EventAcademyUpdate  = "academy_updated"
)

// Client is one websocket connection following a club.
type Client struct {
	ClubID string
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub
}

// Hub tracks connections per club and fans events out to them.
type Hub struct {
	clubClients map[string]map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	done        chan struct{}
	logger      *logrus.Entry
	mutex       sync.RWMutex
}

func NewHub(logger *logrus.Entry) *Hub {
	return &Hub{
		clubClients: make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client, sendBufferSize),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Run handles registration until ctx is cancelled, then closes every connection.
// It must be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for clubID, clients := range h.clubClients {
				for client := range clients {
					close(client.Send)
				}
				delete(h.clubClients, clubID)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			if h.clubClients[client.ClubID] == nil {
				h.clubClients[client.ClubID] = make(map[*Client]bool)
			}
			h.clubClients[client.ClubID][client] = true
			count := len(h.clubClients[client.ClubID])
			h.mutex.Unlock()

			h.logger.WithFields(logrus.Fields{
				"club_id":      client.ClubID,
				"club_clients": count,
			}).Info("WebSocket client connected")

		case client := <-h.unregister:
			h.remove(client)
			h.logger.WithField("club_id", client.ClubID).Info("WebSocket client disconnected")
		}
	}
}

// Done is closed once Run has returned and every connection has been closed.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	clients := h.clubClients[client.ClubID]
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clubClients, client.ClubID)
	}
}

// HandleWebSocket upgrades the request and follows the club named in the route.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	clubID := c.Param("club_id")
	if clubID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "club id is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}

	client := &Client{
		ClubID: clubID,
		Conn:   conn,
		Send:   make(chan []byte, sendBufferSize),
		Hub:    h,
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// BroadcastToClub sends an event to every connection following clubID. Slow clients
// whose buffers are full are dropped.
func (h *Hub) BroadcastToClub(clubID, eventType string, data interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		ClubID:    clubID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal WebSocket message")
		return
	}

	var slow []*Client
	h.mutex.RLock()
	for client := range h.clubClients[clubID] {
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	for _, client := range slow {
		h.remove(client)
	}
}

// GetConnectionCount returns the number of connections following clubID.
func (h *Hub) GetConnectionCount(clubID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clubClients[clubID])
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.WithError(err).Error("WebSocket error")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.WithError(err).Error("Failed to write WebSocket message")
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
