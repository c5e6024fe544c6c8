package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(logger.NewDiscardLogger().WithField("service", "hub-test"))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws/clubs/:club_id", hub.HandleWebSocket)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return hub, server
}

func dial(t *testing.T, server *httptest.Server, clubID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/clubs/" + clubID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastReachesOnlyThatClub(t *testing.T) {
	hub, server := startHub(t)

	mine := dial(t, server, "club-a")
	other := dial(t, server, "club-b")

	require.Eventually(t, func() bool {
		return hub.GetConnectionCount("club-a") == 1 && hub.GetConnectionCount("club-b") == 1
	}, time.Second, 10*time.Millisecond)

	hub.BroadcastToClub("club-a", EventLineupUpdated, map[string]string{"formation": "4-4-2"})

	mine.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := mine.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventLineupUpdated, event.Type)
	assert.Equal(t, "club-a", event.ClubID)
	assert.NotEmpty(t, event.ID)

	other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub, server := startHub(t)

	conn := dial(t, server, "club-a")
	require.Eventually(t, func() bool {
		return hub.GetConnectionCount("club-a") == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool {
		return hub.GetConnectionCount("club-a") == 0
	}, time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	hub, _ := startHub(t)
	assert.NotPanics(t, func() {
		hub.BroadcastToClub("nobody", EventWeekAdvanced, nil)
	})
}

func TestHub_ConnectAfterShutdownIsClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(logger.NewDiscardLogger().WithField("service", "hub-test"))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws/clubs/:club_id", hub.HandleWebSocket)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	early := dial(t, server, "club-a")
	require.Eventually(t, func() bool {
		return hub.GetConnectionCount("club-a") == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-hub.Done():
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	assert.Equal(t, 0, hub.GetConnectionCount("club-a"))

	early.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := early.ReadMessage()
	assert.Error(t, err)

	late := dial(t, server, "club-a")
	late.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err = late.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Equal(t, 0, hub.GetConnectionCount("club-a"))
}
