package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/services"
)

// mockGameService implements services.GameServicer for testing
type mockGameService struct {
	mu   sync.Mutex
	game *models.GameState
}

func newMockGameService() *mockGameService {
	return &mockGameService{}
}

func (m *mockGameService) ActiveGame(ctx context.Context) *models.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.Clone()
}

// Unused interface methods
func (m *mockGameService) StartGame(ctx context.Context, courseID int, restart bool) (*models.GameState, error) {
	return nil, nil
}
func (m *mockGameService) RecordScore(ctx context.Context, hole int, scores map[int]int) (*models.GameState, error) {
	return nil, nil
}
func (m *mockGameService) AdvanceHole(ctx context.Context) (*models.GameState, error) {
	return nil, nil
}
func (m *mockGameService) EndGame(ctx context.Context) {}
func (m *mockGameService) Leaderboard(ctx context.Context) ([]services.LeaderboardEntry, error) {
	return nil, nil
}
func (m *mockGameService) SetBroadcaster(b services.Broadcaster) {}

func TestNew_CreatesHubWithDependencies(t *testing.T) {
	log := logger.New()
	game := newMockGameService()

	hub := New(log, game)

	if hub == nil {
		t.Fatal("expected hub to be created")
	}
	if hub.log == nil {
		t.Error("expected logger to be set")
	}
	if hub.game == nil {
		t.Error("expected game service to be set")
	}
	if hub.clients == nil {
		t.Error("expected clients map to be initialized")
	}
	if hub.broadcast == nil {
		t.Error("expected broadcast channel to be initialized")
	}
	if hub.register == nil {
		t.Error("expected register channel to be initialized")
	}
	if hub.unregister == nil {
		t.Error("expected unregister channel to be initialized")
	}
}

func TestHub_BroadcastMessage(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	// Give hub time to start
	time.Sleep(10 * time.Millisecond)

	// BroadcastMessage should not block even with no clients
	done := make(chan bool)
	go func() {
		hub.BroadcastMessage("test", map[string]string{"key": "value"})
		done <- true
	}()

	select {
	case <-done:
		// Success - didn't block
	case <-time.After(100 * time.Millisecond):
		t.Error("BroadcastMessage blocked with no clients")
	}
}

func TestHub_BroadcastGameEvent_ImplementsBroadcaster(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	time.Sleep(10 * time.Millisecond)

	var _ services.Broadcaster = hub

	done := make(chan bool)
	go func() {
		hub.BroadcastGameEvent("game_started", &models.GameState{}, nil)
		done <- true
	}()

	select {
	case <-done:
		// Success
	case <-time.After(100 * time.Millisecond):
		t.Error("BroadcastGameEvent blocked")
	}
}

func TestHub_ClientRegistration(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	time.Sleep(10 * time.Millisecond)

	client := &Client{
		hub:  hub,
		send: make(chan models.WSMessage, 256),
	}

	hub.register <- client
	time.Sleep(50 * time.Millisecond)

	hub.mutex.RLock()
	_, exists := hub.clients[client]
	hub.mutex.RUnlock()

	if !exists {
		t.Error("expected client to be registered")
	}
}

func TestHub_ClientUnregistration(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	time.Sleep(10 * time.Millisecond)

	client := &Client{
		hub:  hub,
		send: make(chan models.WSMessage, 256),
	}

	hub.register <- client
	time.Sleep(50 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(50 * time.Millisecond)

	hub.mutex.RLock()
	_, exists := hub.clients[client]
	hub.mutex.RUnlock()

	if exists {
		t.Error("expected client to be unregistered")
	}
}

// ==================== WebSocket Integration Tests ====================

func TestServeWs_ClientConnection(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	// Convert http://... to ws://...
	url := "ws" + server.URL[4:]

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer ws.Close()

	// Give server time to register client
	time.Sleep(100 * time.Millisecond)

	hub.mutex.RLock()
	clientCount := len(hub.clients)
	hub.mutex.RUnlock()

	if clientCount != 1 {
		t.Errorf("expected 1 client, got %d", clientCount)
	}
}

func TestServeWs_NewClientReceivesGameState(t *testing.T) {
	game := newMockGameService()
	game.game = &models.GameState{
		Course:  models.Course{ID: 1, Name: "Downtown Classic", Holes: 9},
		Players: []models.Player{{ID: 1, Name: "Alice"}},
		Scores:  map[int]map[int]int{},
	}
	hub := New(logger.New(), game)
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer ws.Close()

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read initial game_state: %v", err)
	}

	var msg models.WSMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		t.Fatalf("failed to unmarshal message: %v", err)
	}
	if msg.Type != "game_state" {
		t.Errorf("expected type 'game_state', got %s", msg.Type)
	}
}

func TestServeWs_BroadcastToClient(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer ws.Close()

	// Give server time to register client
	time.Sleep(100 * time.Millisecond)

	// Read and discard the initial game_state message
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = ws.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read initial game_state: %v", err)
	}

	hub.BroadcastGameEvent("score_recorded", &models.GameState{}, nil)

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var msg models.WSMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		t.Fatalf("failed to unmarshal message: %v", err)
	}

	if msg.Type != "score_recorded" {
		t.Errorf("expected type 'score_recorded', got %s", msg.Type)
	}
}

func TestServeWs_ClientDisconnect(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	// Give server time to register client
	time.Sleep(100 * time.Millisecond)

	ws.Close()

	// Give server time to unregister client
	time.Sleep(200 * time.Millisecond)

	hub.mutex.RLock()
	clientCount := len(hub.clients)
	hub.mutex.RUnlock()

	if clientCount != 0 {
		t.Errorf("expected 0 clients after disconnect, got %d", clientCount)
	}
}

func TestServeWs_MultipleClients(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]

	conns := make([]*websocket.Conn, 0, 3)
	for i := 0; i < 3; i++ {
		ws, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("failed to connect client %d: %v", i+1, err)
		}
		defer ws.Close()
		conns = append(conns, ws)
	}

	// Give server time to register all clients
	time.Sleep(200 * time.Millisecond)

	// Discard initial game_state messages from all clients
	for i, ws := range conns {
		ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := ws.ReadMessage(); err != nil {
			t.Errorf("client %d failed to read initial game_state: %v", i+1, err)
		}
	}

	hub.mutex.RLock()
	clientCount := len(hub.clients)
	hub.mutex.RUnlock()

	if clientCount != 3 {
		t.Errorf("expected 3 clients, got %d", clientCount)
	}

	hub.BroadcastMessage("broadcast_test", map[string]int{"count": 123})

	// All clients should receive the message
	for i, ws := range conns {
		ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, message, err := ws.ReadMessage()
		if err != nil {
			t.Errorf("client %d failed to read message: %v", i+1, err)
			continue
		}

		var msg models.WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			t.Errorf("client %d failed to unmarshal: %v", i+1, err)
			continue
		}

		if msg.Type != "broadcast_test" {
			t.Errorf("client %d got wrong type: %s", i+1, msg.Type)
		}
	}
}

func TestReadPump_IncomingMessage(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer ws.Close()

	time.Sleep(100 * time.Millisecond)

	// Read and discard the initial game_state message
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	ws.ReadMessage()

	testMsg := models.WSMessage{
		Type:    "client_message",
		Payload: map[string]string{"data": "test"},
	}
	msgBytes, _ := json.Marshal(testMsg)

	if err := ws.WriteMessage(websocket.TextMessage, msgBytes); err != nil {
		t.Fatalf("failed to write message: %v", err)
	}

	// Give server time to process; exercises the readPump logging path
	time.Sleep(100 * time.Millisecond)
}

func TestWritePump_ChannelClosed(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer ws.Close()

	time.Sleep(100 * time.Millisecond)

	// Read initial message
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	ws.ReadMessage()

	closeReceived := make(chan bool, 1)
	ws.SetCloseHandler(func(code int, text string) error {
		closeReceived <- true
		return nil
	})

	// Start reading to process close message
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	hub.mutex.RLock()
	var client *Client
	for c := range hub.clients {
		client = c
		break
	}
	hub.mutex.RUnlock()

	if client == nil {
		t.Fatal("no client found")
	}

	// Unregistering closes the send channel, which makes writePump send a close frame
	hub.unregister <- client

	select {
	case <-closeReceived:
		// Success - close message was sent
	case <-time.After(500 * time.Millisecond):
		t.Error("expected to receive close message from server")
	}
}

func TestWritePump_WriteError(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	server := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	defer server.Close()

	url := "ws" + server.URL[4:]
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	// Read and discard initial message
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	ws.ReadMessage()

	// Close connection from client side
	ws.Close()
	time.Sleep(50 * time.Millisecond)

	// Broadcasting to the dead connection should clean the client up
	hub.BroadcastMessage("test", map[string]string{"key": "value"})

	time.Sleep(200 * time.Millisecond)

	hub.mutex.RLock()
	clientCount := len(hub.clients)
	hub.mutex.RUnlock()

	if clientCount != 0 {
		t.Errorf("expected 0 clients after write error, got %d", clientCount)
	}
}

func TestServeWs_UpgradeError(t *testing.T) {
	hub := New(logger.New(), newMockGameService())
	hub.Start()

	// A plain GET without upgrade headers must fail without panicking
	req := httptest.NewRequest("GET", "/ws", nil)
	w := httptest.NewRecorder()

	hub.ServeWs(w, req)
}
