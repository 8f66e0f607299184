package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"contagion/internal/config"
	"contagion/internal/lobby"
	qr "contagion/internal/qrcode"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	logger   *zap.Logger
	cfg      config.Config
	LobbyMgr *lobby.Manager

	mu   sync.RWMutex
	Hubs map[string]*Hub
}

func NewHandlers(cfg config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		logger:   logger,
		cfg:      cfg,
		LobbyMgr: lobby.NewManager(),
		Hubs:     make(map[string]*Hub),
	}
}

// HandleCreateGame creates a new game lobby and returns its ID.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	gameID := h.LobbyMgr.Create()
	lob := h.LobbyMgr.Get(gameID)
	hub := NewHub(gameID, lob, h.cfg.DefaultDifficulty, h.logger)

	h.mu.Lock()
	h.Hubs[gameID] = hub
	h.mu.Unlock()
	go hub.Run()

	h.logger.Info("game created", zap.String("game_id", gameID))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"game_id": gameID})
}

// HandleQR generates a QR code PNG with the join URL for a game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("%s/join?game=%s", h.cfg.PublicURL, gameID)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "observer" or "player"

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	h.mu.RLock()
	hub, ok := h.Hubs[gameID]
	h.mu.RUnlock()
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade error", zap.Error(err))
		return
	}

	ct := ClientPlayer
	if clientType == "observer" {
		ct = ClientObserver
	}

	client := NewClient(hub, conn, playerID, ct)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(uuid.NewString()))
}
