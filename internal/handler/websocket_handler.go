package handler

import (
	"log/slog"
	"net/http"
	"time"

	"GameServer_Backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// MatchmakingSocket godoc
// @Summary      Wait for a match over WebSocket
// @Description  Not a standard HTTP API: connect with the ws:// or wss:// scheme.
// @Description  Authentication uses the `token` query parameter instead of a header.
// @Description  The server pushes one JSON match notification when the player is
// @Description  paired, then closes the connection.
// @Tags         WebSocket
// @Param        token query string true "JWT issued at login"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse
// @Router       /ws/matchmaking [get]
func (h *Handler) MatchmakingSocket(c *gin.Context) {
	tokenString := c.Query("token")
	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	playerID := claims.Username

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "player_id", playerID, "err", err)
		return
	}
	defer conn.Close()

	notifications := h.notifier.Register(playerID)
	defer h.notifier.Unregister(playerID)

	slog.Info("matchmaking socket opened", "player_id", playerID)

	// Drain reads so client close frames and pongs are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case notification, ok := <-notifications:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(notification); err != nil {
				slog.Error("failed to push match notification", "player_id", playerID, "err", err)
				return
			}
			slog.Info("match notification delivered", "player_id", playerID, "match_id", notification.MatchID)
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "matched"),
				time.Now().Add(wsWriteTimeout))
			return
		case <-done:
			slog.Info("matchmaking socket closed by client", "player_id", playerID)
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}
