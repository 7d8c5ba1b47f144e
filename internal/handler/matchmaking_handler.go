package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"GameServer_Backend/internal/matchmaking"
	"GameServer_Backend/internal/models"

	"github.com/gin-gonic/gin"
)

// JoinQueue request body.
type JoinQueueRequest struct {
	PlayerID string `json:"player_id" example:"my_player"`
	Score    int    `json:"score" example:"1200"`
}

// CancelMatch request body.
type CancelMatchRequest struct {
	PlayerID string `json:"player_id" example:"my_player"`
}

type QueueJoinResponse struct {
	Status     string    `json:"status" example:"matched"`
	MatchID    string    `json:"match_id,omitempty" example:"7f6c0a36-8c62-4a2f-9c1d-58a2d1a1a9ef"`
	OpponentID string    `json:"opponent_id,omitempty" example:"rival_player"`
	Position   int       `json:"position,omitempty" example:"3"`
	Timestamp  time.Time `json:"timestamp"`
}

type QueueStatusResponse struct {
	PlayerID  string    `json:"player_id" example:"my_player"`
	Position  int       `json:"position" example:"3"`
	QueueSize int       `json:"queue_size" example:"17"`
	Timestamp time.Time `json:"timestamp"`
}

// JoinQueue godoc
// @Summary      Join the matchmaking queue
// @Description  Queues the player with their current score and immediately tries
// @Description  to pair them. Opponents within ±100 score are preferred; the
// @Description  window widens to ±200 when nobody is close.
// @Tags         Matchmaking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.JoinQueueRequest true "queue entry"
// @Success      200 {object} handler.QueueJoinResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/matchmaking/queue [post]
func (h *Handler) JoinQueue(c *gin.Context) {
	var req JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.PlayerID != c.GetString("username") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot queue as another player"})
		return
	}

	ctx := c.Request.Context()
	if err := h.mm.ValidateEntry(ctx, req.PlayerID, req.Score); err != nil {
		if errors.Is(err, matchmaking.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue entry"})
			return
		}
		slog.Error("failed to validate queue entry", "player_id", req.PlayerID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join queue"})
		return
	}

	if err := h.mm.Join(ctx, req.PlayerID, req.Score); err != nil {
		slog.Error("failed to join queue", "player_id", req.PlayerID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join queue"})
		return
	}

	opponentID, err := h.mm.FindOpponent(ctx, req.PlayerID, req.Score)
	if err != nil {
		slog.Error("opponent search failed", "player_id", req.PlayerID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join queue"})
		return
	}

	if opponentID != "" {
		match, err := h.mm.CreateMatch(ctx, req.PlayerID, opponentID)
		if err != nil {
			slog.Error("failed to create match", "player_id", req.PlayerID, "opponent_id", opponentID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
			return
		}

		h.notifier.Notify(opponentID, models.MatchNotification{
			Status:     "matched",
			MatchID:    match.ID,
			OpponentID: req.PlayerID,
			Timestamp:  match.CreatedAt,
		})

		c.JSON(http.StatusOK, QueueJoinResponse{
			Status:     "matched",
			MatchID:    match.ID,
			OpponentID: opponentID,
			Timestamp:  match.CreatedAt,
		})
		return
	}

	position, err := h.mm.Position(ctx, req.PlayerID)
	if err != nil {
		slog.Error("failed to read queue position", "player_id", req.PlayerID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join queue"})
		return
	}

	c.JSON(http.StatusOK, QueueJoinResponse{
		Status:    "queued",
		Position:  position,
		Timestamp: time.Now().UTC(),
	})
}

// LeaveQueue godoc
// @Summary      Leave the matchmaking queue
// @Tags         Matchmaking
// @Produce      json
// @Security     BearerAuth
// @Param        player_id path string true "player id"
// @Success      200 {object} handler.SuccessResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/matchmaking/queue/{player_id} [delete]
func (h *Handler) LeaveQueue(c *gin.Context) {
	playerID := c.Param("player_id")
	if playerID != c.GetString("username") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot modify another player's queue entry"})
		return
	}

	if err := h.mm.Leave(c.Request.Context(), playerID); err != nil {
		if errors.Is(err, matchmaking.ErrNotInQueue) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found in queue"})
			return
		}
		slog.Error("failed to leave queue", "player_id", playerID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave queue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully left queue"})
}

// QueueStatus godoc
// @Summary      Queue status of one player
// @Tags         Matchmaking
// @Produce      json
// @Security     BearerAuth
// @Param        player_id path string true "player id"
// @Success      200 {object} handler.QueueStatusResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/matchmaking/queue/status/{player_id} [get]
func (h *Handler) QueueStatus(c *gin.Context) {
	playerID := c.Param("player_id")
	ctx := c.Request.Context()

	position, err := h.mm.Position(ctx, playerID)
	if err != nil {
		if errors.Is(err, matchmaking.ErrNotInQueue) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found in queue"})
			return
		}
		slog.Error("failed to read queue position", "player_id", playerID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read queue status"})
		return
	}

	size, err := h.mm.QueueSize(ctx)
	if err != nil {
		slog.Error("failed to read queue size", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read queue status"})
		return
	}

	c.JSON(http.StatusOK, QueueStatusResponse{
		PlayerID:  playerID,
		Position:  position,
		QueueSize: size,
		Timestamp: time.Now().UTC(),
	})
}

// QueueStats godoc
// @Summary      Aggregate queue statistics
// @Tags         Matchmaking
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.QueueStats
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/matchmaking/queue/stats [get]
func (h *Handler) QueueStats(c *gin.Context) {
	stats, err := h.mm.Stats(c.Request.Context())
	if err != nil {
		slog.Error("failed to read queue stats", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read queue stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MatchInfo godoc
// @Summary      Match details
// @Tags         Matchmaking
// @Produce      json
// @Security     BearerAuth
// @Param        match_id path string true "match id"
// @Success      200 {object} models.Match
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/matchmaking/match/{match_id} [get]
func (h *Handler) MatchInfo(c *gin.Context) {
	matchID := c.Param("match_id")

	match, err := h.mm.MatchDetails(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, matchmaking.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		slog.Error("failed to read match", "match_id", matchID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read match"})
		return
	}

	c.JSON(http.StatusOK, match)
}

// CancelMatch godoc
// @Summary      Cancel an active match
// @Description  Only a participant of the match may cancel it.
// @Tags         Matchmaking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        match_id path string true "match id"
// @Param        request body handler.CancelMatchRequest true "requesting player"
// @Success      200 {object} handler.SuccessResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/matchmaking/match/{match_id}/cancel [post]
func (h *Handler) CancelMatch(c *gin.Context) {
	matchID := c.Param("match_id")

	var req CancelMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.PlayerID != c.GetString("username") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot cancel on behalf of another player"})
		return
	}

	err := h.mm.Cancel(c.Request.Context(), matchID, req.PlayerID)
	if err != nil {
		switch {
		case errors.Is(err, matchmaking.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, matchmaking.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to cancel this match"})
		default:
			slog.Error("failed to cancel match", "match_id", matchID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel match"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match cancelled successfully"})
}

// CleanupQueue godoc
// @Summary      Purge stale queue entries
// @Description  Removes entries older than the queue timeout. Also runs on a
// @Description  background schedule; this route exists for operators.
// @Tags         Ops
// @Produce      json
// @Param        X-Backoffice-Key header string true "backoffice key"
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /backoffice-api/queue/cleanup [get]
func (h *Handler) CleanupQueue(c *gin.Context) {
	cleaned, err := h.mm.CleanStaleEntries(c.Request.Context())
	if err != nil {
		slog.Error("queue cleanup failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cleanup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"cleaned_entries": cleaned,
		"timestamp":       time.Now().UTC(),
	})
}
