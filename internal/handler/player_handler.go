package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"GameServer_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// SubmitStats request body: the result of one finished run.
type SubmitStatsRequest struct {
	Score int `json:"score" example:"98450"`
	Combo int `json:"combo" example:"312"`
}

type SubmitStatsResponse struct {
	MainHighestScore int  `json:"main_highest_score" example:"98450"`
	MainHighestCombo int  `json:"main_highest_combo" example:"412"`
	NewScoreRecord   bool `json:"new_score_record" example:"true"`
	NewComboRecord   bool `json:"new_combo_record" example:"false"`
}

// Health godoc
// @Summary      Health check
// @Tags         Ops
// @Produce      json
// @Success      200 {object} handler.SuccessResponse
// @Router       / [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy!"})
}

// GetPlayer godoc
// @Summary      Public player profile
// @Description  Looks a player up by username. The password hash is never serialized.
// @Tags         Players
// @Produce      json
// @Param        username path string true "player username"
// @Success      200 {object} models.Player
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /players/{username} [get]
func (h *Handler) GetPlayer(c *gin.Context) {
	username := c.Param("username")

	player, err := h.players.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		slog.Error("failed to look up player", "username", username, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, player)
}

// SubmitStats godoc
// @Summary      Submit a run result
// @Description  Records the score and combo of a finished run. Stored stats only
// @Description  ever increase; a weaker run leaves the records untouched.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.SubmitStatsRequest true "run result"
// @Success      200 {object} handler.SubmitStatsResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/players/me/stats [post]
func (h *Handler) SubmitStats(c *gin.Context) {
	username := c.GetString("username")

	var req SubmitStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Score < 0 || req.Combo < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score and combo must not be negative"})
		return
	}

	ctx := c.Request.Context()
	before, err := h.players.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		slog.Error("failed to load player for stats update", "username", username, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	after, err := h.players.UpdateStats(ctx, username, req.Score, req.Combo)
	if err != nil {
		slog.Error("failed to update stats", "username", username, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stats"})
		return
	}

	// Leaderboard writes are best effort.
	if err := h.board.RecordScore(ctx, username, req.Score); err != nil {
		slog.Error("failed to record leaderboard score", "username", username, "err", err)
	}

	c.JSON(http.StatusOK, SubmitStatsResponse{
		MainHighestScore: after.MainHighestScore,
		MainHighestCombo: after.MainHighestCombo,
		NewScoreRecord:   after.MainHighestScore > before.MainHighestScore,
		NewComboRecord:   after.MainHighestCombo > before.MainHighestCombo,
	})
}

// GetLeaderboard godoc
// @Summary      High-score leaderboard
// @Description  Returns the top players by highest score, best first.
// @Tags         Players
// @Produce      json
// @Param        limit query int false "number of entries (default 10, max 100)"
// @Success      200 {array} models.LeaderboardEntry
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := h.board.Top(c.Request.Context(), limit)
	if err != nil {
		slog.Error("failed to read leaderboard", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
