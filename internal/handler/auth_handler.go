package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"GameServer_Backend/internal/auth"
	"GameServer_Backend/internal/models"
	"GameServer_Backend/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Signup request body.
type SignupRequest struct {
	Username string `json:"username" example:"new_player"`
	Password string `json:"password" example:"password123"`
	Email    string `json:"email,omitempty" example:"player@example.com"`
}

// Login request body.
type LoginRequest struct {
	Username string `json:"username" example:"my_player"`
	Password string `json:"password" example:"password123"`
}

type SignupResponse struct {
	ID      string `json:"id" example:"665f1c2ab1e7a43d1c9a77aa"`
	Message string `json:"message" example:"Player created successfully"`
}

// Signup godoc
// @Summary      Sign up
// @Description  Creates a new player account with empty stats.
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "signup payload"
// @Success      201 {object} handler.SignupResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var credentials SignupRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(credentials.Username) == "" || strings.TrimSpace(credentials.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and Password cannot be empty"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	player := &models.Player{
		Username:     strings.TrimSpace(credentials.Username),
		PasswordHash: string(hashedPassword),
		Email:        strings.TrimSpace(credentials.Email),
	}
	id, err := h.players.Create(c.Request.Context(), player)
	if err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		slog.Error("failed to create player", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{ID: id, Message: "Player created successfully"})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and issues a JWT valid for 24 hours.
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "login payload"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials LoginRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	player, err := h.players.GetByUsername(c.Request.Context(), credentials.Username)
	if err != nil {
		if errors.Is(err, storage.ErrPlayerNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		slog.Error("failed to look up player", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(credentials.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := auth.GenerateToken(player.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// Profile godoc
// @Summary      Own profile
// @Description  Returns the authenticated player's profile and stats.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Player
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	username := c.GetString("username")

	player, err := h.players.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		slog.Error("failed to load profile", "username", username, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, player)
}
