package handler

import (
	"GameServer_Backend/internal/matchmaking"
	"GameServer_Backend/internal/storage"
)

// Handler carries the stores and services the HTTP layer depends on.
type Handler struct {
	players  storage.PlayerStore
	board    storage.LeaderboardStore
	mm       *matchmaking.Service
	notifier *matchmaking.Notifier
}

func New(players storage.PlayerStore, board storage.LeaderboardStore, mm *matchmaking.Service, notifier *matchmaking.Notifier) *Handler {
	return &Handler{
		players:  players,
		board:    board,
		mm:       mm,
		notifier: notifier,
	}
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"reason for the failure"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
