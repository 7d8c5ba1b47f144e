package models

import "time"

// Queue entry and match lifecycle states.
const (
	QueueStatusWaiting   = "waiting"
	MatchStatusActive    = "active"
	MatchStatusCancelled = "cancelled"
)

// QueueEntry is a player waiting in the matchmaking queue.
type QueueEntry struct {
	PlayerID string    `bson:"player_id" json:"player_id"`
	Score    int       `bson:"score" json:"score"`
	JoinedAt time.Time `bson:"joined_at" json:"joined_at"`
	Status   string    `bson:"status" json:"status"`
}

// Match pairs two players. The ID is a UUID string so clients can
// reference a match before any game session exists for it.
type Match struct {
	ID          string     `bson:"_id" json:"match_id"`
	Player1ID   string     `bson:"player1_id" json:"player1_id"`
	Player2ID   string     `bson:"player2_id" json:"player2_id"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	Status      string     `bson:"status" json:"status"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}

// QueueStats is the aggregate view of the waiting queue.
type QueueStats struct {
	TotalPlayers int       `json:"total_players"`
	AverageScore float64   `json:"average_score"`
	Timestamp    time.Time `json:"timestamp"`
}

// MatchNotification is pushed over the matchmaking websocket when a
// queued player gets paired.
type MatchNotification struct {
	Status     string    `json:"status"`
	MatchID    string    `json:"match_id"`
	OpponentID string    `json:"opponent_id"`
	Timestamp  time.Time `json:"timestamp"`
}
