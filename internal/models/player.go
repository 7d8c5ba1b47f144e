package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Player is a registered account plus its tracked stats. The password
// hash never leaves the server.
type Player struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username         string        `bson:"username" json:"username"`
	PasswordHash     string        `bson:"password_hash" json:"-"`
	Email            string        `bson:"email,omitempty" json:"email,omitempty"`
	MainHighestScore int           `bson:"main_highest_score" json:"main_highest_score"`
	MainHighestCombo int           `bson:"main_highest_combo" json:"main_highest_combo"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
}

// LeaderboardEntry is one row of the global high-score board.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}
