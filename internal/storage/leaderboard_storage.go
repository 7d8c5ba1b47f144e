package storage

import (
	"context"
	"strconv"

	"GameServer_Backend/internal/models"

	"github.com/redis/rueidis"
)

const leaderboardKey = "leaderboard:main:data"

// LeaderboardStore keeps the global high-score board.
type LeaderboardStore interface {
	RecordScore(ctx context.Context, username string, score int) error
	Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

type leaderboardStoreRedis struct {
	c rueidis.Client
}

func NewLeaderboardStore(c rueidis.Client) LeaderboardStore {
	return &leaderboardStoreRedis{c: c}
}

// RecordScore writes with GT so only a new personal best moves a player
// on the board.
func (l *leaderboardStoreRedis) RecordScore(ctx context.Context, username string, score int) error {
	cmd := l.c.B().Zadd().Key(leaderboardKey).Gt().ScoreMember().
		ScoreMember(float64(score), username).Build()
	return l.c.Do(ctx, cmd).Error()
}

func (l *leaderboardStoreRedis) Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	cmd := l.c.B().Zrange().Key(leaderboardKey).
		Min("0").Max(strconv.Itoa(limit - 1)).
		Rev().Withscores().Build()
	scores, err := l.c.Do(ctx, cmd).AsZScores()
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for i, s := range scores {
		entries = append(entries, &models.LeaderboardEntry{
			Rank:     i + 1,
			Username: s.Member,
			Score:    int(s.Score),
		})
	}
	return entries, nil
}
