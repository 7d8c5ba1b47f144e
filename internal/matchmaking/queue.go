// Package matchmaking pairs queued players whose scores are close
// enough, widening the acceptable gap when no near opponent waits.
package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GameServer_Backend/internal/models"
	"GameServer_Backend/internal/storage"

	"github.com/google/uuid"
)

const (
	// MaxScoreDifference is the score window for initial matching.
	MaxScoreDifference = 100
	// ExpandedScoreDifference is the window tried when the initial one
	// finds nobody.
	ExpandedScoreDifference = 200
	// QueueTimeout is how long an entry may wait before cleanup removes it.
	QueueTimeout = 5 * time.Minute
)

var (
	ErrInvalidEntry   = errors.New("invalid queue entry")
	ErrNotInQueue     = errors.New("player not found in queue")
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("player is not part of this match")
)

// Service owns the queue lifecycle: validation, joining, opponent
// search, match creation, cancellation and stale-entry cleanup.
type Service struct {
	queue   storage.QueueStore
	matches storage.MatchStore

	now   func() time.Time
	newID func() string
}

func NewService(queue storage.QueueStore, matches storage.MatchStore) *Service {
	return &Service{
		queue:   queue,
		matches: matches,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// ValidateEntry rejects players that are already queued or submit a
// negative score.
func (s *Service) ValidateEntry(ctx context.Context, playerID string, score int) error {
	if playerID == "" || score < 0 {
		return ErrInvalidEntry
	}
	entry, err := s.queue.Get(ctx, playerID)
	if err != nil {
		return err
	}
	if entry != nil {
		return ErrInvalidEntry
	}
	return nil
}

// Join puts the player into the waiting queue.
func (s *Service) Join(ctx context.Context, playerID string, score int) error {
	entry := &models.QueueEntry{
		PlayerID: playerID,
		Score:    score,
		JoinedAt: s.now().UTC(),
		Status:   models.QueueStatusWaiting,
	}
	return s.queue.Upsert(ctx, entry)
}

// FindOpponent returns the id of a waiting player within the score
// window, or "" when nobody qualifies. The search widens once.
func (s *Service) FindOpponent(ctx context.Context, playerID string, score int) (string, error) {
	for _, window := range []int{MaxScoreDifference, ExpandedScoreDifference} {
		entry, err := s.queue.FindOpponent(ctx, playerID, score-window, score+window)
		if err != nil {
			return "", err
		}
		if entry != nil {
			return entry.PlayerID, nil
		}
	}
	return "", nil
}

// CreateMatch records a match between the two players and removes both
// from the queue.
func (s *Service) CreateMatch(ctx context.Context, player1ID, player2ID string) (*models.Match, error) {
	match := &models.Match{
		ID:        s.newID(),
		Player1ID: player1ID,
		Player2ID: player2ID,
		CreatedAt: s.now().UTC(),
		Status:    models.MatchStatusActive,
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}

	for _, id := range []string{player1ID, player2ID} {
		if _, err := s.queue.Remove(ctx, id); err != nil {
			return nil, fmt.Errorf("dequeue player %s: %w", id, err)
		}
	}
	return match, nil
}

// Leave removes the player from the queue.
func (s *Service) Leave(ctx context.Context, playerID string) error {
	removed, err := s.queue.Remove(ctx, playerID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInQueue
	}
	return nil
}

// Position reports the 1-based FIFO position of a queued player, by
// join time.
func (s *Service) Position(ctx context.Context, playerID string) (int, error) {
	entry, err := s.queue.Get(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, ErrNotInQueue
	}
	ahead, err := s.queue.CountJoinedBefore(ctx, entry.JoinedAt)
	if err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}

// QueueSize reports how many players are currently waiting.
func (s *Service) QueueSize(ctx context.Context) (int, error) {
	n, err := s.queue.CountWaiting(ctx)
	return int(n), err
}

// Stats reports the aggregate queue view.
func (s *Service) Stats(ctx context.Context) (*models.QueueStats, error) {
	return s.queue.Stats(ctx)
}

// MatchDetails returns a match by id.
func (s *Service) MatchDetails(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

// Cancel marks a match cancelled on behalf of one of its participants.
func (s *Service) Cancel(ctx context.Context, matchID, playerID string) error {
	match, err := s.MatchDetails(ctx, matchID)
	if err != nil {
		return err
	}
	if playerID != match.Player1ID && playerID != match.Player2ID {
		return ErrNotParticipant
	}
	return s.matches.MarkCancelled(ctx, matchID, s.now().UTC())
}

// CleanStaleEntries removes entries that waited past QueueTimeout and
// returns how many were dropped.
func (s *Service) CleanStaleEntries(ctx context.Context) (int64, error) {
	cutoff := s.now().UTC().Add(-QueueTimeout)
	return s.queue.DeleteOlderThan(ctx, cutoff)
}
