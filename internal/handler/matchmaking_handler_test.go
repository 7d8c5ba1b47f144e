package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GameServer_Backend/internal/models"
)

func TestJoinQueueQueuedWhenAlone(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	w := env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p1", Score: 1000}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp QueueJoinResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "queued" {
		t.Fatalf("expected queued status, got %q", resp.Status)
	}
	if resp.Position != 1 {
		t.Fatalf("expected position 1, got %d", resp.Position)
	}
}

func TestJoinQueueMatchesWaitingOpponent(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p2", "password123")

	// An opponent is already waiting 50 points away.
	if err := env.mm.Join(context.Background(), "p1", 1050); err != nil {
		t.Fatalf("seed queue: %v", err)
	}
	waiting := env.h.notifier.Register("p1")

	w := env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p2", Score: 1000}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp QueueJoinResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "matched" {
		t.Fatalf("expected matched status, got %q (%s)", resp.Status, w.Body.String())
	}
	if resp.OpponentID != "p1" {
		t.Fatalf("expected opponent p1, got %q", resp.OpponentID)
	}
	if resp.MatchID == "" {
		t.Fatal("expected a match id")
	}

	// Both players left the queue.
	if size, _ := env.mm.QueueSize(context.Background()); size != 0 {
		t.Fatalf("expected empty queue, got %d", size)
	}

	// The waiting player got a websocket notification.
	select {
	case n := <-waiting:
		if n.MatchID != resp.MatchID || n.OpponentID != "p2" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("waiting player was not notified")
	}
}

func TestJoinQueueRejectsDuplicateEntry(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	first := env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p1", Score: 1000}, token)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	second := env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p1", Score: 1000}, token)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate join, got %d", second.Code)
	}
}

func TestJoinQueueRejectsNegativeScore(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	w := env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p1", Score: -5}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLeaveQueue(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p1", Score: 1000}, token)

	w := env.do(t, http.MethodDelete, "/api/matchmaking/queue/p1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = env.do(t, http.MethodDelete, "/api/matchmaking/queue/p1", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after leaving, got %d", w.Code)
	}
}

func TestQueueStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	w := env.do(t, http.MethodGet, "/api/matchmaking/queue/status/p1", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unqueued player, got %d", w.Code)
	}

	env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p1", Score: 1000}, token)

	w = env.do(t, http.MethodGet, "/api/matchmaking/queue/status/p1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp QueueStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Position != 1 || resp.QueueSize != 1 {
		t.Fatalf("unexpected status: %+v", resp)
	}
}

func TestQueueStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	env.mm.Join(context.Background(), "a", 100)
	env.mm.Join(context.Background(), "b", 300)

	w := env.do(t, http.MethodGet, "/api/matchmaking/queue/stats", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats models.QueueStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats.TotalPlayers != 2 || stats.AverageScore != 200 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMatchInfoAndCancelFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	match, err := env.mm.CreateMatch(context.Background(), "p1", "p2")
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	w := env.do(t, http.MethodGet, "/api/matchmaking/match/"+match.ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/matchmaking/match/missing", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/matchmaking/match/"+match.ID+"/cancel", CancelMatchRequest{PlayerID: "p1"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	cancelled, err := env.mm.MatchDetails(context.Background(), match.ID)
	if err != nil {
		t.Fatalf("match details: %v", err)
	}
	if cancelled.Status != models.MatchStatusCancelled {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}
}

func TestJoinQueueRejectsOtherPlayerID(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	w := env.do(t, http.MethodPost, "/api/matchmaking/queue", JoinQueueRequest{PlayerID: "p2", Score: 1000}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when queueing as another player, got %d", w.Code)
	}
	if size, _ := env.mm.QueueSize(context.Background()); size != 0 {
		t.Fatalf("impersonated join reached the queue: %d entries", size)
	}
}

func TestLeaveQueueRejectsOtherPlayerID(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	if err := env.mm.Join(context.Background(), "p2", 1000); err != nil {
		t.Fatalf("seed queue: %v", err)
	}

	w := env.do(t, http.MethodDelete, "/api/matchmaking/queue/p2", nil, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when removing another player, got %d", w.Code)
	}
	if size, _ := env.mm.QueueSize(context.Background()); size != 1 {
		t.Fatal("impersonated leave removed the entry")
	}
}

func TestCancelMatchRejectsOtherPlayerID(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	match, err := env.mm.CreateMatch(context.Background(), "p1", "p2")
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	w := env.do(t, http.MethodPost, "/api/matchmaking/match/"+match.ID+"/cancel", CancelMatchRequest{PlayerID: "p2"}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when cancelling as another player, got %d", w.Code)
	}

	stored, err := env.mm.MatchDetails(context.Background(), match.ID)
	if err != nil {
		t.Fatalf("match details: %v", err)
	}
	if stored.Status != models.MatchStatusActive {
		t.Fatalf("impersonated cancel changed match status to %q", stored.Status)
	}
}

func TestCancelMatchNonParticipant(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin(t, "p1", "password123")

	match, err := env.mm.CreateMatch(context.Background(), "p2", "p3")
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	w := env.do(t, http.MethodPost, "/api/matchmaking/match/"+match.ID+"/cancel", CancelMatchRequest{PlayerID: "p1"}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-participant, got %d", w.Code)
	}
}

func TestCleanupQueueRequiresBackofficeKey(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/backoffice-api/queue/cleanup", nil, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without key, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/backoffice-api/queue/cleanup", nil)
	req.Header.Set("X-Backoffice-Key", "test-backoffice-key")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d (%s)", rec.Code, rec.Body.String())
	}
}
