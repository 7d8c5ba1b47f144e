package matchmaking

import (
	"sync"

	"GameServer_Backend/internal/models"
)

// Notifier fans match notifications out to players waiting on the
// matchmaking websocket. One waiter per player; a second registration
// replaces the first.
type Notifier struct {
	mu      sync.Mutex
	waiters map[string]chan models.MatchNotification
}

func NewNotifier() *Notifier {
	return &Notifier{waiters: make(map[string]chan models.MatchNotification)}
}

// Register returns the channel a waiting player receives its match on.
func (n *Notifier) Register(playerID string) <-chan models.MatchNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan models.MatchNotification, 1)
	n.waiters[playerID] = ch
	return ch
}

// Unregister drops the player's waiter, if any.
func (n *Notifier) Unregister(playerID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.waiters, playerID)
}

// Waiting reports whether the player currently has a registered waiter.
func (n *Notifier) Waiting(playerID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.waiters[playerID]
	return ok
}

// Notify delivers a notification to the player's waiter. Players
// without a registered waiter simply miss the push; they still see the
// match through the queue status endpoint.
func (n *Notifier) Notify(playerID string, notification models.MatchNotification) {
	n.mu.Lock()
	ch, ok := n.waiters[playerID]
	if ok {
		delete(n.waiters, playerID)
	}
	n.mu.Unlock()

	if ok {
		ch <- notification
		close(ch)
	}
}
