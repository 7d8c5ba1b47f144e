package matchmaking

import (
	"testing"
	"time"

	"GameServer_Backend/internal/models"
)

func TestNotifierDeliversAndCloses(t *testing.T) {
	n := NewNotifier()
	ch := n.Register("p1")

	n.Notify("p1", models.MatchNotification{Status: "matched", MatchID: "m1", OpponentID: "p2"})

	select {
	case got := <-ch:
		if got.MatchID != "m1" || got.OpponentID != "p2" {
			t.Fatalf("unexpected notification: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}

	// Channel is closed after delivery.
	if _, open := <-ch; open {
		t.Fatal("expected channel to be closed")
	}
}

func TestNotifierIgnoresUnregisteredPlayers(t *testing.T) {
	n := NewNotifier()
	// Must not panic or block.
	n.Notify("ghost", models.MatchNotification{Status: "matched"})
}

func TestNotifierUnregister(t *testing.T) {
	n := NewNotifier()
	ch := n.Register("p1")
	n.Unregister("p1")

	n.Notify("p1", models.MatchNotification{Status: "matched"})

	select {
	case <-ch:
		t.Fatal("unregistered waiter should not receive notifications")
	default:
	}
}

func TestNotifierSecondRegistrationReplacesFirst(t *testing.T) {
	n := NewNotifier()
	first := n.Register("p1")
	second := n.Register("p1")

	n.Notify("p1", models.MatchNotification{Status: "matched", MatchID: "m1"})

	select {
	case <-first:
		t.Fatal("stale waiter received the notification")
	default:
	}

	select {
	case got := <-second:
		if got.MatchID != "m1" {
			t.Fatalf("unexpected notification: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("replacement waiter did not receive the notification")
	}
}
