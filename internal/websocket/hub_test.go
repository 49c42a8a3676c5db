package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// mockClient creates a Client with an outbox but no real connection.
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:    hub,
		conn:   nil,
		outbox: make(chan []byte, outboxSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)

	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub)
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcast(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub)
	c2 := mockClient(hub)
	hub.Register(c1)
	hub.Register(c2)

	msg := NewMessage("schedule", "added", "Activity added", "🥞 Brunch added to Saturday.", "info")
	hub.Broadcast(msg)

	// Check both clients received the message
	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.outbox:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "schedule_added" {
				t.Errorf("expected type schedule_added, got %s", got.Type)
			}
			if got.Entity != "schedule" {
				t.Errorf("expected entity schedule, got %s", got.Entity)
			}
			if got.Title != "Activity added" {
				t.Errorf("expected toast title, got %s", got.Title)
			}
			if got.Severity != "info" {
				t.Errorf("expected severity info, got %s", got.Severity)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}

	hub.Unregister(c1)
	hub.Unregister(c2)
}

func TestBroadcastEmptyHub(t *testing.T) {
	hub := NewHub(slog.Default())
	// Should not panic
	msg := NewMessage("schedule", "cleared", "Schedule cleared", "", "info")
	hub.Broadcast(msg)
}

func TestBroadcastFullBuffer(t *testing.T) {
	hub := NewHub(slog.Default())

	c := mockClient(hub)
	hub.Register(c)

	// Fill the outbox
	for i := 0; i < outboxSize; i++ {
		hub.Broadcast(NewMessage("test", "fill", "", "", ""))
	}

	// This should drop the message, not panic or block
	hub.Broadcast(NewMessage("test", "dropped", "", "", ""))

	// Drain to verify buffer was full
	count := 0
	for {
		select {
		case <-c.outbox:
			count++
		default:
			goto done
		}
	}
done:
	if count != outboxSize {
		t.Errorf("expected %d messages, got %d", outboxSize, count)
	}

	hub.Unregister(c)
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("catalog", "removed", "Activity removed", "🔭 Stargazing deleted from catalog.", "warning")
	if msg.Type != "catalog_removed" {
		t.Errorf("expected type catalog_removed, got %s", msg.Type)
	}
	if msg.Entity != "catalog" {
		t.Errorf("expected entity catalog, got %s", msg.Entity)
	}
	if msg.Action != "removed" {
		t.Errorf("expected action removed, got %s", msg.Action)
	}
	if msg.Severity != "warning" {
		t.Errorf("expected severity warning, got %s", msg.Severity)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(slog.Default())
	var wg sync.WaitGroup

	// Spawn goroutines that register, broadcast, and unregister concurrently
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mockClient(hub)
			hub.Register(c)
			hub.Broadcast(NewMessage("test", "concurrent", "", "", ""))
			// Drain any messages
			for {
				select {
				case <-c.outbox:
				default:
					hub.Unregister(c)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("expected 0 clients after concurrent test, got %d", got)
	}
}
