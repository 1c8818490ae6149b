package sse

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const bufferSize = 16

// Topics published after a successful mutation.
const (
	TopicEmployee   = "employee"
	TopicDepartment = "department"
	TopicAttendance = "attendance"
	TopicLeave      = "leave"
)

// Event describes a change to one record.
type Event struct {
	Topic  string    `json:"topic"`
	Action string    `json:"action"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

type subscriber struct {
	subject string
	ch      chan Event
}

// Hub fans events out to every connected client. Each connection gets its own
// client id so one user can hold several streams.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]subscriber
	now         func() time.Time
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]subscriber),
		now:         time.Now,
	}
}

// Subscribe registers a connection for subject and returns its client id, the
// event channel and a cleanup function.
func (h *Hub) Subscribe(subject string) (string, <-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clientID := uuid.NewString()
	ch := make(chan Event, bufferSize)
	h.subscribers[clientID] = subscriber{subject: subject, ch: ch}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, clientID)
			close(ch)
		})
	}

	return clientID, ch, cleanup
}

// Publish broadcasts an event. It never blocks: a client whose buffer is full
// misses the event.
func (h *Hub) Publish(topic, action string, id int64) {
	event := Event{Topic: topic, Action: action, ID: id, At: h.now().UTC()}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of open streams for subject.
func (h *Hub) SubscriberCount(subject string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, sub := range h.subscribers {
		if sub.subject == subject {
			n++
		}
	}
	return n
}

// TotalSubscribers returns the total number of open streams.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
