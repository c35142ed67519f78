// Package chat holds the simulated SMS conversation: the append-only
// message log and the session that routes user text through the query
// engine.
package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of the conversation wrote a message.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

// Message is one SMS bubble. Messages are immutable once appended.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is the append-only conversation history. There is no edit, delete
// or compaction; at this system's scale unbounded growth is fine.
type Log struct {
	mu       sync.Mutex
	messages []Message
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a message with a fresh id and the current time, returning
// the stored message.
func (l *Log) Append(sender Sender, text string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}

	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg
}

// Messages returns a copy of the history in insertion order.
func (l *Log) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len reports the number of messages appended so far.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
