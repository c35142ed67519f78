package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etabo/mifugo-connect/internal/market"
)

const testDelay = 5 * time.Millisecond

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store := market.NewStore(market.DefaultSeed()...)
	return NewSession(store, testDelay, nil)
}

func waitDelivery(t *testing.T, s *Session) Message {
	t.Helper()
	select {
	case msg := <-s.Deliveries():
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery within timeout")
		return Message{}
	}
}

func TestSessionStartsWithWelcome(t *testing.T) {
	s := newTestSession(t)

	msgs := s.Log().Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, SenderSystem, msgs[0].Sender)
	assert.Equal(t, WelcomeText, msgs[0].Text)
}

func TestSessionIgnoresEmptyInput(t *testing.T) {
	s := newTestSession(t)

	s.HandleUserText("")
	s.HandleUserText("   \t\n")

	time.Sleep(4 * testDelay)
	assert.Equal(t, 1, s.Log().Len(), "only the welcome message should exist")
}

func TestSessionAppendsUserThenSystem(t *testing.T) {
	s := newTestSession(t)

	s.HandleUserText("goat lodwar")

	// User message lands immediately, before the delivery delay.
	msgs := s.Log().Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, SenderUser, msgs[1].Sender)
	assert.Equal(t, "goat lodwar", msgs[1].Text)

	delivered := waitDelivery(t, s)
	assert.Equal(t, SenderSystem, delivered.Sender)
	assert.Contains(t, delivered.Text, "Goat at Lodwar is KES 6,100")

	msgs = s.Log().Messages()
	require.Len(t, msgs, 3, "exactly one system reply per user message")
	assert.Equal(t, delivered.ID, msgs[2].ID)
}

func TestSessionDroughtReply(t *testing.T) {
	s := newTestSession(t)

	s.HandleUserText("what about the DROUGHT?")
	delivered := waitDelivery(t, s)
	assert.Contains(t, delivered.Text, "WARNING")
	assert.Contains(t, delivered.Text, "Pasture condition: POOR")
}

func TestLogAppendOnlyOrder(t *testing.T) {
	l := NewLog()
	l.Append(SenderUser, "one")
	l.Append(SenderSystem, "two")
	l.Append(SenderUser, "three")

	msgs := l.Messages()
	require.Len(t, msgs, 3)

	var texts []string
	for _, m := range msgs {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, "one,two,three", strings.Join(texts, ","))

	// Returned slice is a copy; mutating it does not touch the log.
	msgs[0].Text = "mutated"
	assert.Equal(t, "one", l.Messages()[0].Text)
}

func TestLogAssignsIDsAndTimestamps(t *testing.T) {
	l := NewLog()
	a := l.Append(SenderUser, "a")
	b := l.Append(SenderUser, "b")

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, b.Timestamp.Before(a.Timestamp))
}
