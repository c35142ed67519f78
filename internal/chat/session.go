package chat

import (
	"log/slog"
	"strings"
	"time"

	"github.com/etabo/mifugo-connect/internal/market"
	"github.com/etabo/mifugo-connect/internal/query"
)

// WelcomeText is the greeting seeded into every new conversation.
const WelcomeText = "Mifugo Connect SMS Service\n\n" +
	"Commands:\n" +
	"1. [ANIMAL] [TOWN] (e.g., \"GOAT LODWAR\")\n" +
	"2. \"DROUGHT\" for alerts."

// Session drives one simulated SMS conversation against the market
// store. Replies are computed synchronously from a store snapshot but
// appended to the log only after a fixed delay that mimics network
// latency. The delay is cosmetic; a single user drives the simulator, so
// no two replies are ever in flight at once in normal use.
type Session struct {
	store  *market.Store
	log    *Log
	delay  time.Duration
	logger *slog.Logger

	deliveries chan Message
}

// NewSession creates a session over the given store with a fresh
// conversation log seeded with the welcome message.
func NewSession(store *market.Store, delay time.Duration, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		store:  store,
		log:    NewLog(),
		delay:  delay,
		logger: logger,
		// Buffered so a slow reader never blocks delivery.
		deliveries: make(chan Message, 16),
	}
	s.log.Append(SenderSystem, WelcomeText)
	return s
}

// Log exposes the conversation history.
func (s *Session) Log() *Log {
	return s.log
}

// Deliveries reports each system reply as it lands in the log, for
// surfaces that render the conversation live.
func (s *Session) Deliveries() <-chan Message {
	return s.deliveries
}

// HandleUserText processes one user message. Empty or whitespace-only
// text is rejected without effect. Otherwise the user message is appended
// immediately, the reply is computed from a store snapshot, and the
// system message is appended after the delivery delay. There is no
// cancellation: an issued query always eventually produces its reply.
func (s *Session) HandleUserText(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.log.Append(SenderUser, text)
	reply := query.Respond(s.store.List(), text)
	s.logger.Debug("query interpreted", "input", text, "reply", reply)

	time.AfterFunc(s.delay, func() {
		msg := s.log.Append(SenderSystem, reply)
		select {
		case s.deliveries <- msg:
		default:
			// Listener gone or backed up; the log still has the message.
		}
	})
}
