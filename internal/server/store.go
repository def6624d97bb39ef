package server

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mcotrim/advertencia/pkg/session"
)

// SessionCookie names the cookie that keys a browser to its draft.
const SessionCookie = "advertencia_session"

// store keeps one warning session per browser. Drafts are ephemeral: they
// live in memory for the server's lifetime and are never persisted.
type store struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
	delay    time.Duration
}

func newStore(delay time.Duration) *store {
	return &store{
		sessions: make(map[string]*session.Session),
		delay:    delay,
	}
}

// get returns the session for the request's cookie, creating both the
// session and the cookie when absent.
func (s *store) get(c *fiber.Ctx) *session.Session {
	id := c.Cookies(SessionCookie)
	if id == "" {
		id = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    id,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = session.New(session.WithDelay(s.delay))
		s.sessions[id] = sess
	}
	return sess
}
