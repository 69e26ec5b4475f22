// Package session holds the per-browser state: who is logged in and the
// current cart. A session is identified by an opaque cookie and persisted
// in Redis (or in memory when Redis is absent) so the cart survives page
// navigation until checkout succeeds or the user clears it.
package session

import (
	"time"

	"github.com/google/uuid"

	"waco-shop/models"
)

type Session struct {
	ID        string      `json:"id"`
	UserID    int         `json:"user_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Provider  string      `json:"provider"`
	Cart      models.Cart `json:"cart"`
	CreatedAt time.Time   `json:"created_at"`
}

func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

func (s *Session) Authenticated() bool {
	return s.UserID > 0
}

// SetUser binds a logged-in identity to the session. The cart is kept: a
// guest cart follows the user through login into checkout.
func (s *Session) SetUser(u *models.User) {
	s.UserID = u.ID
	s.Name = u.Name
	s.Email = u.Email
	s.Provider = u.Provider
}
