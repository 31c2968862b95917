package models

import "time"

// Session is a server-side panel session. The browser only holds the opaque
// signed token; name and role live here so panel pages render without a user
// lookup. Sessions expire after 8 hours.
type Session struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is past its lifetime
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
