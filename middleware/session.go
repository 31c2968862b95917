package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"rotiseria-api/config"
	"rotiseria-api/models"

	"github.com/google/uuid"
)

// SessionLifetime is how long a panel session cookie stays valid
const SessionLifetime = 8 * time.Hour

const sessionCookieName = "session"

func sign(value string) string {
	mac := hmac.New(sha256.New, config.SessionSecret)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// StartSession persists a session row for the user and sets the signed
// cookie. The cookie only carries the opaque token; name and role live in
// the store.
func StartSession(w http.ResponseWriter, user *models.User) error {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(SessionLifetime),
	}
	if err := config.DB.Create(&session).Error; err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token + "." + sign(session.Token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
	return nil
}

// ClearSession deletes the session row and expires the cookie
func ClearSession(w http.ResponseWriter, r *http.Request) {
	if session, ok := CurrentSession(r); ok {
		config.DB.Delete(&models.Session{}, session.ID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}

// CurrentSession validates the cookie signature and loads the stored
// session. Expired sessions read as absent.
func CurrentSession(r *http.Request) (*models.Session, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return nil, false
	}
	token, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(sign(token))) {
		return nil, false
	}
	var session models.Session
	if err := config.DB.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, false
	}
	if session.Expired() {
		config.DB.Delete(&models.Session{}, session.ID)
		return nil, false
	}
	return &session, true
}
