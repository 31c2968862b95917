package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rotiseria-api/models"

	"github.com/gin-gonic/gin"
)

func panelLogin(t *testing.T, r *gin.Engine, email, password string) *http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/panel-login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("panel login: expected 200 got %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("expected a session cookie")
	return nil
}

func doWithCookie(r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionCookieAuthorizesKitchen(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	cookie := panelLogin(t, r, "chef@mail.com", "secret123")

	// No Bearer header, so the session strategy resolves the caller
	if w := doWithCookie(r, http.MethodGet, "/api/kitchen/dishes", "", cookie); w.Code != http.StatusOK {
		t.Fatalf("cookie must authorize the kitchen, got %d: %s", w.Code, w.Body.String())
	}
	if w := doWithCookie(r, http.MethodGet, "/api/kitchen/dishes", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no credential must read as 401, got %d", w.Code)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	cookie := panelLogin(t, r, "chef@mail.com", "secret123")

	if w := doWithCookie(r, http.MethodPost, "/api/auth/logout", "", cookie); w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200 got %d", w.Code)
	}

	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Fatalf("logout must delete the session row, got %d", count)
	}

	// The stale cookie is still signed correctly but has no backing row
	if w := doWithCookie(r, http.MethodGet, "/api/kitchen/dishes", "", cookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("stale cookie must be rejected, got %d", w.Code)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	cook := createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	cookie := panelLogin(t, r, "chef@mail.com", "secret123")

	if err := db.Model(&models.Session{}).Where("user_id = ?", cook.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire session: %v", err)
	}

	if w := doWithCookie(r, http.MethodGet, "/api/kitchen/dishes", "", cookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired session must read as 401, got %d", w.Code)
	}

	// The expired row is purged on first use
	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Fatalf("expired session row must be deleted, got %d", count)
	}
}

func TestTamperedSessionCookieRejected(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	cookie := panelLogin(t, r, "chef@mail.com", "secret123")

	// Swap the token while keeping the old signature
	parts := strings.Split(cookie.Value, ".")
	if len(parts) != 2 {
		t.Fatalf("unexpected cookie format: %s", cookie.Value)
	}
	forged := &http.Cookie{Name: cookie.Name, Value: "other-token." + parts[1]}

	if w := doWithCookie(r, http.MethodGet, "/api/kitchen/dishes", "", forged); w.Code != http.StatusUnauthorized {
		t.Fatalf("tampered cookie must be rejected, got %d", w.Code)
	}
}
