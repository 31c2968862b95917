package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"rotiseria-api/middleware"
	"rotiseria-api/models"
)

func TestLoginRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Juan", "juan@mail.com", "secret123", models.RoleClient)

	w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"juan@mail.com","password":"secret123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := middleware.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != models.RoleClient {
		t.Fatalf("expected role Client got %s", claims.Role)
	}
	if claims.Subject != "juan@mail.com" {
		t.Fatalf("expected subject to be the email, got %s", claims.Subject)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti claim")
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Juan", "juan@mail.com", "secret123", models.RoleClient)

	wrongPass := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"juan@mail.com","password":"nope12"}`, "")
	unknown := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"ghost@mail.com","password":"secret123"}`, "")

	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401 got %d/%d", wrongPass.Code, unknown.Code)
	}
	// Same payload either way: no user enumeration
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("failure responses must not differ: %s vs %s", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestRegisterCreatesVariantProfile(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	body := `{"name":"Ana","email":"ana@mail.com","password":"secret123","role":"Client","address":"San Martin 789","phone":"2664000002"}`
	w := doJSON(r, http.MethodPost, "/api/auth/register", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.Preload("ClientProfile").Where("email = ?", "ana@mail.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.ClientProfile == nil || user.ClientProfile.Address != "San Martin 789" {
		t.Fatalf("expected client profile, got %+v", user.ClientProfile)
	}
}

func TestRegisterClientRequiresContactData(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()
	body := `{"name":"Ana","email":"ana@mail.com","password":"secret123","role":"Client"}`
	if w := doJSON(r, http.MethodPost, "/api/auth/register", body, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Juan", "juan@mail.com", "secret123", models.RoleClient)

	// The conflict comes from the unique index on email, not a pre-read
	body := `{"name":"Other","email":"juan@mail.com","password":"secret123","role":"Cook"}`
	if w := doJSON(r, http.MethodPost, "/api/auth/register", body, ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", w.Code)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single user row, got %d", count)
	}
}

func TestRegisterLegacyAdminRole(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	// Legacy spelling normalizes before anything is stored
	body := `{"name":"Root","email":"root@mail.com","password":"secret123","role":"Administrador"}`
	if w := doJSON(r, http.MethodPost, "/api/auth/register", body, ""); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var user models.User
	if err := db.Where("email = ?", "root@mail.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected role Admin got %s", user.Role)
	}
}

func TestPanelLoginStaffOnly(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	createUser(t, db, "Juan", "juan@mail.com", "secret123", models.RoleClient)
	createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)

	if w := doJSON(r, http.MethodPost, "/api/auth/panel-login", `{"email":"juan@mail.com","password":"secret123"}`, ""); w.Code != http.StatusForbidden {
		t.Fatalf("client must not enter the panel, got %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/api/auth/panel-login", `{"email":"chef@mail.com","password":"secret123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a session cookie")
	}
	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 session row got %d", count)
	}
}
