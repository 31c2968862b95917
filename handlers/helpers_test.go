package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"rotiseria-api/config"
	"rotiseria-api/middleware"
	"rotiseria-api/models"
	"rotiseria-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory database per test and points the
// global handle at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.CadetProfile{},
		&models.CookProfile{},
		&models.MeasurementUnit{},
		&models.Ingredient{},
		&models.Dish{},
		&models.DishIngredient{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.OrderStatusHistory{},
		&models.Session{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	return db
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func bearerToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderStatusOf(t *testing.T, db *gorm.DB, id uint) models.OrderStatus {
	t.Helper()
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	return order.Status
}
