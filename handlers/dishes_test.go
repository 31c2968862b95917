package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"rotiseria-api/models"

	"gorm.io/gorm"
)

func seedIngredient(t *testing.T, db *gorm.DB, name string, unitCost float64) models.Ingredient {
	t.Helper()
	unit := models.MeasurementUnit{Name: "Kilogram " + name, Abbreviation: "kg"}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	ingredient := models.Ingredient{Name: name, UnitCost: unitCost, MeasurementUnitID: unit.ID}
	if err := db.Create(&ingredient).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	return ingredient
}

func TestCreateDishComputesCost(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	cook := createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	seedIngredient(t, db, "Flour", 10) // qty 2 -> subtotal 20
	seedIngredient(t, db, "Oil", 15)   // qty 1 -> subtotal 15
	token := bearerToken(t, &cook)

	body := `{"name":"Milanesa","sale_price":60,"labor_pct":10,"ingredients":[{"ingredient_id":1,"quantity":2},{"ingredient_id":2,"quantity":1}]}`
	w := doJSON(r, http.MethodPost, "/api/kitchen/dishes", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Dish models.Dish `json:"dish"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Dish.TotalCost != 38.5 {
		t.Fatalf("expected cost 38.50 got %v", resp.Dish.TotalCost)
	}

	var links int64
	db.Model(&models.DishIngredient{}).Where("dish_id = ?", resp.Dish.ID).Count(&links)
	if links != 2 {
		t.Fatalf("expected 2 ingredient links got %d", links)
	}
}

func TestCreateDishManualCostWins(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	cook := createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	seedIngredient(t, db, "Flour", 10)
	token := bearerToken(t, &cook)

	body := `{"name":"Milanesa","sale_price":60,"labor_pct":10,"manual_cost":42,"ingredients":[{"ingredient_id":1,"quantity":2}]}`
	w := doJSON(r, http.MethodPost, "/api/kitchen/dishes", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Dish models.Dish `json:"dish"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Dish.TotalCost != 42 {
		t.Fatalf("manual cost must win, got %v", resp.Dish.TotalCost)
	}
}

func TestCreateDishRejectsBadLabor(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	cook := createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	seedIngredient(t, db, "Flour", 10)
	token := bearerToken(t, &cook)

	body := `{"name":"Milanesa","sale_price":60,"labor_pct":150,"ingredients":[{"ingredient_id":1,"quantity":2}]}`
	if w := doJSON(r, http.MethodPost, "/api/kitchen/dishes", body, token); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCreateDishRejectsNoCostSource(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	cook := createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	token := bearerToken(t, &cook)

	body := `{"name":"Milanesa","sale_price":60,"labor_pct":10}`
	if w := doJSON(r, http.MethodPost, "/api/kitchen/dishes", body, token); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	var count int64
	db.Model(&models.Dish{}).Count(&count)
	if count != 0 {
		t.Fatalf("no dish may be created, got %d", count)
	}
}

func TestDeleteDishIsSoft(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	cook := createUser(t, db, "Chef", "chef@mail.com", "secret123", models.RoleCook)
	dish := models.Dish{Name: "Milanesa", SalePrice: 3000, TotalCost: 2000, Available: true}
	if err := db.Create(&dish).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	token := bearerToken(t, &cook)

	if w := doJSON(r, http.MethodDelete, "/api/kitchen/dishes/1", "", token); w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got models.Dish
	if err := db.First(&got, dish.ID).Error; err != nil {
		t.Fatalf("dish row must survive: %v", err)
	}
	if got.Available {
		t.Fatal("dish must be disabled")
	}

	// Disabled dishes disappear from the public menu
	if w := doJSON(r, http.MethodGet, "/api/dishes/1", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from public menu, got %d", w.Code)
	}
}
