package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/AMiROH/bakery-api/models"
)

func TestGetMenuOnlyListsAvailableItems(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	seedMenuItem(t, "Chocolate Cake", 150.00, models.CategoryCakes, true)
	seedMenuItem(t, "Croissant", 45.00, models.CategoryPastries, true)
	seedMenuItem(t, "Seasonal Stollen", 220.00, models.CategoryBread, false)

	recorder := performJSON(t, server, http.MethodGet, "/menu", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	resp := decodeBody(t, recorder)
	menu, _ := resp["menu"].([]any)
	if len(menu) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(menu))
	}
	for _, raw := range menu {
		item, _ := raw.(map[string]any)
		if item["name"] == "Seasonal Stollen" {
			t.Errorf("unavailable item leaked into the menu listing")
		}
	}
}

func TestGetMenuCategoryFilter(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	seedMenuItem(t, "Chocolate Cake", 150.00, models.CategoryCakes, true)
	seedMenuItem(t, "Iced Latte", 70.00, models.CategoryDrinks, true)

	recorder := performJSON(t, server, http.MethodGet, "/menu?category=drinks", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	resp := decodeBody(t, recorder)
	menu, _ := resp["menu"].([]any)
	if len(menu) != 1 {
		t.Fatalf("expected 1 drink, got %d", len(menu))
	}

	recorder = performJSON(t, server, http.MethodGet, "/menu?category=sushi", nil, nil)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown category, got %d", recorder.Code)
	}
}

func TestGetMenuItemNotFound(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	recorder := performJSON(t, server, http.MethodGet, "/menu/999", nil, nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}
}

func TestCreateMenuItemRequiresAdmin(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	body := map[string]any{
		"name":     "Pain au Chocolat",
		"price":    55.00,
		"category": models.CategoryPastries,
	}

	recorder := performJSON(t, server, http.MethodPost, "/menu", body, nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", recorder.Code)
	}

	headers := map[string]string{"Authorization": "Bearer " + adminToken(t)}
	recorder = performJSON(t, server, http.MethodPost, "/menu", body, headers)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201 with admin token, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	headers := map[string]string{"Authorization": "Bearer " + adminToken(t)}

	cases := []map[string]any{
		{"name": "Free Cake", "price": 0, "category": models.CategoryCakes},
		{"name": "Mystery Dish", "price": 90.00, "category": "sushi"},
		{"price": 90.00, "category": models.CategoryCakes},
	}
	for i, body := range cases {
		recorder := performJSON(t, server, http.MethodPost, "/menu", body, headers)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected status 400, got %d: %s", i, recorder.Code, recorder.Body.String())
		}
	}
}

func TestUpdateMenuItemAvailability(t *testing.T) {
	setupTestDB(t)
	server := setupRouter()

	item := seedMenuItem(t, "Baguette", 55.00, models.CategoryBread, true)
	headers := map[string]string{"Authorization": "Bearer " + adminToken(t)}

	recorder := performJSON(t, server, http.MethodPatch, fmt.Sprintf("/menu/%d", item.ID), map[string]any{"available": false}, headers)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	listing := decodeBody(t, performJSON(t, server, http.MethodGet, "/menu", nil, nil))
	menu, _ := listing["menu"].([]any)
	if len(menu) != 0 {
		t.Errorf("expected item hidden from menu after being marked unavailable, got %d items", len(menu))
	}
}
