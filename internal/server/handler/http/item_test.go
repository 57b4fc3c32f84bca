package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// fakeItemService implements ItemService for testing.
type fakeItemService struct {
	createResult models.InsertResult
	createErr    error
	listReturn   []models.Item
	listErr      error
	gotFields    map[string]any
}

func (f *fakeItemService) Create(ctx context.Context, fields map[string]any) (models.InsertResult, error) {
	f.gotFields = fields
	return f.createResult, f.createErr
}

func (f *fakeItemService) List(ctx context.Context) ([]models.Item, error) {
	return f.listReturn, f.listErr
}

func TestItemHandler_Create(t *testing.T) {
	svc := &fakeItemService{createResult: models.InsertResult{Acknowledged: true, InsertedID: "i1"}}
	body := `{"name":"Fuchka","price":40,"anything":{"goes":true}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/items", bytes.NewBufferString(body))

	h := &ItemHandler{ItemService: svc}
	h.Create(rec, req)
	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", res.StatusCode)
	}
	if svc.gotFields["name"] != "Fuchka" {
		t.Errorf("fields not passed through: %v", svc.gotFields)
	}

	var result models.InsertResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if !result.Acknowledged || result.InsertedID != "i1" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestItemHandler_Create_InvalidBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/items", bytes.NewBufferString(`[1,2,3]`))

	h := &ItemHandler{ItemService: &fakeItemService{}}
	h.Create(rec, req)

	if rec.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Result().StatusCode)
	}
}

func TestItemHandler_List(t *testing.T) {
	svc := &fakeItemService{listReturn: []models.Item{
		{ID: "i1", Fields: map[string]any{"name": "Fuchka"}},
	}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/items", nil)

	h := &ItemHandler{ItemService: svc}
	h.List(rec, req)
	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var items []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(items) != 1 || items[0]["id"] != "i1" || items[0]["name"] != "Fuchka" {
		t.Errorf("stored object should be returned with its id merged in, got %v", items)
	}
}

func TestItemHandler_List_Error(t *testing.T) {
	svc := &fakeItemService{listErr: errors.New("db down")}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/items", nil)

	h := &ItemHandler{ItemService: svc}
	h.List(rec, req)

	if rec.Result().StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Result().StatusCode)
	}
}
