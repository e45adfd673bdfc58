package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gorilla/mux"

	"github.com/rwidjaja/contactbook/internal/models"
)

func createTestContact(t *testing.T, r *mux.Router, token, firstName string) models.Contact {
	t.Helper()

	rr, resp := doRequest(t, r, "POST", "/api/contacts", token, map[string]string{
		"firstName": firstName,
		"lastName":  "Brown",
		"email":     "charlie@example.com",
		"phone":     "+62 811 1234",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Create contact returned %d: %s", rr.Code, resp.Errors)
	}

	var contact models.Contact
	if err := json.Unmarshal(resp.Data, &contact); err != nil {
		t.Fatalf("Failed to decode contact: %v", err)
	}
	return contact
}

func TestContactCRUD(t *testing.T) {
	r, _ := newTestRouter(t)
	token := signup(t, r, "testuser")

	contact := createTestContact(t, r, token, "Charlie")
	if contact.ID == "" {
		t.Fatal("Expected a generated contact id")
	}

	// Get
	rr, resp := doRequest(t, r, "GET", "/api/contacts/"+contact.ID, token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Get returned %d: %s", rr.Code, resp.Errors)
	}
	var got models.Contact
	if err := json.Unmarshal(resp.Data, &got); err != nil {
		t.Fatalf("Failed to decode contact: %v", err)
	}
	if got != contact {
		t.Errorf("Round trip mismatch: created %+v got %+v", contact, got)
	}

	// Update is a full replace.
	rr, resp = doRequest(t, r, "PUT", "/api/contacts/"+contact.ID, token, map[string]string{
		"firstName": "Chuck",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Update returned %d: %s", rr.Code, resp.Errors)
	}
	got = models.Contact{}
	if err := json.Unmarshal(resp.Data, &got); err != nil {
		t.Fatalf("Failed to decode contact: %v", err)
	}
	if got.FirstName != "Chuck" || got.LastName != "" || got.Email != "" {
		t.Errorf("Expected full replace, got %+v", got)
	}

	// Delete
	rr, _ = doRequest(t, r, "DELETE", "/api/contacts/"+contact.ID, token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Delete returned %d", rr.Code)
	}
	rr, _ = doRequest(t, r, "GET", "/api/contacts/"+contact.ID, token, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rr.Code)
	}
}

func TestContactRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	rr, _ := doRequest(t, r, "POST", "/api/contacts", "", map[string]string{"firstName": "Charlie"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", rr.Code)
	}
}

func TestContactForeignOwnerIs404(t *testing.T) {
	r, _ := newTestRouter(t)
	aliceToken := signup(t, r, "alice")
	bobToken := signup(t, r, "bobby")

	contact := createTestContact(t, r, aliceToken, "Charlie")

	rr, _ := doRequest(t, r, "GET", "/api/contacts/"+contact.ID, bobToken, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for foreign get, got %d", rr.Code)
	}
	rr, _ = doRequest(t, r, "PUT", "/api/contacts/"+contact.ID, bobToken, map[string]string{"firstName": "Hijack"})
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for foreign update, got %d", rr.Code)
	}
	rr, _ = doRequest(t, r, "DELETE", "/api/contacts/"+contact.ID, bobToken, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for foreign delete, got %d", rr.Code)
	}
}

func TestContactValidationError(t *testing.T) {
	r, _ := newTestRouter(t)
	token := signup(t, r, "testuser")

	rr, resp := doRequest(t, r, "POST", "/api/contacts", token, map[string]string{
		"firstName": "Charlie",
		"email":     "not-an-email",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad email, got %d", rr.Code)
	}
	if resp.Errors == "" {
		t.Error("Expected validation message in errors")
	}
}

func TestContactSearch(t *testing.T) {
	r, _ := newTestRouter(t)
	token := signup(t, r, "testuser")

	for i := 0; i < 25; i++ {
		createTestContact(t, r, token, fmt.Sprintf("John %02d", i))
	}

	rr, resp := doRequest(t, r, "GET", "/api/contacts?name=john&page=1&size=10", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Search returned %d: %s", rr.Code, resp.Errors)
	}
	var page []models.Contact
	if err := json.Unmarshal(resp.Data, &page); err != nil {
		t.Fatalf("Failed to decode page: %v", err)
	}
	if len(page) != 10 {
		t.Errorf("Expected 10 rows, got %d", len(page))
	}
	if resp.Pagination == nil {
		t.Fatal("Expected pagination metadata")
	}
	if resp.Pagination.CurrentPage != 1 || resp.Pagination.TotalPage != 3 || resp.Pagination.Size != 10 {
		t.Errorf("Unexpected pagination: %+v", resp.Pagination)
	}

	// No matches: data is an empty list, not null.
	rr, resp = doRequest(t, r, "GET", "/api/contacts?name=nobody", token, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Search returned %d: %s", rr.Code, resp.Errors)
	}
	if resp.Pagination == nil || resp.Pagination.TotalPage != 0 || resp.Pagination.CurrentPage != 0 {
		t.Errorf("Unexpected pagination for empty result: %+v", resp.Pagination)
	}

	// Bad page parameter.
	rr, _ = doRequest(t, r, "GET", "/api/contacts?page=abc", token, nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-integer page, got %d", rr.Code)
	}
}
