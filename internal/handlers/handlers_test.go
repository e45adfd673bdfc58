package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/service"
	"github.com/rwidjaja/contactbook/internal/store"
	"github.com/rwidjaja/contactbook/internal/store/sqlstore"
)

// testResponse mirrors models.WebResponse with raw data for re-decoding.
type testResponse struct {
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *models.Page    `json:"pagination"`
	Errors     string          `json:"errors"`
}

// newTestRouter wires the same route table as main.go over an in-memory
// store.
func newTestRouter(t *testing.T) (*mux.Router, store.Store) {
	t.Helper()

	st, err := sqlstore.New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	users := service.NewUserService(st, time.Hour, bcrypt.MinCost)
	contacts := service.NewContactService(st)
	addresses := service.NewAddressService(st)

	authHandler := &AuthHandler{Users: users}
	userHandler := &UserHandler{Users: users}
	contactHandler := &ContactHandler{Contacts: contacts}
	addressHandler := &AddressHandler{Addresses: addresses}

	r := mux.NewRouter()
	r.HandleFunc("/api/user/register", userHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	authed := r.NewRoute().Subrouter()
	authed.Use(Auth(users))
	authed.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("DELETE")
	authed.HandleFunc("/api/user/info", userHandler.Info).Methods("GET")
	authed.HandleFunc("/api/user/update", userHandler.Update).Methods("PATCH")
	authed.HandleFunc("/api/contacts", contactHandler.Create).Methods("POST")
	authed.HandleFunc("/api/contacts", contactHandler.Search).Methods("GET")
	authed.HandleFunc("/api/contacts/{id}", contactHandler.Get).Methods("GET")
	authed.HandleFunc("/api/contacts/{id}", contactHandler.Update).Methods("PUT")
	authed.HandleFunc("/api/contacts/{id}", contactHandler.Delete).Methods("DELETE")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses", addressHandler.Create).Methods("POST")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses", addressHandler.List).Methods("GET")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses/{address_id}", addressHandler.Get).Methods("GET")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses/{address_id}", addressHandler.Update).Methods("PUT")
	authed.HandleFunc("/api/contacts/{contact_id}/addresses/{address_id}", addressHandler.Delete).Methods("DELETE")

	return r, st
}

// doRequest performs a request against the router, optionally with a JSON
// body and a session token.
func doRequest(t *testing.T, r *mux.Router, method, path, token string, body any) (*httptest.ResponseRecorder, *testResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	resp := &testResponse{}
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), resp); err != nil {
			t.Fatalf("Failed to decode response %q: %v", rr.Body.String(), err)
		}
	}
	return rr, resp
}

// signup registers a user and returns a live session token.
func signup(t *testing.T, r *mux.Router, username string) string {
	t.Helper()

	rr, resp := doRequest(t, r, "POST", "/api/user/register", "", map[string]string{
		"username": username,
		"password": "secret123",
		"name":     "Test User",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Register returned %d: %s", rr.Code, resp.Errors)
	}

	rr, resp = doRequest(t, r, "POST", "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "secret123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Login returned %d: %s", rr.Code, resp.Errors)
	}

	var token service.TokenResponse
	if err := json.Unmarshal(resp.Data, &token); err != nil {
		t.Fatalf("Failed to decode token response: %v", err)
	}
	if token.Token == "" {
		t.Fatal("Expected a session token")
	}
	return token.Token
}
