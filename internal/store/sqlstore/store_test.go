package sqlstore

import (
	"testing"

	"github.com/rwidjaja/contactbook/internal/models"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreateUser(t *testing.T, s *SQLStore, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hashed", Name: "Test User"}
	if err := s.CreateUser(user); err != nil {
		t.Fatalf("Failed to create user %q: %v", username, err)
	}
	return user
}

func mustCreateContact(t *testing.T, s *SQLStore, username, id, firstName string) *models.Contact {
	t.Helper()
	contact := &models.Contact{ID: id, Username: username, FirstName: firstName}
	if err := s.CreateContact(contact); err != nil {
		t.Fatalf("Failed to create contact %q: %v", id, err)
	}
	return contact
}
