package store

import (
	"errors"

	"github.com/rwidjaja/contactbook/internal/models"
)

var (
	// ErrNotFound covers both absence and ownership mismatch: scoped
	// lookups filter by id and owner in the same statement.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation.
	ErrDuplicate = errors.New("record already exists")
)

// ContactFilter describes one page of a contact search. Empty filter
// fields impose no constraint; the rest are ANDed substring matches.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
	Page  int // zero-based
	Size  int
}

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByToken(token string) (*models.User, error)
	UpdateUser(user *models.User) error

	// Contact operations; lookups are scoped to the owning username.
	CreateContact(contact *models.Contact) error
	GetContact(username, id string) (*models.Contact, error)
	UpdateContact(contact *models.Contact) error
	DeleteContact(username, id string) error
	SearchContacts(username string, filter ContactFilter) ([]models.Contact, int, error)

	// Address operations; lookups are scoped to the owning contact.
	CreateAddress(address *models.Address) error
	GetAddress(contactID, id string) (*models.Address, error)
	UpdateAddress(address *models.Address) error
	DeleteAddress(contactID, id string) error
	ListAddresses(contactID string) ([]models.Address, error)
}
