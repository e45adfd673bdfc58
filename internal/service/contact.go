package service

import (
	"errors"
	"regexp"

	"github.com/google/uuid"

	"github.com/rwidjaja/contactbook/internal/apperr"
	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/store"
	"github.com/rwidjaja/contactbook/internal/validate"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s()-]+$`)

const contactNotFound = "contact not found"

type ContactService struct {
	store store.Store
}

func NewContactService(s store.Store) *ContactService {
	return &ContactService{store: s}
}

// ContactRequest carries the full set of contact fields; updates use
// full-replace semantics, so create and update share one shape.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (r *ContactRequest) validate() error {
	c := &validate.Checker{}
	c.Required("firstName", r.FirstName)
	c.Length("firstName", r.FirstName, 3, 20)
	c.Length("lastName", r.LastName, 3, 20)
	c.Length("email", r.Email, 3, 100)
	c.Email("email", r.Email)
	c.Match("phone", r.Phone, phonePattern, "invalid phone number")
	return c.Err()
}

func (s *ContactService) Create(user *models.User, req *ContactRequest) (*models.Contact, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		ID:        uuid.NewString(),
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.store.CreateContact(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Get(user *models.User, id string) (*models.Contact, error) {
	contact, err := s.store.GetContact(user.Username, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf(contactNotFound)
		}
		return nil, err
	}
	return contact, nil
}

// Update overwrites every field with the request values (full replace).
func (s *ContactService) Update(user *models.User, id string, req *ContactRequest) (*models.Contact, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	contact, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.store.UpdateContact(contact); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf(contactNotFound)
		}
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(user *models.User, id string) error {
	if err := s.store.DeleteContact(user.Username, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFoundf(contactNotFound)
		}
		return err
	}
	return nil
}

// Search returns one zero-based page of the user's contacts matching the
// filter, plus pagination metadata. An empty result is page 0 of 0.
func (s *ContactService) Search(user *models.User, filter store.ContactFilter) ([]models.Contact, *models.Page, error) {
	if filter.Page < 0 {
		return nil, nil, apperr.Invalidf("page: must not be negative")
	}
	if filter.Size <= 0 {
		filter.Size = 10
	}

	contacts, total, err := s.store.SearchContacts(user.Username, filter)
	if err != nil {
		return nil, nil, err
	}

	page := &models.Page{
		CurrentPage: filter.Page,
		TotalPage:   (total + filter.Size - 1) / filter.Size,
		Size:        filter.Size,
	}
	return contacts, page, nil
}
