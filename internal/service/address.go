package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/rwidjaja/contactbook/internal/apperr"
	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/store"
	"github.com/rwidjaja/contactbook/internal/validate"
)

const addressNotFound = "address not found"

// AddressService resolves the owning contact through the ownership-scoped
// lookup before touching any address, so the Address → Contact → User
// chain is enforced on every operation.
type AddressService struct {
	store store.Store
}

func NewAddressService(s store.Store) *AddressService {
	return &AddressService{store: s}
}

type AddressRequest struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
	ZipCode  *int   `json:"zipCode"`
}

func (r *AddressRequest) validate() error {
	c := &validate.Checker{}
	c.MinLength("street", r.Street, 10)
	c.Length("city", r.City, 5, 50)
	c.Length("province", r.Province, 5, 50)
	c.Required("country", r.Country)
	c.Length("country", r.Country, 5, 50)
	c.NotNil("zipCode", r.ZipCode != nil)
	return c.Err()
}

func (s *AddressService) resolveContact(user *models.User, contactID string) (*models.Contact, error) {
	contact, err := s.store.GetContact(user.Username, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf(contactNotFound)
		}
		return nil, err
	}
	return contact, nil
}

func (s *AddressService) Create(user *models.User, contactID string, req *AddressRequest) (*models.Address, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	contact, err := s.resolveContact(user, contactID)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		ID:        uuid.NewString(),
		ContactID: contact.ID,
		Street:    req.Street,
		City:      req.City,
		Province:  req.Province,
		Country:   req.Country,
		ZipCode:   *req.ZipCode,
	}
	if err := s.store.CreateAddress(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Get(user *models.User, contactID, addressID string) (*models.Address, error) {
	contact, err := s.resolveContact(user, contactID)
	if err != nil {
		return nil, err
	}

	address, err := s.store.GetAddress(contact.ID, addressID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf(addressNotFound)
		}
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Update(user *models.User, contactID, addressID string, req *AddressRequest) (*models.Address, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	address, err := s.Get(user, contactID, addressID)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.ZipCode = *req.ZipCode

	if err := s.store.UpdateAddress(address); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFoundf(addressNotFound)
		}
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Delete(user *models.User, contactID, addressID string) error {
	contact, err := s.resolveContact(user, contactID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteAddress(contact.ID, addressID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFoundf(addressNotFound)
		}
		return err
	}
	return nil
}

func (s *AddressService) List(user *models.User, contactID string) ([]models.Address, error) {
	contact, err := s.resolveContact(user, contactID)
	if err != nil {
		return nil, err
	}
	return s.store.ListAddresses(contact.ID)
}
