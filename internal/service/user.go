// Package service contains the business logic: authentication and
// ownership-scoped contact/address operations on top of store.Store.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rwidjaja/contactbook/internal/apperr"
	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/store"
	"github.com/rwidjaja/contactbook/internal/validate"
)

// One shared message for unknown user and wrong password, so login
// failures don't reveal which half was wrong.
const badCredentials = "username or password wrong"

// UserService handles registration, login/logout, profile updates, and
// resolving a request token back to its user.
type UserService struct {
	store      store.Store
	tokenTTL   time.Duration
	bcryptCost int
}

func NewUserService(s store.Store, tokenTTL time.Duration, bcryptCost int) *UserService {
	return &UserService{store: s, tokenTTL: tokenTTL, bcryptCost: bcryptCost}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *RegisterRequest) validate() error {
	c := &validate.Checker{}
	c.Required("username", r.Username)
	c.Length("username", r.Username, 3, 30)
	c.Required("password", r.Password)
	c.Length("password", r.Password, 3, 99)
	c.Required("name", r.Name)
	c.Length("name", r.Name, 3, 30)
	return c.Err()
}

func (s *UserService) Register(req *RegisterRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return apperr.Conflictf("username already registered")
		}
		return err
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) validate() error {
	c := &validate.Checker{}
	c.Required("username", r.Username)
	c.Length("username", r.Username, 3, 30)
	c.Required("password", r.Password)
	c.Length("password", r.Password, 3, 99)
	return c.Err()
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"` // epoch millis
}

// Login verifies the credentials and mints a fresh session token valid
// for the configured TTL.
func (s *UserService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Unauthenticatedf(badCredentials)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperr.Unauthenticatedf(badCredentials)
	}

	user.Token = uuid.NewString()
	user.TokenExpiry = time.Now().Add(s.tokenTTL).UnixMilli()
	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}

	return &TokenResponse{Token: user.Token, ExpiredAt: user.TokenExpiry}, nil
}

// Authenticate resolves a request token to its user. It is read-only:
// the expiry is checked but never extended.
func (s *UserService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, apperr.Unauthenticatedf("token is required")
	}

	user, err := s.store.GetUserByToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Unauthenticatedf("unauthorized")
		}
		return nil, err
	}

	if user.TokenExpiry <= time.Now().UnixMilli() {
		return nil, apperr.Unauthenticatedf("token expired")
	}
	return user, nil
}

// Logout clears the session token. Logging out twice is not an error.
func (s *UserService) Logout(user *models.User) error {
	user.Token = ""
	user.TokenExpiry = 0
	return s.store.UpdateUser(user)
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (s *UserService) Get(user *models.User) *UserResponse {
	return &UserResponse{Username: user.Username, Name: user.Name}
}

// UpdateUserRequest carries optional fields; nil means leave unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (r *UpdateUserRequest) validate() error {
	c := &validate.Checker{}
	if r.Name != nil {
		c.Required("name", *r.Name)
		c.Length("name", *r.Name, 3, 30)
	}
	if r.Password != nil {
		c.Required("password", *r.Password)
		c.Length("password", *r.Password, 3, 99)
	}
	return c.Err()
}

func (s *UserService) Update(user *models.User, req *UpdateUserRequest) (*UserResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}
	return &UserResponse{Username: user.Username, Name: user.Name}, nil
}
