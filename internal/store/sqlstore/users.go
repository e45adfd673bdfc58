package sqlstore

import (
	"github.com/rwidjaja/contactbook/internal/models"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	_, err := s.db.Exec(
		"INSERT INTO users (username, password, name, token, token_expiry) VALUES (?, ?, ?, ?, ?)",
		user.Username, user.Password, user.Name, nullString(user.Token), nullInt64(user.TokenExpiry),
	)
	return mapErr(err)
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	return s.scanUser("SELECT username, password, name, COALESCE(token, ''), COALESCE(token_expiry, 0) FROM users WHERE username = ?", username)
}

func (s *SQLStore) GetUserByToken(token string) (*models.User, error) {
	return s.scanUser("SELECT username, password, name, COALESCE(token, ''), COALESCE(token_expiry, 0) FROM users WHERE token = ?", token)
}

func (s *SQLStore) UpdateUser(user *models.User) error {
	res, err := s.db.Exec(
		"UPDATE users SET password = ?, name = ?, token = ?, token_expiry = ? WHERE username = ?",
		user.Password, user.Name, nullString(user.Token), nullInt64(user.TokenExpiry), user.Username,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (s *SQLStore) scanUser(query string, arg any) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(query, arg).
		Scan(&user.Username, &user.Password, &user.Name, &user.Token, &user.TokenExpiry)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}
