package sqlstore

import (
	"strings"

	"github.com/rwidjaja/contactbook/internal/models"
	"github.com/rwidjaja/contactbook/internal/store"
)

const contactColumns = "id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, '')"

func (s *SQLStore) CreateContact(contact *models.Contact) error {
	_, err := s.db.Exec(
		"INSERT INTO contacts (id, username, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?, ?)",
		contact.ID, contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone,
	)
	return mapErr(err)
}

// GetContact is an ownership-scoped lookup: a contact owned by someone
// else is indistinguishable from a missing one.
func (s *SQLStore) GetContact(username, id string) (*models.Contact, error) {
	var c models.Contact
	err := s.db.QueryRow(
		"SELECT "+contactColumns+" FROM contacts WHERE id = ? AND username = ?", id, username,
	).Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (s *SQLStore) UpdateContact(contact *models.Contact) error {
	res, err := s.db.Exec(
		"UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE id = ? AND username = ?",
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID, contact.Username,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (s *SQLStore) DeleteContact(username, id string) error {
	res, err := s.db.Exec("DELETE FROM contacts WHERE id = ? AND username = ?", id, username)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

// SearchContacts returns one page of matches plus the total match count.
// Filters are ANDed case-insensitive substring matches; the name filter
// covers first and last name.
func (s *SQLStore) SearchContacts(username string, filter store.ContactFilter) ([]models.Contact, int, error) {
	where := []string{"username = ?"}
	args := []any{username}

	if filter.Name != "" {
		where = append(where, "(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Name) + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Email != "" {
		where = append(where, "LOWER(email) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.Phone != "" {
		where = append(where, "phone LIKE ?")
		args = append(args, "%"+filter.Phone+"%")
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM contacts WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, mapErr(err)
	}

	query := "SELECT " + contactColumns + " FROM contacts WHERE " + cond +
		" ORDER BY first_name, id LIMIT ? OFFSET ?"
	args = append(args, filter.Size, filter.Page*filter.Size)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, mapErr(err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}
