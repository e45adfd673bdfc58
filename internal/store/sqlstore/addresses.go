package sqlstore

import (
	"github.com/rwidjaja/contactbook/internal/models"
)

const addressColumns = "id, contact_id, COALESCE(street, ''), COALESCE(city, ''), COALESCE(province, ''), country, zip_code"

func (s *SQLStore) CreateAddress(address *models.Address) error {
	_, err := s.db.Exec(
		"INSERT INTO addresses (id, contact_id, street, city, province, country, zip_code) VALUES (?, ?, ?, ?, ?, ?, ?)",
		address.ID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.ZipCode,
	)
	return mapErr(err)
}

func (s *SQLStore) GetAddress(contactID, id string) (*models.Address, error) {
	var a models.Address
	err := s.db.QueryRow(
		"SELECT "+addressColumns+" FROM addresses WHERE id = ? AND contact_id = ?", id, contactID,
	).Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.ZipCode)
	if err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (s *SQLStore) UpdateAddress(address *models.Address) error {
	res, err := s.db.Exec(
		"UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, zip_code = ? WHERE id = ? AND contact_id = ?",
		address.Street, address.City, address.Province, address.Country, address.ZipCode, address.ID, address.ContactID,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (s *SQLStore) DeleteAddress(contactID, id string) error {
	res, err := s.db.Exec("DELETE FROM addresses WHERE id = ? AND contact_id = ?", id, contactID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (s *SQLStore) ListAddresses(contactID string) ([]models.Address, error) {
	rows, err := s.db.Query("SELECT "+addressColumns+" FROM addresses WHERE contact_id = ? ORDER BY id", contactID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.ZipCode); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
