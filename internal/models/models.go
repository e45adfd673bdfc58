package models

// User is a credential record. Token and TokenExpiry are both set while a
// session is active and both zero otherwise.
type User struct {
	Username    string `json:"username"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	Token       string `json:"-"`
	TokenExpiry int64  `json:"-"` // epoch millis
}

type Contact struct {
	ID        string `json:"id"`
	Username  string `json:"-"` // owning user
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Address struct {
	ID        string `json:"id"`
	ContactID string `json:"-"` // owning contact
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country"`
	ZipCode   int    `json:"zipCode"`
}

// Page describes one page of a search result. Page indices are zero-based.
type Page struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

// WebResponse is the envelope every endpoint returns.
type WebResponse struct {
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	Pagination *Page  `json:"pagination,omitempty"`
	Errors     string `json:"errors,omitempty"`
}
