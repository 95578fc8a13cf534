package model

import "fmt"

// Role is the authorization category of a marketplace user.
type Role string

const (
	// RoleCustomer submits repair requests, accepts quotes and leaves reviews.
	RoleCustomer Role = "CUSTOMER"
	// RoleShopOwner runs a repair shop and quotes on requests.
	RoleShopOwner Role = "SHOP_OWNER"
	// RoleAdmin moderates users, shops and requests.
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a backend role string into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleShopOwner, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Profile represents the logged in user as returned by the backend.
type Profile struct {
	ID                int64      `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"fullName"`
	PhoneNumber       string     `json:"phoneNumber,omitempty"`
	Role              Role       `json:"role"`
	Enabled           bool       `json:"enabled"`
	CreatedAt         Timestamp  `json:"createdAt"`
	UpdatedAt         Timestamp  `json:"updatedAt"`
	EmailVerifiedAt   *Timestamp `json:"emailVerifiedAt,omitempty"`
	PasswordUpdatedAt *Timestamp `json:"passwordUpdatedAt,omitempty"`
}

// EmailVerified reports whether the backend has recorded an email verification.
func (p Profile) EmailVerified() bool {
	return p.EmailVerifiedAt != nil && !p.EmailVerifiedAt.IsZero()
}

// DisplayName returns the full name, falling back to the email.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
