package model

import "time"

// Role is the coarse authorization tag carried in the access credential.
// It decides the post-login destination and which dashboard shell applies.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// IsAdmin reports whether the role grants access to the admin dashboard.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Identity is the signed-in user as reconstructed from the access
// credential.  It is never stored on its own: every request decodes it again
// from the credential cookie so the two cannot drift apart.
//
// Fields:
//
//	UserID       – backend user id (user_id claim, zero when absent).
//	Username     – account name shown in the dashboard header.
//	Email        – account email.
//	Role         – admin or customer.
//	CustomerID   – backend customer id, nil for accounts without one.
//	CustomerName – customer display name, empty when unknown.
//	ExpiresAt    – credential expiry; the identity is invalid afterwards.
type Identity struct {
	UserID       int64
	Username     string
	Email        string
	Role         Role
	CustomerID   *int64
	CustomerName string
	ExpiresAt    time.Time
}

// DisplayName prefers the customer name and falls back to the username.
func (i Identity) DisplayName() string {
	if i.CustomerName != "" {
		return i.CustomerName
	}
	return i.Username
}

// TokenPair is the credential pair returned by the backend login endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
