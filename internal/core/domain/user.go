package domain

import "time"

// Role classifies an account. The set is closed: branching on Role must
// handle every constant.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// HostStatus is the approval state of an owner account. It is independent of
// the generic IsActive flag.
type HostStatus string

const (
	HostPending  HostStatus = "pending"
	HostApproved HostStatus = "approved"
	HostRejected HostStatus = "rejected"
)

// Valid reports whether s is one of the known host statuses.
func (s HostStatus) Valid() bool {
	switch s {
	case HostPending, HostApproved, HostRejected:
		return true
	}
	return false
}

// User models a directory entry: a renter, a host (owner) subject to
// moderation, or an administrator. PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`

	Role Role `json:"role"`

	// Host lifecycle fields, meaningful only when Role == RoleOwner.
	HostStatus          HostStatus `json:"host_status,omitempty"`
	CompanyName         string     `json:"company_name,omitempty"`
	Siret               string     `json:"siret,omitempty"`
	BusinessDescription string     `json:"business_description,omitempty"`
	BusinessDocuments   []string   `json:"business_documents,omitempty"`

	IsActive   bool `json:"is_active"`
	IsVerified bool `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Claims is the decoded payload of a session token. It is threaded through
// the call chain as the caller's auth context instead of being re-derived
// ad hoc per handler.
type Claims struct {
	Subject string
	Email   string
	Role    Role
}

// IsAdmin reports whether the claims carry the admin role. Admins bypass
// ownership checks on owner-scoped resources.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
