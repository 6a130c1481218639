package domain

import "time"

// Role is the account role stored on a user row
type Role string

const (
	RoleUser          Role = "user"
	RoleEmployee      Role = "employee"
	RoleBusinessAdmin Role = "business_admin"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleBusinessAdmin:
		return true
	}
	return false
}

// DefaultAddress is stored when a user or employee is created without an address
const DefaultAddress = "Not Provided"

// User represents an account in the system
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Number       *string
	Address      string
	ProfilePhoto *string
	Role         Role
	BusinessID   *uint
	OTP          *string
	IsVerified   bool
	AuthToken    *string
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Business represents a tenant owned by a single business_admin
type Business struct {
	ID        uint
	Name      string
	OwnerID   uint
	Address   *string
	Logo      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicProfile is the user view returned from sign-in
type PublicProfile struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Number       *string `json:"number"`
	Address      string  `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
	Role         Role    `json:"role"`
}

// Profile builds the public view of u
func (u *User) Profile() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Number:       u.Number,
		Address:      u.Address,
		ProfilePhoto: u.ProfilePhoto,
		Role:         u.Role,
	}
}

// EmployeeSummary is one row of an employee listing
type EmployeeSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Number       *string `json:"number"`
	Address      string  `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
}

// Actor is the authenticated caller as seen by the authority services.
// Role and BusinessID come from the bearer token unless a service re-reads them.
type Actor struct {
	ID         uint
	Role       Role
	BusinessID *uint
}

// SignInResult represents a successful sign-in
type SignInResult struct {
	AuthToken string
	User      PublicProfile
}

// BusinessResult represents the outcome of registering or updating a business.
// AuthToken is only set when the caller was promoted.
type BusinessResult struct {
	BusinessID uint
	AuthToken  string
	Created    bool
}

// SignUpInput carries the signup form
type SignUpInput struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email_format"`
	Password     string  `json:"password" validate:"required"`
	Number       *string `json:"number"`
	Address      *string `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
}

// EmployeeInput carries the add-employee form
type EmployeeInput struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email_format"`
	Password     string  `json:"password" validate:"required"`
	Number       *string `json:"number"`
	Address      *string `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
}

// EmployeeUpdate carries a partial employee update. Nil fields keep the stored value.
type EmployeeUpdate struct {
	EmployeeID   uint
	Name         *string
	Email        *string
	Number       *string
	Address      *string
	ProfilePhoto *string
	Password     *string
}

// BusinessInput carries a business registration or, with BusinessID set, an update
type BusinessInput struct {
	BusinessID *uint
	Name       string
	Address    *string
	Logo       *string
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID     uint   `json:"id"`
	Role       Role   `json:"role"`
	BusinessID *uint  `json:"business_id,omitempty"`
	TokenID    string `json:"jti,omitempty"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
}

// Actor converts verified claims into the caller identity
func (c *TokenClaims) Actor() Actor {
	return Actor{ID: c.UserID, Role: c.Role, BusinessID: c.BusinessID}
}

// ResourceKind names a protected resource family in the policy model
type ResourceKind string

const (
	ResourceEmployee ResourceKind = "employee"
	ResourceBusiness ResourceKind = "business"
)

// Action names an operation in the policy model
type Action string

const (
	ActionCreate      Action = "create"
	ActionRead        Action = "read"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionList        Action = "list"
	ActionRegister    Action = "register"
	ActionSetPassword Action = "set_password"
)

// Scope restricts a granted action to a subset of resources
type Scope string

const (
	ScopeAny      Scope = "any"
	ScopeBusiness Scope = "business"
	ScopeSelf     Scope = "self"
)

// Resource identifies the target of an authorization check.
// OwnerID is the user the resource belongs to (the employee itself, or the business owner).
type Resource struct {
	Kind       ResourceKind
	OwnerID    uint
	BusinessID *uint
}
