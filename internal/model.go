package user

import "time"

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Role is a closed enum; the policy check lives in OneOf instead of string
// comparisons at call sites.
type Role string

// OneOf reports whether the role satisfies the required set. An empty set
// admits any authenticated identity.
func (role Role) OneOf(requiredRoles ...Role) bool {
	if len(requiredRoles) == 0 {
		return true
	}

	for _, requiredRole := range requiredRoles {
		if role == requiredRole {
			return true
		}
	}

	return false
}

// Identity is the verified subject of a request, extracted from a valid
// access token and trusted for the remainder of the request.
type Identity struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type RegisterPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,gte=10"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserRow mirrors the users table. PasswordHash is populated only by
// FindUserWithEmail and never serialized.
type UserRow struct {
	Id           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type UserSummary struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type LoginResult struct {
	User         UserSummary `json:"user"`
	AccessToken  string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

type UserPage struct {
	Users      []*UserRow `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	TotalPages int64      `json:"totalPages"`
}

type RoleCounts struct {
	Admin int64 `json:"admin"`
	User  int64 `json:"user"`
	Total int64 `json:"total"`
}
