package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	IsPremium bool      `json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ViewerContext carries the identity and entitlement of the requester through
// every access and ledger call. It is built per request, never stored.
type ViewerContext struct {
	Email     string
	Role      UserRole
	IsPremium bool
}

func (v ViewerContext) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// Anonymous is the viewer context of an unauthenticated request.
var Anonymous = ViewerContext{}
