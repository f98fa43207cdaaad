package models

import (
	"mozi/proj/internal/domain/fields"
	"time"
)

type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// AnonymousUser represents a request with no resolvable session.
// Every authorization decision treats it as having no rights at all.
var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser || u.ID == 0
}

// Token is the single currently-valid opaque credential of a user.
// Issuing a new one on login replaces the previous value.
type Token struct {
	UserID    int64     `json:"-"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"-"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Poster      string      `json:"poster,omitempty"` // base64-encoded image or a URL, stored as text
	ReleaseDate fields.Date `json:"release_date"`
	CategoryID  int64       `json:"category_id"`
	Rating      float64     `json:"rating"` // mean of review ratings, computed on read
	CreatedAt   time.Time   `json:"-"`
}

type Review struct {
	ID          int64     `json:"id"`
	Rating      int32     `json:"rating"`
	Description string    `json:"description,omitempty"`
	MovieID     int64     `json:"movie_id"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
