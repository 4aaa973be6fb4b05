// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/decibell/store-backend/internal/storage"
)

type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	ProfilePicture string    `json:"profile_picture"`
	DateJoined     time.Time `json:"date_joined"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	ZipCode        string    `json:"zip_code"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EncodeRow flattens the user into its stored form. Optional fields encode to
// the empty string, never to a "null" token.
func (u *User) EncodeRow() storage.Row {
	return storage.Row{
		"id":              formatInt(u.ID),
		"username":        u.Username,
		"email":           u.Email,
		"password_hash":   u.PasswordHash,
		"role":            string(u.Role),
		"profile_picture": u.ProfilePicture,
		"date_joined":     encodeTime(u.DateJoined),
		"address":         u.Address,
		"city":            u.City,
		"state":           u.State,
		"zip_code":        u.ZipCode,
	}
}

// DecodeUser rebuilds a user from a stored row. A bad id fails the row; every
// other field falls back to a default so one damaged column cannot take the
// whole table down.
func DecodeUser(row storage.Row) (*User, error) {
	id, err := decodeID("users", row)
	if err != nil {
		return nil, err
	}

	role := Role(row["role"])
	if role != RoleAdmin {
		role = RoleUser
	}

	return &User{
		ID:             id,
		Username:       fallbackString(row["username"], AnonymousUsername),
		Email:          row["email"],
		PasswordHash:   row["password_hash"],
		Role:           role,
		ProfilePicture: row["profile_picture"],
		DateJoined:     fallbackTime(row["date_joined"]),
		Address:        row["address"],
		City:           row["city"],
		State:          row["state"],
		ZipCode:        row["zip_code"],
	}, nil
}
