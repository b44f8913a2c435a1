package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is an API login account. It only exists so someone can obtain a
// bearer token; employee records live in their own package.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Claims carries the user id inside the signed token. The payload key is
// "id" to stay wire-compatible with existing clients.
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenGenerator signs and verifies bearer tokens.
type TokenGenerator interface {
	GenerateToken(userID int64) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// AuthResponse is the body returned by both signup and login.
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
