package auth

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims carried by a Supabase access token
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim, which Supabase sets to the user's ID
func (c *Claims) UserID() string {
	return c.Subject
}
