package domain

import "time"

// Demo account accepted by Login even when the credential set is empty.
const (
	DemoEmail    = "test@student.com"
	DemoPassword = "password123"
)

// User is the public view of an account. It never carries a password.
type User struct {
	ID         string     `json:"id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	School     string     `json:"school"`
	Department string     `json:"department"`
	Level      string     `json:"level"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// Credential is a persisted account record: the profile plus its password hash.
type Credential struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	School       string     `json:"school"`
	Department   string     `json:"department"`
	Level        string     `json:"level"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	PasswordHash string     `json:"password_hash"`
}

// User projects the credential onto the public user type, dropping the secret.
func (c Credential) User() User {
	return User{
		ID:         c.ID,
		FullName:   c.FullName,
		Email:      c.Email,
		School:     c.School,
		Department: c.Department,
		Level:      c.Level,
		CreatedAt:  c.CreatedAt,
	}
}

// DemoUser returns the fixed profile handed out for the demo credentials.
func DemoUser() User {
	return User{
		ID:         "1",
		FullName:   "Test Student",
		Email:      DemoEmail,
		School:     "University of Ilorin",
		Department: "Computer Science",
		Level:      "300 Level",
	}
}
