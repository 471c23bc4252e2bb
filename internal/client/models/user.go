package models

import "fmt"

// User is the authenticated principal as returned by the API.
type User struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
	Token     string `json:"token,omitempty"`
}

// FullName returns "First Last".
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// UserForm is the payload for registration and profile updates.
// ConfirmPassword is checked locally and sent along as the API expects it.
// Blank passwords are left out, so a profile update keeps the current one.
type UserForm struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// PasswordsMatch reports whether the password was typed the same way twice.
func (f UserForm) PasswordsMatch() bool {
	return f.Password == f.ConfirmPassword
}
