package users

import "time"

// User represents a registered LinkUp account.
// PasswordHash never serializes; responses carry either this struct or a
// Summary.
type User struct {
	CreatedAt    time.Time `json:"createdAt"`
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Image        string    `json:"image,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Phone        string    `json:"phoneNumber,omitempty"`
	Address      string    `json:"address,omitempty"`
}

// Summary is the denormalized author view joined onto posts, comments and
// notifications.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Summary returns the denormalized view of this user.
func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Image: u.Image}
}

// SignUpRequest is the input for account creation.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned on successful credential verification.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest carries the mutable profile fields. Nil pointers
// mean "leave unchanged".
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Image   *string `json:"image,omitempty"`
	Bio     *string `json:"bio,omitempty"`
	Phone   *string `json:"phoneNumber,omitempty"`
	Address *string `json:"address,omitempty"`
}
