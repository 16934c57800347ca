package users

import "context"

// Repository defines the interface for user persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error)
}

// TokenIssuer signs session tokens for authenticated users.
// Implemented by auth.TokenIssuer.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// Service defines the interface for account business logic
type Service interface {
	// SignUp validates and creates an account. Returns ErrEmailTaken if the
	// email is already registered. No token is issued; the client logs in
	// separately.
	SignUp(ctx context.Context, req SignUpRequest) (*User, error)

	// Login verifies credentials and issues a session token.
	// Fails with ErrInvalidCredentials on unknown email or hash mismatch.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetUser retrieves a user by id, for session lookups and hydration.
	GetUser(ctx context.Context, id string) (*User, error)

	// UpdateProfile applies the non-nil fields of req to the user's profile.
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error)
}
