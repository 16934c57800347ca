package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Matches the mobile client's email validation: local@domain.tld
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// bcryptCost matches the original deployment so existing hashes keep verifying
const bcryptCost = 10

type userService struct {
	repo   Repository
	tokens TokenIssuer
}

// NewUserService creates a new user service
func NewUserService(repo Repository, tokens TokenIssuer) Service {
	return &userService{repo: repo, tokens: tokens}
}

// SignUp validates the request, hashes the password and persists the account
func (s *userService) SignUp(ctx context.Context, req SignUpRequest) (*User, error) {
	if err := validateSignUp(&req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Name:         req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// Repository maps the unique-email violation to ErrEmailTaken
	return s.repo.Create(ctx, user)
}

// Login verifies credentials and issues a session token
func (s *userService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err == ErrUserNotFound {
		// Burn a comparison anyway so unknown emails cost the same as
		// known-email wrong-password attempts
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 3 || len(name) > 30 {
			return nil, &ValidationError{Field: "name", Message: "name must be between 3 and 30 characters"}
		}
		req.Name = &name
	}
	return s.repo.UpdateProfile(ctx, userID, req)
}

func validateSignUp(req *SignUpRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if len(req.Username) < 3 || len(req.Username) > 30 {
		return &ValidationError{Field: "username", Message: "username must be between 3 and 30 characters"}
	}
	if !emailRegex.MatchString(req.Email) {
		return &ValidationError{Field: "email", Message: "email must be a valid email address"}
	}
	if len(req.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash is a bcrypt hash of an unguessable constant, used to equalize
// login timing when the email is unknown
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("linkup-login-timing-pad"), bcryptCost)
	if err != nil {
		panic(err)
	}
	return h
}()
