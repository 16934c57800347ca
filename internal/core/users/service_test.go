package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

// staticTokenIssuer issues a fixed token for tests
type staticTokenIssuer struct{ token string }

func (s staticTokenIssuer) Issue(userID, email string) (string, error) {
	return s.token, nil
}

func TestSignUp_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Name == "alice" && u.Email == "a@x.com" && u.PasswordHash != "" && u.PasswordHash != "secret1"
	})).Return(&User{ID: "u1", Name: "alice", Email: "a@x.com"}, nil)

	service := NewUserService(mockRepo, staticTokenIssuer{})
	user, err := service.SignUp(context.Background(), SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	mockRepo.AssertExpectations(t)
}

func TestSignUp_Validation(t *testing.T) {
	service := NewUserService(new(MockRepository), staticTokenIssuer{})

	cases := []struct {
		name  string
		req   SignUpRequest
		field string
	}{
		{"username too short", SignUpRequest{Username: "ab", Email: "a@x.com", Password: "secret1"}, "username"},
		{"username too long", SignUpRequest{Username: "abcdefghijklmnopqrstuvwxyzabcde", Email: "a@x.com", Password: "secret1"}, "username"},
		{"bad email", SignUpRequest{Username: "alice", Email: "not-an-email", Password: "secret1"}, "email"},
		{"short password", SignUpRequest{Username: "alice", Email: "a@x.com", Password: "12345"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.SignUp(context.Background(), tc.req)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrEmailTaken)

	service := NewUserService(mockRepo, staticTokenIssuer{})
	_, err := service.SignUp(context.Background(), SignUpRequest{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&User{ID: "u1", Email: "a@x.com", PasswordHash: string(hash)}, nil)

	service := NewUserService(mockRepo, staticTokenIssuer{token: "tok"})
	result, err := service.Login(context.Background(), "A@X.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, "u1", result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&User{ID: "u1", Email: "a@x.com", PasswordHash: string(hash)}, nil)

	service := NewUserService(mockRepo, staticTokenIssuer{token: "tok"})
	_, err = service.Login(context.Background(), "a@x.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, ErrUserNotFound)

	service := NewUserService(mockRepo, staticTokenIssuer{token: "tok"})
	_, err := service.Login(context.Background(), "ghost@x.com", "whatever")

	// Same sentinel as a wrong password so callers can't probe for accounts
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_NameTooShort(t *testing.T) {
	service := NewUserService(new(MockRepository), staticTokenIssuer{})

	bad := "ab"
	_, err := service.UpdateProfile(context.Background(), "u1", UpdateProfileRequest{Name: &bad})
	assert.True(t, IsValidation(err))
}
