package auth

import (
	"context"
	"testing"
	"time"

	"stagely/internal/shared/config"
	"stagely/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockRepository) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := service.Register(context.Background(), &RegisterRequest{
		FirstName: "Olivia",
		LastName:  "Bennett",
		Email:     "taken@example.com",
		Password:  "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "CreateUser")
}

func TestRegister_IssuesTokenPair(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		user := args.Get(1).(*users.User)
		user.ID = uuid.New()
	}).Return(nil)

	resp, err := service.Register(context.Background(), &RegisterRequest{
		FirstName: "Olivia",
		LastName:  "Bennett",
		Email:     "olivia@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)

	claims, err := service.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "olivia@example.com", claims.Email)
	assert.Equal(t, "stagely", claims.Issuer)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &users.User{
		ID:       uuid.New(),
		Email:    "olivia@example.com",
		Password: string(hashed),
		Role:     users.RoleUser,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewService(repo, testConfig())
		repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

		resp, err := service.Login(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewService(repo, testConfig())
		repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := service.Login(context.Background(), &LoginRequest{
			Email:    user.Email,
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewService(repo, testConfig())
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, ErrUserNotFound)

		_, err := service.Login(context.Background(), &LoginRequest{
			Email:    "ghost@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, testConfig())

	repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*users.User).ID = uuid.New()
	}).Return(nil)

	resp, err := service.Register(context.Background(), &RegisterRequest{
		FirstName: "Olivia",
		LastName:  "Bennett",
		Email:     "olivia@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	_, err = service.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsTampered(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, testConfig())

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherService := NewService(repo, &config.Config{
		JWT: config.JWTConfig{Secret: "different-secret", JWTExpiresIn: time.Minute, RefreshExpiresIn: time.Hour},
	})

	repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*users.User).ID = uuid.New()
	}).Return(nil)

	resp, err := otherService.Register(context.Background(), &RegisterRequest{
		FirstName: "Olivia",
		LastName:  "Bennett",
		Email:     "olivia@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	_, err = service.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
