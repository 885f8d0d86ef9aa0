package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/soumyadiya/portfolio-backend/internal/auth"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/soumyadiya/portfolio-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user  *models.User  // returned by GetByUsername and GetByID
	users []models.User // returned by ListWithDescriptors
	err   error         // returned by every method when set

	created            *models.User
	updatedTokenUserID int
	updatedToken       string
	updatedDescriptor  []float64
	updatedHash        string
	exists             bool
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.Username != username {
		return nil, repositories.ErrNotFound
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, repositories.ErrNotFound
	}
	return m.user, nil
}

func (m *mockUserRepository) ListWithDescriptors(ctx context.Context) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockUserRepository) UpdateToken(ctx context.Context, userID int, token string) error {
	if m.err != nil {
		return m.err
	}
	m.updatedTokenUserID = userID
	m.updatedToken = token
	return nil
}

func (m *mockUserRepository) UpdateFaceDescriptor(ctx context.Context, userID int, descriptor []float64, token string) error {
	if m.err != nil {
		return m.err
	}
	m.updatedTokenUserID = userID
	m.updatedDescriptor = descriptor
	m.updatedToken = token
	return nil
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	if m.err != nil {
		return m.err
	}
	m.updatedHash = passwordHash
	return nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(repo *mockUserRepository) (*authService, *auth.TokenGenerator) {
	tokens := auth.NewTokenGenerator("test-secret")
	return NewAuthService(repo, tokens, zap.NewNop()), tokens
}

func TestNewAuthService(t *testing.T) {
	repo := &mockUserRepository{}
	tokens := auth.NewTokenGenerator("secret")
	logger := zap.NewNop()

	svc := NewAuthService(repo, tokens, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, UserRepository(repo), svc.userRepo)
	assert.Equal(t, tokens, svc.tokens)
	assert.Equal(t, logger, svc.logger)
}

func TestAuthService_Login(t *testing.T) {
	hash := hashPassword(t, "Correct-horse1!")

	tests := []struct {
		name          string
		username      string
		password      string
		user          *models.User
		expectedError error
	}{
		{
			name:     "success",
			username: "alice",
			password: "Correct-horse1!",
			user:     &models.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: hash},
		},
		{
			name:          "wrong password",
			username:      "alice",
			password:      "Wrong-horse1!",
			user:          &models.User{ID: 7, Username: "alice", PasswordHash: hash},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown username",
			username:      "nobody",
			password:      "Correct-horse1!",
			user:          &models.User{ID: 7, Username: "alice", PasswordHash: hash},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "empty username",
			username:      "",
			password:      "Correct-horse1!",
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "empty password",
			username:      "alice",
			password:      "",
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{user: tt.user}
			svc, tokens := newTestAuthService(repo)

			resp, err := svc.Login(context.Background(), &models.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, resp.User.ID)
			assert.Equal(t, tt.user.Username, resp.User.Username)
			assert.Equal(t, tt.user.Email, resp.User.Email)

			// Password login always rotates: the returned token must have
			// been persisted for this user
			assert.Equal(t, tt.user.ID, repo.updatedTokenUserID)
			assert.Equal(t, resp.Token, repo.updatedToken)

			userID, username, err := tokens.Validate(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, userID)
			assert.Equal(t, tt.user.Username, username)
		})
	}
}

func TestAuthService_Login_RotatesExistingToken(t *testing.T) {
	hash := hashPassword(t, "Correct-horse1!")
	repo := &mockUserRepository{
		user: &models.User{ID: 1, Username: "alice", PasswordHash: hash, Token: "old-token"},
	}
	svc, _ := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: "Correct-horse1!"})

	require.NoError(t, err)
	assert.NotEqual(t, "old-token", resp.Token)
	assert.Equal(t, resp.Token, repo.updatedToken)
}

func TestAuthService_Login_NeverSucceedsForWrongPasswords(t *testing.T) {
	hash := hashPassword(t, "TheOnlyRight1!")
	repo := &mockUserRepository{
		user: &models.User{ID: 1, Username: "alice", PasswordHash: hash},
	}
	svc, _ := newTestAuthService(repo)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		password := fmt.Sprintf("guess-%d-%d", i, rng.Int63())
		_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "alice", Password: password})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_LoginByFace(t *testing.T) {
	tests := []struct {
		name           string
		users          []models.User
		descriptor     []float64
		expectedUserID int
		expectedError  error
	}{
		{
			name: "close descriptor matches",
			users: []models.User{
				{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}},
			},
			descriptor:     []float64{0, 0, 0.1},
			expectedUserID: 1,
		},
		{
			name: "distant descriptor is rejected",
			users: []models.User{
				{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}},
			},
			descriptor:    []float64{5, 5, 5},
			expectedError: ErrFaceNotRecognized,
		},
		{
			name: "closest candidate wins",
			users: []models.User{
				{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}},
				{ID: 2, Username: "bob", FaceDescriptor: []float64{1, 1, 1}},
			},
			descriptor:     []float64{0.1, 0.1, 0.1},
			expectedUserID: 1,
		},
		{
			name: "distance just above threshold is rejected",
			users: []models.User{
				{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}},
			},
			descriptor:    []float64{0.6, 0, 0},
			expectedError: ErrFaceNotRecognized,
		},
		{
			name: "mismatched dimensionality is skipped",
			users: []models.User{
				{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0}},
			},
			descriptor:    []float64{0, 0, 0},
			expectedError: ErrFaceNotRecognized,
		},
		{
			name: "tie resolves to lowest user id",
			users: []models.User{
				{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}},
				{ID: 2, Username: "bob", FaceDescriptor: []float64{0, 0, 0}},
			},
			descriptor:     []float64{0.1, 0, 0},
			expectedUserID: 1,
		},
		{
			name:          "empty descriptor is invalid",
			users:         nil,
			descriptor:    nil,
			expectedError: ErrInvalidDescriptor,
		},
		{
			name:          "no enrolled users",
			users:         nil,
			descriptor:    []float64{0, 0, 0},
			expectedError: ErrFaceNotRecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{users: tt.users}
			svc, _ := newTestAuthService(repo)

			resp, err := svc.LoginByFace(context.Background(), tt.descriptor)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedUserID, resp.User.ID)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestAuthService_LoginByFace_ReusesExistingToken(t *testing.T) {
	repo := &mockUserRepository{
		users: []models.User{
			{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}, Token: "existing-token"},
		},
	}
	svc, _ := newTestAuthService(repo)

	resp, err := svc.LoginByFace(context.Background(), []float64{0, 0, 0.1})

	require.NoError(t, err)
	assert.Equal(t, "existing-token", resp.Token)
	// No rotation happened
	assert.Empty(t, repo.updatedToken)
}

func TestAuthService_LoginByFace_MintsTokenWhenMissing(t *testing.T) {
	repo := &mockUserRepository{
		users: []models.User{
			{ID: 1, Username: "alice", FaceDescriptor: []float64{0, 0, 0}},
		},
	}
	svc, tokens := newTestAuthService(repo)

	resp, err := svc.LoginByFace(context.Background(), []float64{0, 0, 0.1})

	require.NoError(t, err)
	assert.Equal(t, resp.Token, repo.updatedToken)
	assert.Equal(t, 1, repo.updatedTokenUserID)

	userID, username, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, userID)
	assert.Equal(t, "alice", username)
}

func TestAuthService_SaveFaceDescriptor(t *testing.T) {
	repo := &mockUserRepository{}
	svc, tokens := newTestAuthService(repo)

	token, err := svc.SaveFaceDescriptor(context.Background(), 3, "alice", []float64{0.5, 0.5, 0.5})

	require.NoError(t, err)
	assert.Equal(t, token, repo.updatedToken)
	assert.Equal(t, 3, repo.updatedTokenUserID)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, repo.updatedDescriptor)

	userID, username, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 3, userID)
	assert.Equal(t, "alice", username)
}

func TestAuthService_SaveFaceDescriptor_EmptyDescriptor(t *testing.T) {
	repo := &mockUserRepository{}
	svc, _ := newTestAuthService(repo)

	_, err := svc.SaveFaceDescriptor(context.Background(), 3, "alice", nil)

	assert.ErrorIs(t, err, ErrInvalidDescriptor)
	assert.Empty(t, repo.updatedToken)
}

func TestAuthService_SaveFaceDescriptor_ReplacesOldDescriptor(t *testing.T) {
	oldDescriptor := []float64{0, 0, 0}
	repo := &mockUserRepository{
		users: []models.User{
			{ID: 1, Username: "alice", FaceDescriptor: oldDescriptor, Token: "existing"},
		},
	}
	svc, _ := newTestAuthService(repo)

	newDescriptor := []float64{3, 3, 3}
	_, err := svc.SaveFaceDescriptor(context.Background(), 1, "alice", newDescriptor)
	require.NoError(t, err)

	// Enrollment replaces, it does not append
	repo.users[0].FaceDescriptor = repo.updatedDescriptor

	_, err = svc.LoginByFace(context.Background(), oldDescriptor)
	assert.ErrorIs(t, err, ErrFaceNotRecognized)

	resp, err := svc.LoginByFace(context.Background(), []float64{3, 3, 3.1})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.User.ID)
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash := hashPassword(t, "Old-password1!")

	tests := []struct {
		name          string
		req           *models.ChangePasswordRequest
		user          *models.User
		expectedError error
	}{
		{
			name: "success",
			req:  &models.ChangePasswordRequest{Username: "alice", CurrentPassword: "Old-password1!", NewPassword: "New-password1!"},
			user: &models.User{ID: 1, Username: "alice", PasswordHash: hash},
		},
		{
			name:          "wrong current password",
			req:           &models.ChangePasswordRequest{Username: "alice", CurrentPassword: "Not-the-one1!", NewPassword: "New-password1!"},
			user:          &models.User{ID: 1, Username: "alice", PasswordHash: hash},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown user",
			req:           &models.ChangePasswordRequest{Username: "nobody", CurrentPassword: "Old-password1!", NewPassword: "New-password1!"},
			user:          &models.User{ID: 1, Username: "alice", PasswordHash: hash},
			expectedError: ErrUserNotFound,
		},
		{
			name:          "missing fields",
			req:           &models.ChangePasswordRequest{Username: "alice"},
			user:          &models.User{ID: 1, Username: "alice", PasswordHash: hash},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{user: tt.user}
			svc, _ := newTestAuthService(repo)

			err := svc.ChangePassword(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, repo.updatedHash)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, repo.updatedHash)

			// New password verifies against the stored hash, old one fails
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updatedHash), []byte(tt.req.NewPassword)))
			assert.Error(t, bcrypt.CompareHashAndPassword([]byte(repo.updatedHash), []byte(tt.req.CurrentPassword)))
		})
	}
}

func TestAuthService_EnsureAdminUser(t *testing.T) {
	t.Run("creates user when missing", func(t *testing.T) {
		repo := &mockUserRepository{exists: false}
		svc, _ := newTestAuthService(repo)

		err := svc.EnsureAdminUser(context.Background(), "admin", "Admin-pass1!", "admin@example.com")

		require.NoError(t, err)
		require.NotNil(t, repo.created)
		assert.Equal(t, "admin", repo.created.Username)
		assert.Equal(t, "admin@example.com", repo.created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("Admin-pass1!")))
	})

	t.Run("skips when user exists", func(t *testing.T) {
		repo := &mockUserRepository{exists: true}
		svc, _ := newTestAuthService(repo)

		err := svc.EnsureAdminUser(context.Background(), "admin", "Admin-pass1!", "")

		require.NoError(t, err)
		assert.Nil(t, repo.created)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &mockUserRepository{err: errors.New("database error")}
		svc, _ := newTestAuthService(repo)

		err := svc.EnsureAdminUser(context.Background(), "admin", "Admin-pass1!", "")

		assert.Error(t, err)
	})
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
	}{
		{name: "identical descriptors", a: []float64{0.1, 0.2, 0.3}, b: []float64{0.1, 0.2, 0.3}, expected: 0},
		{name: "unit distance", a: []float64{0, 0, 0}, b: []float64{1, 0, 0}, expected: 1},
		{name: "diagonal", a: []float64{0, 0, 0}, b: []float64{1, 1, 1}, expected: math.Sqrt(3)},
		{name: "small offsets", a: []float64{0.1, 0.1, 0.1}, b: []float64{0, 0, 0}, expected: math.Sqrt(0.03)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, euclideanDistance(tt.a, tt.b), 1e-12)
			// Symmetry
			assert.InDelta(t, euclideanDistance(tt.a, tt.b), euclideanDistance(tt.b, tt.a), 1e-12)
		})
	}
}
