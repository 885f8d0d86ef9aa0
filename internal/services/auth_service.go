package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/soumyadiya/portfolio-backend/internal/auth"
	"github.com/soumyadiya/portfolio-backend/internal/models"
	"github.com/soumyadiya/portfolio-backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// faceMatchThreshold is the maximum Euclidean distance at which a query
// descriptor is accepted as a match for an enrolled descriptor.
const faceMatchThreshold = 0.6

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrFaceNotRecognized is returned when no enrolled descriptor is within
	// the acceptance threshold of the query.
	ErrFaceNotRecognized = errors.New("face not recognized")
	// ErrInvalidDescriptor is returned for a missing or empty descriptor.
	ErrInvalidDescriptor = errors.New("descriptor is required")
	// ErrUserNotFound is returned by password change when the username is unknown.
	ErrUserNotFound = errors.New("user not found")
)

// tokenPolicy controls whether a login path mints a fresh session token or
// reuses the one already stored on the user record.
type tokenPolicy int

const (
	// rotateAlways mints and persists a fresh token on every call.
	rotateAlways tokenPolicy = iota
	// rotateIfMissing reuses the stored token and only mints when none exists.
	rotateIfMissing
)

// UserRepository is the interface that wraps methods for user data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by exact username match.
	//
	// Returns repositories.ErrNotFound when no user has that username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method ListWithDescriptors retrieves all users that have an enrolled
	// face descriptor, ordered by ascending id.
	ListWithDescriptors(ctx context.Context) ([]models.User, error)
	// Method UpdateToken persists a new session token for a user.
	UpdateToken(ctx context.Context, userID int, token string) error
	// Method UpdateFaceDescriptor replaces a user's descriptor and token.
	UpdateFaceDescriptor(ctx context.Context, userID int, descriptor []float64, token string) error
	// Method UpdatePasswordHash replaces a user's password hash.
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
	// Method ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// authService implements authentication business logic
type authService struct {
	userRepo UserRepository
	tokens   *auth.TokenGenerator
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login authenticates a user by username and password.
// Password login always rotates the session token.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		// Same outward error as a wrong password
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessionToken(ctx, user, rotateAlways)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user.Info()}, nil
}

// LoginByFace authenticates a user by face descriptor. Among enrolled
// descriptors within the acceptance threshold the closest one wins; ties
// resolve to the lowest user id because candidates are scanned in ascending
// id order with a strict less-than comparison.
//
// Unlike password login, a matched user's stored token is reused; a new one
// is only minted when the user has none yet.
func (s *authService) LoginByFace(ctx context.Context, descriptor []float64) (*models.AuthResponse, error) {
	if len(descriptor) == 0 {
		return nil, ErrInvalidDescriptor
	}

	candidates, err := s.userRepo.ListWithDescriptors(ctx)
	if err != nil {
		return nil, err
	}

	var matched *models.User
	lowestDistance := math.MaxFloat64

	for i := range candidates {
		candidate := &candidates[i]
		// A descriptor of a different dimensionality can never be a
		// meaningful match, skip it.
		if len(candidate.FaceDescriptor) != len(descriptor) {
			continue
		}

		distance := euclideanDistance(descriptor, candidate.FaceDescriptor)
		if distance < faceMatchThreshold && distance < lowestDistance {
			matched = candidate
			lowestDistance = distance
		}
	}

	if matched == nil {
		return nil, ErrFaceNotRecognized
	}

	s.logger.Debug("face matched",
		zap.Int("userId", matched.ID),
		zap.Float64("distance", lowestDistance),
	)

	token, err := s.sessionToken(ctx, matched, rotateIfMissing)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: matched.Info()}, nil
}

// SaveFaceDescriptor replaces the caller's enrolled face descriptor and
// always mints a fresh session token, persisted together with the
// descriptor in a single statement.
func (s *authService) SaveFaceDescriptor(ctx context.Context, userID int, username string, descriptor []float64) (string, error) {
	if len(descriptor) == 0 {
		return "", ErrInvalidDescriptor
	}

	token, err := s.tokens.Generate(userID, username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateFaceDescriptor(ctx, userID, descriptor, token); err != nil {
		return "", err
	}

	return token, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
// The existing session token is left untouched.
func (s *authService) ChangePassword(ctx context.Context, req *models.ChangePasswordRequest) error {
	if req.Username == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.userRepo.UpdatePasswordHash(ctx, req.Username, string(newHash))
}

// EnsureAdminUser creates the bootstrap admin account if no user with that
// username exists yet
func (s *authService) EnsureAdminUser(ctx context.Context, username, password, email string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("created bootstrap admin user", zap.String("username", username))
	return nil
}

// sessionToken returns the session token for an authenticated user according
// to the given rotation policy, persisting any newly minted token.
func (s *authService) sessionToken(ctx context.Context, user *models.User, policy tokenPolicy) (string, error) {
	if policy == rotateIfMissing && user.Token != "" {
		return user.Token, nil
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateToken(ctx, user.ID, token); err != nil {
		return "", err
	}

	return token, nil
}

// euclideanDistance computes the Euclidean distance between two descriptors
// of equal length
func euclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
