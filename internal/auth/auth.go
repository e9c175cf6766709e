//go:generate mockgen -source ./auth.go -destination=./mocks/auth.go -package=mock_auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *model.User) error
}

const bootstrapUserID = "demo-admin"

// Service authenticates admins and onboards new ones. The configured
// bootstrap account is checked before any database access, which keeps a
// login path open while the database is down.
type Service struct {
	users    UserRepository
	sessions *SessionManager

	bootstrapEmail    string
	bootstrapPassword string

	logger *zap.Logger
}

func NewService(users UserRepository, sessions *SessionManager, bootstrapEmail, bootstrapPassword string, logger *zap.Logger) *Service {
	return &Service{
		users:             users,
		sessions:          sessions,
		bootstrapEmail:    strings.ToLower(strings.TrimSpace(bootstrapEmail)),
		bootstrapPassword: bootstrapPassword,
		logger:            logger,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == s.bootstrapEmail && password == s.bootstrapPassword {
		return s.sessions.Create(bootstrapUserID, "Demo Admin", s.bootstrapEmail, model.RoleAdmin), nil
	}

	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrObjectNotFound) {
			s.logger.Warn("user lookup failed during login", zap.Error(err))
		}
		return Session{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.sessions.Create(user.ID, user.Name, user.Email, user.Role), nil
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

// Authenticate resolves a bearer token to its session.
func (s *Service) Authenticate(token string) (Session, bool) {
	return s.sessions.Get(token)
}

// Onboard creates a new admin account. Caller is responsible for checking
// the requesting session's role.
func (s *Service) Onboard(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", model.ErrValidation)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to onboard admin: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to onboard admin: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      model.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to onboard admin: %w", err)
	}

	user.Password = ""
	return user, nil
}
