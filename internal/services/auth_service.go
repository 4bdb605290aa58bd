package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/arminhz/taskban/internal/utils"
	"github.com/sirupsen/logrus"
)

const minEmailLength = 10

var (
	ErrDuplicateIdentity = errors.New("email or username already registered")
	ErrInvalidEmail      = errors.New("email must be at least 10 characters long and contain '@'")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserDisabled      = errors.New("user account is disabled")
	ErrWrongPassword     = errors.New("wrong password")
)

// AuthService handles registration, credential checks, and the activation
// toggles used by the administrator CLI.
type AuthService struct {
	users   repository.UserRepository
	session repository.Flusher
	log     *logrus.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, session repository.Flusher, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
		log:     log,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Register creates a new account with a hashed password. It fails when the
// email or the username is already taken; the store is left untouched in
// that case. New accounts start activated.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)

	if len(email) < minEmailLength || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if s.users.ExistsEmail(email) || s.users.ExistsUsername(username) {
		return nil, ErrDuplicateIdentity
	}

	digest, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: digest,
		Activated:    true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.session.Flush(); err != nil {
		return nil, err
	}

	s.log.WithField("username", username).Info("user registered")
	return user, nil
}

// Login verifies credentials and returns the authenticated user. The three
// failure modes stay distinguishable for the caller: unknown username,
// disabled account (checked before the password), and wrong password. The
// interactive CLI presents the first and last identically; the log tells
// them apart.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.WithField("username", username).Warn("login attempt with unknown username")
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.Activated {
		s.log.WithField("username", username).Warn("login attempt for disabled user")
		return nil, ErrUserDisabled
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		s.log.WithField("username", username).Warn("failed login attempt")
		return nil, ErrWrongPassword
	}

	s.log.WithField("username", username).Info("user logged in")
	return user, nil
}

// UserExists reports whether a username is registered.
func (s *AuthService) UserExists(username string) bool {
	return s.users.ExistsUsername(username)
}

// ListUsers returns every registered user.
func (s *AuthService) ListUsers() []*models.User {
	return s.users.List()
}

// ActivateUser enables an account.
func (s *AuthService) ActivateUser(username string) error {
	return s.setActivated(username, true)
}

// DeactivateUser disables an account, blocking future logins.
func (s *AuthService) DeactivateUser(username string) error {
	return s.setActivated(username, false)
}

func (s *AuthService) setActivated(username string, activated bool) error {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if activated {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"username":  username,
		"activated": activated,
	}).Info("user activation changed")
	return nil
}
