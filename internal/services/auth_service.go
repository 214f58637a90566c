package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"farm_manager/internal/models"
	"farm_manager/internal/redis"
	"farm_manager/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// SessionStore persists login sessions. *redis.Client implements it.
type SessionStore interface {
	SetSession(token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(token string) (*redis.SessionData, error)
	DeleteSession(token string) error
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    *string
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(identifier, password string) (*LoginResult, error)
	Logout(token string) error
	Authenticate(token string) (*redis.SessionData, error)
	Me(session *redis.SessionData) (*models.User, error)
	ChangePassword(session *redis.SessionData, currentPassword, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	sessions SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, ttl time.Duration) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions, ttl: ttl, now: time.Now}
}

func (s *authService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, models.NewValidationError("email", "is not a valid email address")
	}
	if err := requireText("full_name", input.FullName); err != nil {
		return nil, err
	}
	if len(input.Password) < minPasswordLength {
		return nil, models.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	var phone *string
	if input.Phone != nil && strings.TrimSpace(*input.Phone) != "" {
		p := strings.TrimSpace(*input.Phone)
		if !isPhoneNumber(p) {
			return nil, models.NewValidationError("phone", "must be exactly 10 digits")
		}
		phone = &p
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, models.ErrDuplicate)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if phone != nil {
		if _, err := s.userRepo.GetByPhone(*phone); err == nil {
			return nil, fmt.Errorf("phone %s: %w", *phone, models.ErrDuplicate)
		} else if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Phone:        phone,
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts an email address or a phone number as identifier.
func (s *authService) Login(identifier, password string) (*LoginResult, error) {
	identifier = strings.TrimSpace(identifier)

	var user *models.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.GetByEmail(strings.ToLower(identifier))
	} else {
		user, err = s.userRepo.GetByPhone(identifier)
	}
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if s.sessions == nil {
		return nil, errors.New("session store is not configured")
	}
	now := s.now()
	session := &redis.SessionData{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.SetSession(session.Token, session, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &LoginResult{Token: session.Token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) Authenticate(token string) (*redis.SessionData, error) {
	if token == "" {
		return nil, models.ErrUnauthenticated
	}
	return s.sessions.GetSession(token)
}

func (s *authService) Me(session *redis.SessionData) (*models.User, error) {
	user, err := s.userRepo.GetByID(session.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrUnauthenticated
	}
	return user, err
}

func (s *authService) ChangePassword(session *redis.SessionData, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return models.NewValidationError("new_password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	user, err := s.Me(session)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return models.NewValidationError("current_password", "is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(user.ID, string(hashedPassword))
}

func isPhoneNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
