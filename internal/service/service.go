package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvoronin/expense-service/internal/config"
	"github.com/nvoronin/expense-service/internal/models"
)

// Service handles business logic
type Service struct {
	users        UserStore
	categories   CategoryStore
	transactions TransactionStore
	log          *logrus.Logger
	config       *config.Config

	// now is the injected clock; tests replace it with a fixed instant.
	now func() time.Time
}

// NewService initializes a new service
func NewService(users UserStore, categories CategoryStore, transactions TransactionStore, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		users:        users,
		categories:   categories,
		transactions: transactions,
		log:          log,
		config:       cfg,
		now:          time.Now,
	}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email              string
	Password           string
	Name               string
	Currency           string
	MonthlyBudgetCents int64
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.users.FindUserByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	if in.MonthlyBudgetCents < 0 {
		return nil, models.ErrInvalidAmount
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:              in.Email,
		PasswordHash:       string(hashedPassword),
		Name:               in.Name,
		Currency:           in.Currency,
		MonthlyBudgetCents: in.MonthlyBudgetCents,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// GetProfile returns the user's profile
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.FindUserByID(ctx, userID)
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	Name               string
	Currency           string
	MonthlyBudgetCents int64
}

// UpdateProfile replaces the user's mutable profile fields
func (s *Service) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.MonthlyBudgetCents < 0 {
		return nil, models.ErrInvalidAmount
	}

	user.Name = in.Name
	user.Currency = in.Currency
	user.MonthlyBudgetCents = in.MonthlyBudgetCents
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UsersWithBudget lists users with a non-zero monthly budget. Used by
// the budget watcher.
func (s *Service) UsersWithBudget(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsersWithBudget(ctx)
}
