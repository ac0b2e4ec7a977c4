package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nvoronin/expense-service/internal/models"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	in := RegisterInput{
		Email:              "anna@example.com",
		Password:           "s3cret",
		Name:               "Anna",
		Currency:           "EUR",
		MonthlyBudgetCents: 150000,
	}
	user, err := svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == in.Password || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	if _, err := svc.Register(ctx, in); !errors.Is(err, models.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	in.Email = "bad@example.com"
	in.MonthlyBudgetCents = -1
	if _, err := svc.Register(ctx, in); !errors.Is(err, models.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative budget, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	user, err := svc.Register(ctx, RegisterInput{Email: "anna@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "anna@example.com", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "s3cret"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	tokenString, err := svc.Login(ctx, "anna@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return testNow }))
	if err != nil || !token.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.Subject != strconv.FormatInt(user.ID, 10) {
		t.Fatalf("expected subject %d, got %s", user.ID, claims.Subject)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(t)

	user, err := svc.Register(ctx, RegisterInput{Email: "anna@example.com", Password: "s3cret", Currency: "EUR"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		Name:               "Anna K",
		Currency:           "USD",
		MonthlyBudgetCents: 200000,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Anna K" || updated.Currency != "USD" || updated.MonthlyBudgetCents != 200000 {
		t.Fatalf("profile not updated: %+v", updated)
	}

	got, err := svc.GetProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Name != "Anna K" {
		t.Fatalf("update not persisted: %+v", got)
	}

	if _, err := svc.GetProfile(ctx, 999); !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
