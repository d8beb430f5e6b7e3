package crickboost

import (
	"context"
	"errors"
	"testing"
)

func TestSignupAndLogin(t *testing.T) {
	engine := testEngine(t)
	ctx := context.Background()

	user, err := engine.Signup(ctx, SignupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Signup returned user without ID")
	}
	if user.Email != "asha@example.com" || user.Name != "Asha" {
		t.Fatalf("Signup returned wrong user: %+v", user)
	}

	got, err := engine.Login(ctx, LoginInput{
		Email:    "asha@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("Login returned user %q, want %q", got.ID, user.ID)
	}
}

func TestSignupValidation(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Signup(context.Background(), SignupInput{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Signup error = %v, want *ValidationError", err)
	}
	if verr.Message != "Invalid fields. Failed to sign up." {
		t.Fatalf("Message = %q", verr.Message)
	}
	for _, field := range []string{"name", "email", "password"} {
		if verr.Fields[field] == "" {
			t.Errorf("no message for field %q", field)
		}
	}
}

func TestSignupDuplicate(t *testing.T) {
	engine := testEngine(t)
	ctx := context.Background()

	in := SignupInput{Name: "Asha", Email: "asha@example.com", Password: "password123"}
	if _, err := engine.Signup(ctx, in); err != nil {
		t.Fatalf("first Signup: %v", err)
	}

	in.Name = "Impostor"
	if _, err := engine.Signup(ctx, in); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("second Signup error = %v, want ErrDuplicateUser", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	engine := testEngine(t)
	ctx := context.Background()

	_, err := engine.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, err = engine.Login(ctx, LoginInput{Email: "asha@example.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginValidation(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Login(context.Background(), LoginInput{Email: "bad", Password: ""})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Login error = %v, want *ValidationError", err)
	}
	if verr.Fields["password"] != "Password is required" {
		t.Fatalf("password message = %q", verr.Fields["password"])
	}
}

func TestUserByEmail(t *testing.T) {
	engine := testEngine(t)
	ctx := context.Background()

	if _, err := engine.Signup(ctx, SignupInput{Name: "Asha", Email: "asha@example.com", Password: "password123"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	user, err := engine.UserByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if user == nil || user.Name != "Asha" {
		t.Fatalf("UserByEmail = %+v", user)
	}

	miss, err := engine.UserByEmail(ctx, "other@example.com")
	if err != nil {
		t.Fatalf("UserByEmail miss: %v", err)
	}
	if miss != nil {
		t.Fatalf("UserByEmail miss = %+v, want nil", miss)
	}
}

func TestBuilderRequiresStore(t *testing.T) {
	if _, err := New().Build(); !errors.Is(err, ErrEngineNotReady) {
		t.Fatalf("Build error = %v, want ErrEngineNotReady", err)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	store, err := NewMemoryStore(testHasher(t))
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}

	b := New().WithStore(store)
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("second Build succeeded, want error")
	}
}
