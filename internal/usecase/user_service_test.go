package usecase

import (
	"context"
	"errors"
	"testing"

	"pnl_tracker/internal/domain"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	store := newFakeStore()
	users, err := NewUserService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if _, err := users.CreateUser(ctx, " ", "x", false); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	user, err := users.CreateUser(ctx, "ada@example.com", "Ada", true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(user.SessionToken) != 64 {
		t.Fatalf("unexpected token %q", user.SessionToken)
	}

	got, err := users.Authenticate(ctx, user.SessionToken)
	if err != nil || got.UserID != user.UserID {
		t.Fatalf("authenticate: %+v %v", got, err)
	}
	if _, err := users.Authenticate(ctx, "wrong"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAPIKeyServiceValidation(t *testing.T) {
	keys, _ := NewAPIKeyService(newFakeStore())
	ctx := context.Background()

	if _, err := keys.AddAPIKey(ctx, "u1", "kraken", "", "s"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	key, err := keys.AddAPIKey(ctx, "u1", " Kraken ", "abcd1234wxyz", "s")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if key.ExchangeName != "kraken" || key.Preview() != "abcd...wxyz" {
		t.Fatalf("unexpected key %+v preview %s", key, key.Preview())
	}
	exists, _ := keys.APIKeyExists(ctx, "u1", "kraken")
	if !exists {
		t.Fatalf("expected key to exist")
	}
	if err := keys.DeleteAPIKey(ctx, "u1", "kraken"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
