package repository

import (
	"context"
	"testing"
	"time"

	"usip/internal/credential/domain"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	c := &domain.Credential{Token: "token:1", UserID: "1", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByToken(ctx, "token:1")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got == nil {
		t.Fatal("GetByToken returned nil for a known token")
	}
	if got.UserID != "1" {
		t.Errorf("UserID = %q, want %q", got.UserID, "1")
	}
}

func TestMemoryRepository_UnknownToken(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.GetByToken(context.Background(), "token:nope")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got != nil {
		t.Errorf("GetByToken = %+v, want nil; unknown tokens are not errors", got)
	}
}

func TestMemoryRepository_EmptyToken(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.GetByToken(context.Background(), "")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got != nil {
		t.Errorf("GetByToken = %+v, want nil for an empty token", got)
	}
}

func TestMemoryRepository_DuplicateCreate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	c := &domain.Credential{Token: "token:1", UserID: "1"}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, c); err == nil {
		t.Error("Create should fail for a duplicate token")
	}
}

func TestMemoryRepository_CreateValidates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Credential{UserID: "1"}); err == nil {
		t.Error("Create should fail without a token")
	}
	if err := repo.Create(ctx, &domain.Credential{Token: "token:1"}); err == nil {
		t.Error("Create should fail without a user id")
	}
}
