package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
)

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*user.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*user.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *user.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *account
	r.accounts[account.Email] = &copied
	return nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*user.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[email]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*user.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	return NewAuthService(repo, "test-secret", time.Hour, bcrypt.MinCost, testLogger(t)), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	account, token, err := svc.Register(ctx, "Owner@Example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.Email != "owner@example.com" {
		t.Errorf("email not normalized: %q", account.Email)
	}
	if account.OrgID == "" || account.OrgID == account.ID {
		t.Error("account should get its own org id")
	}

	claims, err := security.ValidateJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	identity := security.GetIdentityFromClaims(claims)
	if identity.AccountID != account.ID || identity.OrgID != account.OrgID {
		t.Errorf("claims mismatch: %+v", identity)
	}

	if _, _, err := svc.Login(ctx, "owner@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2"); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Login(ctx, "owner@example.com", "wrong-password")
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownAccountIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1234")
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Register(ctx, "OWNER@example.com", "hunter2hunter2"); err == nil {
		t.Fatal("duplicate registration should fail")
	}
}
