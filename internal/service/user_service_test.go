package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartdna/internal/domain"
	"smartdna/internal/repository"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) MarkAssessmentCompleted(_ context.Context, userID string, at time.Time, hubs map[domain.Hub]float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.AssessmentCompleted = true
	u.AssessmentCompletedAt = &at
	u.HubAlignments = hubs
	f.users[userID] = u
	return nil
}

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(nil, repo, "", "")

	user, err := svc.CreateUser(context.Background(), CreateUserInput{Email: "  Jane@Example.COM ", FullName: " Jane ", CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == "" || user.Email != "jane@example.com" || user.FullName != "Jane" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.AssessmentCompleted {
		t.Fatalf("new users start without assessment")
	}
	if _, ok := repo.users[user.ID]; !ok {
		t.Fatalf("user was not stored")
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	svc := NewUserService(nil, newFakeUserRepo(), "", "")
	for _, email := range []string{"", "not-an-email", "a@"} {
		if _, err := svc.CreateUser(context.Background(), CreateUserInput{Email: email}); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("%q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestResolveUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["u1"] = domain.User{ID: "u1", Email: "a@b.com"}
	svc := NewUserService(nil, repo, "", "")

	u, err := svc.Resolve(context.Background(), "u1", false)
	if err != nil || u.ID != "u1" {
		t.Fatalf("unexpected resolve: %+v %v", u, err)
	}
	if _, err := svc.Resolve(context.Background(), "missing", false); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	admin, err := svc.Resolve(context.Background(), SuperAdminUserID, true)
	if err != nil || !admin.SuperAdmin || !admin.AssessmentCompleted {
		t.Fatalf("unexpected superadmin: %+v %v", admin, err)
	}
	for _, h := range domain.Hubs {
		if admin.HubAlignments[h] != 99 {
			t.Fatalf("superadmin should score 99 on %s", h)
		}
	}
}

func TestVerifySuperAdminKeyPlain(t *testing.T) {
	svc := NewUserService(nil, newFakeUserRepo(), "open-sesame", "")
	if err := svc.VerifySuperAdminKey("open-sesame"); err != nil {
		t.Fatalf("expected valid key, got %v", err)
	}
	if err := svc.VerifySuperAdminKey("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := NewUserService(nil, nil, "", "").VerifySuperAdminKey("anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("no key configured must reject, got %v", err)
	}
}

func TestVerifySuperAdminKeyHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := NewUserService(nil, nil, "plain-key", string(hash))
	if err := svc.VerifySuperAdminKey("hashed-key"); err != nil {
		t.Fatalf("expected valid key, got %v", err)
	}
	if err := svc.VerifySuperAdminKey("plain-key"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("hash takes precedence over the plain key, got %v", err)
	}
}
