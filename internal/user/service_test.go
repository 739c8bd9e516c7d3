package user

import "testing"

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	created, err := service.Register(User{Email: "a@b.com", Password: "secret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Password == "secret" {
		t.Fatal("password must be hashed before storage")
	}
	if created.Role != RoleCustomer {
		t.Fatalf("expected customer role, got %q", created.Role)
	}

	if _, err := service.Register(User{Email: "a@b.com", Password: "other"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	if _, err := service.Authenticate("a@b.com", "secret"); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if _, err := service.Authenticate("a@b.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Authenticate("nobody@b.com", "secret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	repo := NewInMemoryRepository([]User{{ID: 7, Email: "a@b.com", FirstName: "Ann", Phone: "111"}})
	service := NewService(repo)

	updated, err := service.UpdateProfile(7, User{Phone: "222"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Ann" {
		t.Fatalf("untouched field must survive, got %q", updated.FirstName)
	}
	if updated.Phone != "222" {
		t.Fatalf("expected patched phone, got %q", updated.Phone)
	}
}
