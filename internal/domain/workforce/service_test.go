package workforce

import (
	"context"
	"strings"
	"testing"

	"fleetops/internal/domain/auth"
	cryptoutil "fleetops/internal/platform/crypto"
)

type fakeStore struct {
	employees map[string]Employee
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: map[string]Employee{}}
}

func (f *fakeStore) List(_ context.Context) ([]Employee, error) {
	var out []Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return e, nil
}

func (f *fakeStore) Insert(_ context.Context, e Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeStore) Update(_ context.Context, e Employee) (bool, error) {
	if _, ok := f.employees[e.ID]; !ok {
		return false, nil
	}
	f.employees[e.ID] = e
	return true, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) EmployeeSnapshot(ctx context.Context) ([]Employee, error) {
	return f.List(ctx)
}

func TestSaveNewEmployeeDefaultsPassword(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, "changeme123", nil)

	saved, err := service.Save(context.Background(), Employee{FirstName: "Ana", LastName: "Garcia"}, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated id")
	}
	if saved.PasswordHash != "" {
		t.Fatal("password hash must not leak from Save")
	}

	stored := store.employees[saved.ID]
	if stored.PasswordHash == "" {
		t.Fatal("expected stored password hash")
	}
	if err := auth.CheckPassword(stored.PasswordHash, "changeme123"); err != nil {
		t.Fatal("expected default password to verify")
	}
}

func TestSaveUpdateKeepsStoredHash(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, "changeme123", nil)

	saved, err := service.Save(context.Background(), Employee{FirstName: "Ana", LastName: "Garcia"}, "original-pw")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	originalHash := store.employees[saved.ID].PasswordHash

	saved.Phone = "600123123"
	if _, err := service.Save(context.Background(), saved, ""); err != nil {
		t.Fatalf("update: %v", err)
	}
	if store.employees[saved.ID].PasswordHash != originalHash {
		t.Fatal("expected update without password to keep the stored hash")
	}
	if store.employees[saved.ID].Phone != "600123123" {
		t.Fatal("expected phone to be updated")
	}
}

func TestSaveUpdateMissingEmployee(t *testing.T) {
	service := NewService(newFakeStore(), "changeme123", nil)
	_, err := service.Save(context.Background(), Employee{ID: "ghost", FirstName: "A", LastName: "B"}, "")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSensitiveFieldsEncryptedAtRest(t *testing.T) {
	crypto, err := cryptoutil.New("00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")
	if err != nil {
		t.Fatalf("crypto: %v", err)
	}
	store := newFakeStore()
	service := NewService(store, "changeme123", crypto)

	saved, err := service.Save(context.Background(), Employee{
		FirstName:   "Ana",
		LastName:    "Garcia",
		BankAccount: "ES91 2100 0418 4502 0005 1332",
	}, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.BankAccount != "ES91 2100 0418 4502 0005 1332" {
		t.Fatalf("expected plaintext in response, got %q", saved.BankAccount)
	}

	stored := store.employees[saved.ID]
	if !strings.HasPrefix(stored.BankAccount, "enc:") {
		t.Fatalf("expected encrypted value at rest, got %q", stored.BankAccount)
	}

	loaded, err := service.Get(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.BankAccount != "ES91 2100 0418 4502 0005 1332" {
		t.Fatalf("expected decrypted value on read, got %q", loaded.BankAccount)
	}
}
