package workforce

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"fleetops/internal/domain/auth"
	cryptoutil "fleetops/internal/platform/crypto"
)

type Service struct {
	store           StoreAPI
	defaultPassword string
	crypto          *cryptoutil.Service
}

func NewService(store StoreAPI, defaultPassword string, crypto *cryptoutil.Service) *Service {
	return &Service{store: store, defaultPassword: defaultPassword, crypto: crypto}
}

// sealField encrypts a sensitive value for storage. Without a configured
// key the value is stored as-is.
func (s *Service) sealField(value string) (string, error) {
	if s.crypto == nil || !s.crypto.Configured() || value == "" {
		return value, nil
	}
	sealed, err := s.crypto.EncryptString(value)
	if err != nil {
		return "", err
	}
	return "enc:" + base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Service) openField(value string) (string, error) {
	if s.crypto == nil || !strings.HasPrefix(value, "enc:") {
		return value, nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, "enc:"))
	if err != nil {
		return "", err
	}
	return s.crypto.DecryptString(raw)
}

func (s *Service) sealSensitive(employee *Employee) error {
	var err error
	if employee.BankAccount, err = s.sealField(employee.BankAccount); err != nil {
		return err
	}
	if employee.SocialSecurity, err = s.sealField(employee.SocialSecurity); err != nil {
		return err
	}
	return nil
}

func (s *Service) openSensitive(employee *Employee) error {
	var err error
	if employee.BankAccount, err = s.openField(employee.BankAccount); err != nil {
		return err
	}
	if employee.SocialSecurity, err = s.openField(employee.SocialSecurity); err != nil {
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].PasswordHash = ""
		if err := s.openSensitive(&employees[i]); err != nil {
			return nil, err
		}
	}
	return employees, nil
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	employee, err := s.store.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	employee.PasswordHash = ""
	if err := s.openSensitive(&employee); err != nil {
		return Employee{}, err
	}
	return employee, nil
}

// Save creates or updates an employee. An empty password on update keeps the
// stored hash; a new employee without a password gets the configured default.
func (s *Service) Save(ctx context.Context, employee Employee, plainPassword string) (Employee, error) {
	if err := s.sealSensitive(&employee); err != nil {
		return Employee{}, err
	}
	if employee.ID == "" {
		employee.ID = uuid.NewString()
		if strings.TrimSpace(plainPassword) == "" {
			plainPassword = s.defaultPassword
		}
		hash, err := auth.HashPassword(plainPassword)
		if err != nil {
			return Employee{}, err
		}
		employee.PasswordHash = hash
		if err := s.store.Insert(ctx, employee); err != nil {
			return Employee{}, err
		}
		employee.PasswordHash = ""
		if err := s.openSensitive(&employee); err != nil {
			return Employee{}, err
		}
		return employee, nil
	}

	if strings.TrimSpace(plainPassword) != "" {
		hash, err := auth.HashPassword(plainPassword)
		if err != nil {
			return Employee{}, err
		}
		employee.PasswordHash = hash
	} else {
		existing, err := s.store.Get(ctx, employee.ID)
		if err != nil {
			return Employee{}, err
		}
		employee.PasswordHash = existing.PasswordHash
	}

	found, err := s.store.Update(ctx, employee)
	if err != nil {
		return Employee{}, err
	}
	if !found {
		return Employee{}, ErrNotFound
	}
	employee.PasswordHash = ""
	if err := s.openSensitive(&employee); err != nil {
		return Employee{}, err
	}
	return employee, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
