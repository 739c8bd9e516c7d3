package address

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDesc = errors.New("address description is required")

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(userID int) ([]Address, error) {
	return s.repo.ListByUser(userID)
}

// GetByID resolves one of the user's addresses, used by checkout to
// snapshot the shipping destination.
func (s *Service) GetByID(userID, addressID int) (Address, error) {
	return s.repo.GetByID(userID, addressID)
}

func (s *Service) Create(userID int, name, phone, desc string) (Address, error) {
	if strings.TrimSpace(desc) == "" {
		return Address{}, ErrEmptyDesc
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Address{
		UserID:      userID,
		AddressName: name,
		Phone:       phone,
		AddressDesc: desc,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) Update(userID, addressID int, name, phone, desc string) (Address, error) {
	if strings.TrimSpace(desc) == "" {
		return Address{}, ErrEmptyDesc
	}
	return s.repo.Update(Address{
		AddressID:   addressID,
		UserID:      userID,
		AddressName: name,
		Phone:       phone,
		AddressDesc: desc,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) Delete(userID, addressID int) error {
	return s.repo.Delete(userID, addressID)
}
