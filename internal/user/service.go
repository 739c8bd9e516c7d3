package user

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u.Password = string(hashed)
	u.Role = RoleCustomer
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

// UpdateProfile applies the non-empty fields of patch to the stored
// user. Email, password and role are not editable through the profile.
func (s *Service) UpdateProfile(id int, patch User) (User, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if patch.FirstName != "" {
		current.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		current.LastName = patch.LastName
	}
	if patch.Phone != "" {
		current.Phone = patch.Phone
	}
	if patch.MainAddressID != nil {
		current.MainAddressID = patch.MainAddressID
	}
	if patch.UpdatedAt != "" {
		current.UpdatedAt = patch.UpdatedAt
	}

	return s.repo.Update(id, current)
}
