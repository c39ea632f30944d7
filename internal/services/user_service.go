package services

import (
	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles admin CRUD over user accounts.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a user account with a hashed password. Unlike
// self-registration, an admin may assign any role.
func (s *UserService) CreateUser(user *models.User) error {
	if existing, err := s.repo.GetByEmail(user.Email); err == nil && existing != nil {
		return apperr.Conflict("email '%s' already registered", user.Email)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err, "failed to hash password")
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	return s.repo.Create(user)
}

// UpdateUserInput carries the fields an admin may patch. Empty fields are
// left unchanged; a non-empty password is re-hashed.
type UpdateUserInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// UpdateUser applies a partial update to an existing account.
func (s *UserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err, "failed to hash password")
		}
		user.Password = string(hashed)
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user account.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
