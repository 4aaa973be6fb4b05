// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/utils"
)

type UserService struct {
	users *repository.UserRepository
}

// UpdateProfileRequest covers every mutable profile field. The id and the
// join date are never changed by an update.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,username"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,strong_password"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=256"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=64"`
	State    *string `json:"state,omitempty" validate:"omitempty,max=64"`
	ZipCode  *string `json:"zip_code,omitempty" validate:"omitempty,max=16"`
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(id int) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("store error: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers() []*models.User {
	return s.users.GetAll()
}

func (s *UserService) UpdateProfile(id int, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("store error: %w", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.users.GetByEmail(*req.Email); err == nil && existing.ID != id {
			return nil, errors.New("user with this email already exists")
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.ZipCode != nil {
		user.ZipCode = *req.ZipCode
	}

	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// SetProfilePicture stores the uploaded avatar's URL on the user record.
func (s *UserService) SetProfilePicture(id int, url string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("store error: %w", err)
	}

	user.ProfilePicture = url
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}
