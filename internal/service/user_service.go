package service

import (
	"go-sales-network/internal/model"
	"go-sales-network/internal/repository"

	"github.com/google/uuid"
)

// UserUpdateRequest carries the admin-mutable account attributes. Activity
// and the staff/superuser flags are the levers the permission rules run on.
type UserUpdateRequest struct {
	FullName    *string `json:"full_name"`
	IsActive    *bool   `json:"is_active"`
	IsStaff     *bool   `json:"is_staff"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// UserService exposes the admin actions on accounts. Route-level staff and
// superuser guards gate who can reach these.
type UserService interface {
	List() ([]model.UserResponse, error)
	Update(actor *model.User, id uuid.UUID, req *UserUpdateRequest) (*model.UserResponse, error)
	Delete(actor *model.User, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

func (s *userService) Update(actor *model.User, id uuid.UUID, req *UserUpdateRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	// Granting elevated rights is reserved for superusers.
	if req.IsStaff != nil {
		if !actor.IsSuperuser {
			return nil, ErrForbidden
		}
		user.IsStaff = *req.IsStaff
	}
	if req.IsSuperuser != nil {
		if !actor.IsSuperuser {
			return nil, ErrForbidden
		}
		user.IsSuperuser = *req.IsSuperuser
	}
	user.UpdatedBy = actor.ID.String()

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Delete(actor *model.User, id uuid.UUID) error {
	if !actor.IsSuperuser {
		return ErrForbidden
	}
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
