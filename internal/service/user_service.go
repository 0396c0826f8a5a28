package service

import (
	"fmt"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserService interface {
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	// UpdateUser applies a partial update. Role and point changes need byAdmin.
	UpdateUser(id uuid.UUID, req *UpdateUserRequest, byAdmin bool) (*model.UserResponse, error)
	DeleteUser(id uuid.UUID) error
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=1"`
	Role        *string `json:"role" validate:"omitempty,oneof=user admin"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Age         *int    `json:"age" validate:"omitempty,gte=0"`
	Point       *int64  `json:"point"`
	Gender      *string `json:"gender"`
}

type userService struct {
	userRepo repository.UserRepository
	log      *logrus.Entry
}

func NewUserService(userRepo repository.UserRepository, log *logrus.Entry) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.WithField("component", "user"),
	}
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, storeError(err, "User")
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "User")
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest, byAdmin bool) (*model.UserResponse, error) {
	// 1. Validate request
	if err := validate(req, "Invalid user data"); err != nil {
		return nil, err
	}
	if !byAdmin && (req.Role != nil || req.Point != nil) {
		return nil, ErrForbidden
	}

	// 2. Email must stay unique
	if req.Email != nil {
		existing, _ := s.userRepo.FindByEmail(*req.Email)
		if existing != nil && existing.ID != id {
			return nil, ErrEmailExists
		}
	}

	// 3. Collect changed columns
	fields := map[string]interface{}{}
	setString(fields, "name", req.Name)
	setString(fields, "email", req.Email)
	setString(fields, "role", req.Role)
	setString(fields, "phone_number", req.PhoneNumber)
	setString(fields, "address", req.Address)
	setString(fields, "gender", req.Gender)
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Point != nil {
		fields["point"] = *req.Point
	}
	if req.Password != nil {
		var hashed model.User
		if err := hashed.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = hashed.Password
	}

	// 4. Save and reload
	user, err := s.userRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, "User")
	}

	if req.Point != nil {
		s.log.WithFields(logrus.Fields{"user_id": id, "point": *req.Point}).Warn("point balance overwritten by update")
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) DeleteUser(id uuid.UUID) error {
	return storeError(s.userRepo.Delete(id), "User")
}

func setString(fields map[string]interface{}, column string, v *string) {
	if v != nil {
		fields[column] = *v
	}
}
