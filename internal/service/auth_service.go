package service

import (
	"errors"
	"fmt"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"
	"go-banksampah/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthService interface {
	// Signup registers an account. Only an admin caller may pick the role or
	// seed a starting point balance.
	Signup(req *SignupRequest, byAdmin bool) (*model.User, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.UserResponse, error)
	Me(userID uuid.UUID) (*model.UserResponse, error)
}

type SignupRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Age         *int   `json:"age" validate:"omitempty,gte=0"`
	Point       int64  `json:"point" validate:"gte=0"`
	Gender      string `json:"gender"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Service
	notifier Notifier
	log      *logrus.Entry
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Service, notifier Notifier, log *logrus.Entry) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
		log:      log.WithField("component", "auth"),
	}
}

func (s *authService) Signup(req *SignupRequest, byAdmin bool) (*model.User, error) {
	// 1. Validate request
	if err := validate(req, "Name, email, and password are required."); err != nil {
		return nil, err
	}
	if !byAdmin && ((req.Role != "" && req.Role != model.RoleUser) || req.Point != 0) {
		return nil, ErrForbidden
	}

	// 2. Check if email already exists
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	// 3. Build user, role and point fall back to their defaults
	user := &model.User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Age:         req.Age,
		Point:       req.Point,
		Gender:      req.Gender,
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Save to database
	if err := s.userRepo.Create(user); err != nil {
		return nil, storeError(err, "User")
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	s.notifier.Notify(EventUserRegistered, user.ID.String(), user.ToResponse())
	return user, nil
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := validate(req, "Email and password are required."); err != nil {
		return nil, err
	}

	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, storeError(err, "User")
	}

	// 2. Verify password
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Issue token
	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.UserResponse, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return s.Me(claims.UserID)
}

func (s *authService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// token outlived its user
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, storeError(err, "User")
	}
	resp := user.ToResponse()
	return &resp, nil
}
