package service

import (
	"errors"
	"fmt"

	"go-banksampah/internal/repository"
	"go-banksampah/pkg/validator"

	"gorm.io/gorm"
)

// ValidationError is a client mistake: missing or malformed input, or a forbidden transition.
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// NotFoundError reports a lookup miss for the named resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")

	ErrEmailExists      = &ValidationError{Message: "Email already registered."}
	ErrStatusRequired   = &ValidationError{Message: "Status is required."}
	ErrAlreadyCancelled = &ValidationError{Message: "Status sudah cancelled, tidak bisa diubah."}
	ErrAlreadySucceeded = &ValidationError{Message: "Status sudah success, tidak bisa diubah."}
	ErrEarnedInvalid    = &ValidationError{Message: "Earned is invalid", Details: "earned must be a positive whole number when status is success"}
)

// validate runs struct validation and converts failures into a ValidationError.
func validate(req interface{}, message string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Message: message, Details: validator.Describe(errs)}
	}
	return nil
}

// storeError maps repository errors onto the service taxonomy.
func storeError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Resource: resource}
	case errors.Is(err, repository.ErrOwnerNotFound):
		return &NotFoundError{Resource: "User"}
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("%s store: %w", resource, err)
}
