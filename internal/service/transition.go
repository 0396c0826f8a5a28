package service

import (
	"fmt"
	"math"

	"go-banksampah/internal/model"

	"github.com/shopspring/decimal"
)

var maxPoints = decimal.NewFromInt(math.MaxInt64)

// checkTransition decides whether a record in current may move to target.
// Cancelled and success are both terminal.
func checkTransition(current, target model.TransactionStatus) error {
	switch current {
	case model.StatusCancelled:
		return ErrAlreadyCancelled
	case model.StatusSuccess:
		return ErrAlreadySucceeded
	}

	if target == "" {
		return ErrStatusRequired
	}
	if !target.Valid() {
		return &ValidationError{
			Message: "Invalid status value.",
			Details: fmt.Sprintf("status must be one of pending, success, cancelled; got %q", target),
		}
	}
	return nil
}

// parseEarned accepts only a positive whole number of points.
func parseEarned(earned *decimal.Decimal) (int64, error) {
	if earned == nil || !earned.IsInteger() || !earned.IsPositive() || earned.GreaterThan(maxPoints) {
		return 0, ErrEarnedInvalid
	}
	return earned.IntPart(), nil
}

// exchangeDelta is the credit applied to the owner when an exchange reaches target.
func exchangeDelta(target model.TransactionStatus, earned int64) int64 {
	if target == model.StatusSuccess {
		return earned
	}
	return 0
}

// paymentDelta is the debit applied to the buyer when a payment reaches target.
func paymentDelta(target model.TransactionStatus, totalPrice int64) int64 {
	if target == model.StatusSuccess {
		return -totalPrice
	}
	return 0
}
