package service

import (
	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	CreatePayment(req *CreatePaymentRequest) (*model.Payment, error)
	GetAllPayments(userID *uuid.UUID) ([]model.Payment, error)
	GetPaymentByID(id uuid.UUID) (*model.Payment, error)
	UpdateStatus(id uuid.UUID, req *UpdatePaymentStatusRequest) (*model.Payment, error)
	DeletePayment(id uuid.UUID) error
}

type CreatePaymentRequest struct {
	UserID     uuid.UUID `json:"userId" validate:"uuid_required"`
	TokoID     uuid.UUID `json:"tokoId" validate:"uuid_required"`
	BarangID   uuid.UUID `json:"barangId" validate:"uuid_required"`
	TotalPrice *int64    `json:"totalPrice" validate:"required,gte=0"`
}

// UpdatePaymentStatusRequest only carries the target status; the debit always
// uses the stored total price.
type UpdatePaymentStatusRequest struct {
	Status model.TransactionStatus `json:"status"`
}

type paymentService struct {
	repo       repository.PaymentRepository
	userRepo   repository.UserRepository
	barangRepo repository.BarangRepository
	notifier   Notifier
	log        *logrus.Entry
}

func NewPaymentService(
	repo repository.PaymentRepository,
	userRepo repository.UserRepository,
	barangRepo repository.BarangRepository,
	notifier Notifier,
	log *logrus.Entry,
) PaymentService {
	return &paymentService{
		repo:       repo,
		userRepo:   userRepo,
		barangRepo: barangRepo,
		notifier:   notifier,
		log:        log.WithField("component", "payment"),
	}
}

func (s *paymentService) CreatePayment(req *CreatePaymentRequest) (*model.Payment, error) {
	if err := validate(req, "userId, tokoId, barangId, dan totalPrice diperlukan."); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, storeError(err, "User")
	}
	barang, err := s.barangRepo.FindByID(req.BarangID)
	if err != nil {
		return nil, storeError(err, "Barang")
	}
	if barang.TokoID != req.TokoID {
		return nil, &ValidationError{Message: "Barang tidak dijual di toko tersebut."}
	}

	payment := &model.Payment{
		UserID:     req.UserID,
		TokoID:     req.TokoID,
		BarangID:   req.BarangID,
		TotalPrice: *req.TotalPrice,
		Status:     model.StatusPending,
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, storeError(err, "Payment")
	}

	s.notifier.Notify(EventPaymentCreated, payment.UserID.String(), payment)
	return payment, nil
}

func (s *paymentService) GetAllPayments(userID *uuid.UUID) ([]model.Payment, error) {
	payments, err := s.repo.FindAll(userID)
	return payments, storeError(err, "Payment")
}

func (s *paymentService) GetPaymentByID(id uuid.UUID) (*model.Payment, error) {
	payment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Payment")
	}
	return payment, nil
}

func (s *paymentService) UpdateStatus(id uuid.UUID, req *UpdatePaymentStatusRequest) (*model.Payment, error) {
	var debited int64

	updated, err := s.repo.Transition(id, func(current *model.Payment) (int64, error) {
		if err := checkTransition(current.Status, req.Status); err != nil {
			return 0, err
		}
		current.Status = req.Status
		delta := paymentDelta(req.Status, current.TotalPrice)
		debited = -delta
		return delta, nil
	})
	if err != nil {
		return nil, storeError(err, "Payment")
	}

	s.log.WithFields(logrus.Fields{
		"payment_id": updated.ID,
		"user_id":    updated.UserID,
		"status":     updated.Status,
		"debited":    debited,
	}).Info("payment status updated")
	s.notifier.Notify(EventPaymentStatus, updated.UserID.String(), updated)

	return updated, nil
}

func (s *paymentService) DeletePayment(id uuid.UUID) error {
	return storeError(s.repo.Delete(id), "Payment")
}
