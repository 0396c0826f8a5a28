package service

import (
	"fmt"
	"strings"
	"time"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type PenukaranService interface {
	CreatePenukaran(req *CreatePenukaranRequest) (*model.Penukaran, error)
	ListPenukaran(q *PenukaranQuery) ([]model.Penukaran, error)
	GetPenukaranByID(id uuid.UUID) (*model.Penukaran, error)
	UpdateStatus(id uuid.UUID, req *UpdatePenukaranStatusRequest) (*model.Penukaran, error)
	DeletePenukaran(id uuid.UUID) error
}

type CreatePenukaranRequest struct {
	UserID       uuid.UUID        `json:"userId" validate:"uuid_required"`
	SampahID     uuid.UUID        `json:"sampahId" validate:"uuid_required"`
	BankSampahID uuid.UUID        `json:"bankSampahId" validate:"uuid_required"`
	Amount       *decimal.Decimal `json:"amount" validate:"required"`
	Earned       int64            `json:"earned" validate:"gte=0"`
}

// UpdatePenukaranStatusRequest keeps Earned as a decimal so that fractional or
// non-integer input can be rejected instead of silently truncated.
type UpdatePenukaranStatusRequest struct {
	Status model.TransactionStatus `json:"status"`
	Earned *decimal.Decimal        `json:"earned"`
}

// PenukaranQuery carries the raw listing parameters.
type PenukaranQuery struct {
	UserID   *uuid.UUID
	Status   string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

type penukaranService struct {
	repo       repository.PenukaranRepository
	userRepo   repository.UserRepository
	sampahRepo repository.SampahRepository
	notifier   Notifier
	log        *logrus.Entry
}

func NewPenukaranService(
	repo repository.PenukaranRepository,
	userRepo repository.UserRepository,
	sampahRepo repository.SampahRepository,
	notifier Notifier,
	log *logrus.Entry,
) PenukaranService {
	return &penukaranService{
		repo:       repo,
		userRepo:   userRepo,
		sampahRepo: sampahRepo,
		notifier:   notifier,
		log:        log.WithField("component", "penukaran"),
	}
}

func (s *penukaranService) CreatePenukaran(req *CreatePenukaranRequest) (*model.Penukaran, error) {
	// 1. Validate request
	if err := validate(req, "userId, sampahId, bankSampahId, and amount are required."); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, &ValidationError{Message: "Amount is invalid", Details: "amount must be greater than zero"}
	}

	// 2. References must exist, and the waste category must belong to the chosen bank
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, storeError(err, "User")
	}
	sampah, err := s.sampahRepo.FindByID(req.SampahID)
	if err != nil {
		return nil, storeError(err, "Sampah")
	}
	if sampah.BankSampahID != req.BankSampahID {
		return nil, &ValidationError{Message: "Sampah does not belong to the given bank sampah."}
	}

	// 3. Save as pending
	p := &model.Penukaran{
		UserID:       req.UserID,
		SampahID:     req.SampahID,
		BankSampahID: req.BankSampahID,
		Amount:       *req.Amount,
		Earned:       req.Earned,
		Status:       model.StatusPending,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, storeError(err, "Penukaran")
	}

	s.notifier.Notify(EventPenukaranCreated, p.UserID.String(), p)
	return p, nil
}

func (s *penukaranService) ListPenukaran(q *PenukaranQuery) ([]model.Penukaran, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindAll(filter)
	return items, storeError(err, "Penukaran")
}

func (s *penukaranService) GetPenukaranByID(id uuid.UUID) (*model.Penukaran, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Penukaran")
	}
	return p, nil
}

// UpdateStatus moves an exchange to a new status. Validation happens against the
// locked row so that concurrent requests cannot both credit the owner.
func (s *penukaranService) UpdateStatus(id uuid.UUID, req *UpdatePenukaranStatusRequest) (*model.Penukaran, error) {
	var credited int64

	updated, err := s.repo.Transition(id, func(current *model.Penukaran) (int64, error) {
		if err := checkTransition(current.Status, req.Status); err != nil {
			return 0, err
		}

		if req.Status == model.StatusSuccess {
			earned, err := parseEarned(req.Earned)
			if err != nil {
				return 0, err
			}
			current.Earned = earned
		}

		current.Status = req.Status
		credited = exchangeDelta(req.Status, current.Earned)
		return credited, nil
	})
	if err != nil {
		return nil, storeError(err, "Penukaran")
	}

	s.log.WithFields(logrus.Fields{
		"penukaran_id": updated.ID,
		"user_id":      updated.UserID,
		"status":       updated.Status,
		"credited":     credited,
	}).Info("penukaran status updated")
	s.notifier.Notify(EventPenukaranStatus, updated.UserID.String(), updated)

	return updated, nil
}

func (s *penukaranService) DeletePenukaran(id uuid.UUID) error {
	return storeError(s.repo.Delete(id), "Penukaran")
}

func (q *PenukaranQuery) filter() (repository.PenukaranFilter, error) {
	f := repository.PenukaranFilter{UserID: q.UserID}

	if q.Status != "" {
		status := model.TransactionStatus(q.Status)
		if !status.Valid() {
			return f, &ValidationError{
				Message: "Invalid status value.",
				Details: fmt.Sprintf("status must be one of pending, success, cancelled; got %q", q.Status),
			}
		}
		f.Status = status
	}

	if q.DateFrom != "" && q.DateTo != "" {
		from, _, err := parseDate(q.DateFrom)
		if err != nil {
			return f, &ValidationError{Message: "Invalid dateFrom", Details: err.Error()}
		}
		to, dateOnly, err := parseDate(q.DateTo)
		if err != nil {
			return f, &ValidationError{Message: "Invalid dateTo", Details: err.Error()}
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		f.DateFrom, f.DateTo = &from, &to
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit

	return f, nil
}

// parseDate accepts YYYY-MM-DD or RFC3339 and reports which form matched.
func parseDate(v string) (time.Time, bool, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%q is neither YYYY-MM-DD nor RFC3339", v)
	}
	return t, false, nil
}
