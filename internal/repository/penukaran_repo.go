package repository

import (
	"time"

	"go-banksampah/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PenukaranFilter narrows a listing. Zero values mean "no filter"; the date range
// only applies when both bounds are set.
type PenukaranFilter struct {
	UserID   *uuid.UUID
	Status   model.TransactionStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Offset   int
	Limit    int
}

// PenukaranTransitionFunc runs against the locked row. It may mutate Status and
// Earned and returns the point delta to apply to the owner in the same transaction.
type PenukaranTransitionFunc func(current *model.Penukaran) (pointDelta int64, err error)

type PenukaranRepository interface {
	Create(p *model.Penukaran) error
	FindAll(filter PenukaranFilter) ([]model.Penukaran, error)
	FindByID(id uuid.UUID) (*model.Penukaran, error)
	Transition(id uuid.UUID, apply PenukaranTransitionFunc) (*model.Penukaran, error)
	Delete(id uuid.UUID) error
}

type penukaranRepo struct {
	db *gorm.DB
}

func NewPenukaranRepo(db *gorm.DB) PenukaranRepository {
	return &penukaranRepo{db}
}

func (r *penukaranRepo) Create(p *model.Penukaran) error {
	return r.db.Create(p).Error
}

func (r *penukaranRepo) FindAll(filter PenukaranFilter) ([]model.Penukaran, error) {
	var out []model.Penukaran

	query := r.db.Preload("User").Preload("Sampah").Preload("BankSampah")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil && filter.DateTo != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *filter.DateFrom, *filter.DateTo)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Order("created_at ASC").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *penukaranRepo) FindByID(id uuid.UUID) (*model.Penukaran, error) {
	return findByID[model.Penukaran](r.db, id, "User", "Sampah", "BankSampah")
}

// Transition locks the row, lets apply validate and mutate it, then writes the new
// status and the owner's point delta atomically.
func (r *penukaranRepo) Transition(id uuid.UUID, apply PenukaranTransitionFunc) (*model.Penukaran, error) {
	var current model.Penukaran

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", id).Error; err != nil {
			return err
		}

		delta, err := apply(&current)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Penukaran{}).
			Where("id = ?", current.ID).
			Updates(map[string]interface{}{
				"status": current.Status,
				"earned": current.Earned,
			}).Error; err != nil {
			return err
		}

		if delta != 0 {
			return adjustPoint(tx, current.UserID, delta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &current, nil
}

func (r *penukaranRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.Penukaran](r.db, id)
}
