package repository

import (
	"go-banksampah/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentTransitionFunc runs against the locked row and returns the point delta for its owner.
type PaymentTransitionFunc func(current *model.Payment) (pointDelta int64, err error)

type PaymentRepository interface {
	Create(p *model.Payment) error
	FindAll(userID *uuid.UUID) ([]model.Payment, error)
	FindByID(id uuid.UUID) (*model.Payment, error)
	Transition(id uuid.UUID, apply PaymentTransitionFunc) (*model.Payment, error)
	Delete(id uuid.UUID) error
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) Create(p *model.Payment) error {
	return r.db.Create(p).Error
}

func (r *paymentRepo) FindAll(userID *uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	query := r.db.Preload("User").Preload("Toko").Preload("Barang")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	return findByID[model.Payment](r.db, id, "User", "Toko", "Barang")
}

func (r *paymentRepo) Transition(id uuid.UUID, apply PaymentTransitionFunc) (*model.Payment, error) {
	var current model.Payment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", id).Error; err != nil {
			return err
		}

		delta, err := apply(&current)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Payment{}).
			Where("id = ?", current.ID).
			Update("status", current.Status).Error; err != nil {
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

func (r *paymentRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.Payment](r.db, id)
}
