package repository

import (
	"go-banksampah/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankSampahRepository interface {
	Create(bank *model.BankSampah) error
	FindAll() ([]model.BankSampah, error)
	FindByID(id uuid.UUID) (*model.BankSampah, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*model.BankSampah, error)
	Delete(id uuid.UUID) error
}

type bankSampahRepo struct {
	db *gorm.DB
}

func NewBankSampahRepo(db *gorm.DB) BankSampahRepository {
	return &bankSampahRepo{db}
}

func (r *bankSampahRepo) Create(bank *model.BankSampah) error {
	return r.db.Create(bank).Error
}

func (r *bankSampahRepo) FindAll() ([]model.BankSampah, error) {
	var banks []model.BankSampah
	err := r.db.Preload("Sampah").Order("created_at ASC").Find(&banks).Error
	return banks, err
}

func (r *bankSampahRepo) FindByID(id uuid.UUID) (*model.BankSampah, error) {
	return findByID[model.BankSampah](r.db, id, "Sampah")
}

func (r *bankSampahRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.BankSampah, error) {
	return updateFields[model.BankSampah](r.db, id, fields)
}

func (r *bankSampahRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.BankSampah](r.db, id)
}

type SampahRepository interface {
	Create(sampah *model.Sampah) error
	FindAll(bankSampahID *uuid.UUID) ([]model.Sampah, error)
	FindByID(id uuid.UUID) (*model.Sampah, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*model.Sampah, error)
	Delete(id uuid.UUID) error
}

type sampahRepo struct {
	db *gorm.DB
}

func NewSampahRepo(db *gorm.DB) SampahRepository {
	return &sampahRepo{db}
}

func (r *sampahRepo) Create(sampah *model.Sampah) error {
	return r.db.Create(sampah).Error
}

func (r *sampahRepo) FindAll(bankSampahID *uuid.UUID) ([]model.Sampah, error) {
	var sampahs []model.Sampah
	query := r.db.Preload("BankSampah")
	if bankSampahID != nil {
		query = query.Where("bank_sampah_id = ?", *bankSampahID)
	}
	err := query.Order("created_at ASC").Find(&sampahs).Error
	return sampahs, err
}

func (r *sampahRepo) FindByID(id uuid.UUID) (*model.Sampah, error) {
	return findByID[model.Sampah](r.db, id, "BankSampah")
}

func (r *sampahRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Sampah, error) {
	return updateFields[model.Sampah](r.db, id, fields)
}

func (r *sampahRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.Sampah](r.db, id)
}
