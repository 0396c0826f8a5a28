package repository

import (
	"go-banksampah/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PelaporanRepository interface {
	Create(report *model.Pelaporan) error
	FindAll(userID *uuid.UUID) ([]model.Pelaporan, error)
	FindByID(id uuid.UUID) (*model.Pelaporan, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*model.Pelaporan, error)
	Delete(id uuid.UUID) error
}

type pelaporanRepo struct {
	db *gorm.DB
}

func NewPelaporanRepo(db *gorm.DB) PelaporanRepository {
	return &pelaporanRepo{db}
}

func (r *pelaporanRepo) Create(report *model.Pelaporan) error {
	return r.db.Create(report).Error
}

func (r *pelaporanRepo) FindAll(userID *uuid.UUID) ([]model.Pelaporan, error) {
	var reports []model.Pelaporan
	query := r.db.Preload("User")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *pelaporanRepo) FindByID(id uuid.UUID) (*model.Pelaporan, error) {
	return findByID[model.Pelaporan](r.db, id, "User")
}

func (r *pelaporanRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Pelaporan, error) {
	return updateFields[model.Pelaporan](r.db, id, fields, "User")
}

func (r *pelaporanRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.Pelaporan](r.db, id)
}
