package repository

import (
	"go-banksampah/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokoRepository interface {
	Create(toko *model.Toko) error
	FindAll() ([]model.Toko, error)
	FindByID(id uuid.UUID) (*model.Toko, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*model.Toko, error)
	Delete(id uuid.UUID) error
}

type tokoRepo struct {
	db *gorm.DB
}

func NewTokoRepo(db *gorm.DB) TokoRepository {
	return &tokoRepo{db}
}

func (r *tokoRepo) Create(toko *model.Toko) error {
	return r.db.Create(toko).Error
}

func (r *tokoRepo) FindAll() ([]model.Toko, error) {
	var tokos []model.Toko
	err := r.db.Preload("Barang").Order("created_at ASC").Find(&tokos).Error
	return tokos, err
}

func (r *tokoRepo) FindByID(id uuid.UUID) (*model.Toko, error) {
	return findByID[model.Toko](r.db, id, "Barang")
}

func (r *tokoRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Toko, error) {
	return updateFields[model.Toko](r.db, id, fields)
}

func (r *tokoRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.Toko](r.db, id)
}

type BarangRepository interface {
	Create(barang *model.Barang) error
	FindAll(tokoID *uuid.UUID) ([]model.Barang, error)
	FindByID(id uuid.UUID) (*model.Barang, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*model.Barang, error)
	Delete(id uuid.UUID) error
}

type barangRepo struct {
	db *gorm.DB
}

func NewBarangRepo(db *gorm.DB) BarangRepository {
	return &barangRepo{db}
}

func (r *barangRepo) Create(barang *model.Barang) error {
	return r.db.Create(barang).Error
}

func (r *barangRepo) FindAll(tokoID *uuid.UUID) ([]model.Barang, error) {
	var barangs []model.Barang
	query := r.db.Preload("Toko")
	if tokoID != nil {
		query = query.Where("toko_id = ?", *tokoID)
	}
	err := query.Order("created_at ASC").Find(&barangs).Error
	return barangs, err
}

func (r *barangRepo) FindByID(id uuid.UUID) (*model.Barang, error) {
	return findByID[model.Barang](r.db, id, "Toko")
}

func (r *barangRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Barang, error) {
	return updateFields[model.Barang](r.db, id, fields)
}

func (r *barangRepo) Delete(id uuid.UUID) error {
	return deleteByID[model.Barang](r.db, id)
}
