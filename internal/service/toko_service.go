package service

import (
	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"

	"github.com/google/uuid"
)

type TokoService interface {
	CreateToko(req *CreateTokoRequest) (*model.Toko, error)
	GetAllToko() ([]model.Toko, error)
	GetTokoByID(id uuid.UUID) (*model.Toko, error)
	UpdateToko(id uuid.UUID, req *UpdateTokoRequest) (*model.Toko, error)
	DeleteToko(id uuid.UUID) error

	CreateBarang(req *CreateBarangRequest) (*model.Barang, error)
	GetAllBarang(tokoID *uuid.UUID) ([]model.Barang, error)
	GetBarangByID(id uuid.UUID) (*model.Barang, error)
	UpdateBarang(id uuid.UUID, req *UpdateBarangRequest) (*model.Barang, error)
	DeleteBarang(id uuid.UUID) error
}

type CreateTokoRequest struct {
	Nama     string `json:"nama" validate:"required"`
	Alamat   string `json:"alamat" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

type UpdateTokoRequest struct {
	Nama     *string `json:"nama" validate:"omitempty,min=1"`
	Alamat   *string `json:"alamat" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl"`
}

type CreateBarangRequest struct {
	Nama     string    `json:"nama" validate:"required"`
	Harga    *int64    `json:"harga" validate:"required,gte=0"`
	Stok     *int      `json:"stok" validate:"required,gte=0"`
	ImageURL string    `json:"imageUrl" validate:"required"`
	TokoID   uuid.UUID `json:"tokoId" validate:"uuid_required"`
}

type UpdateBarangRequest struct {
	Nama     *string `json:"nama" validate:"omitempty,min=1"`
	Harga    *int64  `json:"harga" validate:"omitempty,gte=0"`
	Stok     *int    `json:"stok" validate:"omitempty,gte=0"`
	ImageURL *string `json:"imageUrl"`
}

type tokoService struct {
	tokoRepo   repository.TokoRepository
	barangRepo repository.BarangRepository
}

func NewTokoService(tokoRepo repository.TokoRepository, barangRepo repository.BarangRepository) TokoService {
	return &tokoService{tokoRepo: tokoRepo, barangRepo: barangRepo}
}

func (s *tokoService) CreateToko(req *CreateTokoRequest) (*model.Toko, error) {
	if err := validate(req, "Nama, alamat, dan imageUrl diperlukan."); err != nil {
		return nil, err
	}

	toko := &model.Toko{Nama: req.Nama, Alamat: req.Alamat, ImageURL: req.ImageURL}
	if err := s.tokoRepo.Create(toko); err != nil {
		return nil, storeError(err, "Toko")
	}
	return toko, nil
}

func (s *tokoService) GetAllToko() ([]model.Toko, error) {
	tokos, err := s.tokoRepo.FindAll()
	return tokos, storeError(err, "Toko")
}

func (s *tokoService) GetTokoByID(id uuid.UUID) (*model.Toko, error) {
	toko, err := s.tokoRepo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Toko")
	}
	return toko, nil
}

func (s *tokoService) UpdateToko(id uuid.UUID, req *UpdateTokoRequest) (*model.Toko, error) {
	if err := validate(req, "Invalid toko data"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setString(fields, "nama", req.Nama)
	setString(fields, "alamat", req.Alamat)
	setString(fields, "image_url", req.ImageURL)

	toko, err := s.tokoRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, "Toko")
	}
	return toko, nil
}

func (s *tokoService) DeleteToko(id uuid.UUID) error {
	return storeError(s.tokoRepo.Delete(id), "Toko")
}

func (s *tokoService) CreateBarang(req *CreateBarangRequest) (*model.Barang, error) {
	if err := validate(req, "Nama, harga, stok, imageUrl, dan tokoId diperlukan."); err != nil {
		return nil, err
	}

	// Owning shop must exist
	if _, err := s.tokoRepo.FindByID(req.TokoID); err != nil {
		return nil, storeError(err, "Toko")
	}

	barang := &model.Barang{
		Nama:     req.Nama,
		Harga:    *req.Harga,
		Stok:     *req.Stok,
		ImageURL: req.ImageURL,
		TokoID:   req.TokoID,
	}
	if err := s.barangRepo.Create(barang); err != nil {
		return nil, storeError(err, "Barang")
	}
	return barang, nil
}

func (s *tokoService) GetAllBarang(tokoID *uuid.UUID) ([]model.Barang, error) {
	items, err := s.barangRepo.FindAll(tokoID)
	return items, storeError(err, "Barang")
}

func (s *tokoService) GetBarangByID(id uuid.UUID) (*model.Barang, error) {
	barang, err := s.barangRepo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Barang")
	}
	return barang, nil
}

func (s *tokoService) UpdateBarang(id uuid.UUID, req *UpdateBarangRequest) (*model.Barang, error) {
	if err := validate(req, "Invalid barang data"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setString(fields, "nama", req.Nama)
	setString(fields, "image_url", req.ImageURL)
	if req.Harga != nil {
		fields["harga"] = *req.Harga
	}
	if req.Stok != nil {
		fields["stok"] = *req.Stok
	}

	barang, err := s.barangRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, "Barang")
	}
	return barang, nil
}

func (s *tokoService) DeleteBarang(id uuid.UUID) error {
	return storeError(s.barangRepo.Delete(id), "Barang")
}
