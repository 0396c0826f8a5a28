package service

import (
	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BankSampahService interface {
	CreateBankSampah(req *CreateBankSampahRequest) (*model.BankSampah, error)
	GetAllBankSampah() ([]model.BankSampah, error)
	GetBankSampahByID(id uuid.UUID) (*model.BankSampah, error)
	UpdateBankSampah(id uuid.UUID, req *UpdateBankSampahRequest) (*model.BankSampah, error)
	DeleteBankSampah(id uuid.UUID) error

	CreateSampah(req *CreateSampahRequest) (*model.Sampah, error)
	GetAllSampah(bankSampahID *uuid.UUID) ([]model.Sampah, error)
	GetSampahByID(id uuid.UUID) (*model.Sampah, error)
	UpdateSampah(id uuid.UUID, req *UpdateSampahRequest) (*model.Sampah, error)
	DeleteSampah(id uuid.UUID) error
}

type CreateBankSampahRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type UpdateBankSampahRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location" validate:"omitempty,min=1"`
}

type CreateSampahRequest struct {
	Category     string           `json:"category" validate:"required"`
	Price        *decimal.Decimal `json:"price" validate:"required"`
	BankSampahID uuid.UUID        `json:"bankSampahId" validate:"uuid_required"`
}

type UpdateSampahRequest struct {
	Category *string          `json:"category" validate:"omitempty,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

var errNegativePrice = &ValidationError{Message: "Price is invalid", Details: "price must not be negative"}

type bankSampahService struct {
	bankRepo   repository.BankSampahRepository
	sampahRepo repository.SampahRepository
}

func NewBankSampahService(bankRepo repository.BankSampahRepository, sampahRepo repository.SampahRepository) BankSampahService {
	return &bankSampahService{bankRepo: bankRepo, sampahRepo: sampahRepo}
}

func (s *bankSampahService) CreateBankSampah(req *CreateBankSampahRequest) (*model.BankSampah, error) {
	if err := validate(req, "Name and location are required."); err != nil {
		return nil, err
	}

	bank := &model.BankSampah{Name: req.Name, Location: req.Location}
	if err := s.bankRepo.Create(bank); err != nil {
		return nil, storeError(err, "Bank sampah")
	}
	return bank, nil
}

func (s *bankSampahService) GetAllBankSampah() ([]model.BankSampah, error) {
	banks, err := s.bankRepo.FindAll()
	return banks, storeError(err, "Bank sampah")
}

func (s *bankSampahService) GetBankSampahByID(id uuid.UUID) (*model.BankSampah, error) {
	bank, err := s.bankRepo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Bank sampah")
	}
	return bank, nil
}

func (s *bankSampahService) UpdateBankSampah(id uuid.UUID, req *UpdateBankSampahRequest) (*model.BankSampah, error) {
	if err := validate(req, "Invalid bank sampah data"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setString(fields, "name", req.Name)
	setString(fields, "location", req.Location)

	bank, err := s.bankRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, "Bank sampah")
	}
	return bank, nil
}

func (s *bankSampahService) DeleteBankSampah(id uuid.UUID) error {
	return storeError(s.bankRepo.Delete(id), "Bank sampah")
}

func (s *bankSampahService) CreateSampah(req *CreateSampahRequest) (*model.Sampah, error) {
	if err := validate(req, "Category, price, and bankSampahId are required."); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, errNegativePrice
	}

	if _, err := s.bankRepo.FindByID(req.BankSampahID); err != nil {
		return nil, storeError(err, "Bank sampah")
	}

	sampah := &model.Sampah{
		Category:     req.Category,
		Price:        *req.Price,
		BankSampahID: req.BankSampahID,
	}
	if err := s.sampahRepo.Create(sampah); err != nil {
		return nil, storeError(err, "Sampah")
	}
	return sampah, nil
}

func (s *bankSampahService) GetAllSampah(bankSampahID *uuid.UUID) ([]model.Sampah, error) {
	items, err := s.sampahRepo.FindAll(bankSampahID)
	return items, storeError(err, "Sampah")
}

func (s *bankSampahService) GetSampahByID(id uuid.UUID) (*model.Sampah, error) {
	sampah, err := s.sampahRepo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Sampah")
	}
	return sampah, nil
}

func (s *bankSampahService) UpdateSampah(id uuid.UUID, req *UpdateSampahRequest) (*model.Sampah, error) {
	if err := validate(req, "Invalid sampah data"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setString(fields, "category", req.Category)
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errNegativePrice
		}
		fields["price"] = *req.Price
	}

	sampah, err := s.sampahRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, "Sampah")
	}
	return sampah, nil
}

func (s *bankSampahService) DeleteSampah(id uuid.UUID) error {
	return storeError(s.sampahRepo.Delete(id), "Sampah")
}
