package service

import (
	"fmt"

	"go-banksampah/internal/model"
	"go-banksampah/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PelaporanService interface {
	CreatePelaporan(req *CreatePelaporanRequest) (*model.Pelaporan, error)
	GetAllPelaporan(userID *uuid.UUID) ([]model.Pelaporan, error)
	GetPelaporanByID(id uuid.UUID) (*model.Pelaporan, error)
	UpdatePelaporan(id uuid.UUID, req *UpdatePelaporanRequest) (*model.Pelaporan, error)
	DeletePelaporan(id uuid.UUID) error
}

type CreatePelaporanRequest struct {
	Name        string    `json:"name"`
	UserID      uuid.UUID `json:"userId" validate:"uuid_required"`
	Judul       string    `json:"judul" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	Description string    `json:"description" validate:"required"`
	ImageURL    string    `json:"imageUrl" validate:"required"`
}

type UpdatePelaporanRequest struct {
	Name        *string             `json:"name"`
	Judul       *string             `json:"judul" validate:"omitempty,min=1"`
	Address     *string             `json:"address" validate:"omitempty,min=1"`
	Description *string             `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string             `json:"imageUrl" validate:"omitempty,min=1"`
	Status      *model.ReportStatus `json:"status"`
}

type pelaporanService struct {
	reportRepo repository.PelaporanRepository
	userRepo   repository.UserRepository
	notifier   Notifier
	log        *logrus.Entry
}

func NewPelaporanService(reportRepo repository.PelaporanRepository, userRepo repository.UserRepository, notifier Notifier, log *logrus.Entry) PelaporanService {
	return &pelaporanService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		log:        log.WithField("component", "pelaporan"),
	}
}

func (s *pelaporanService) CreatePelaporan(req *CreatePelaporanRequest) (*model.Pelaporan, error) {
	if err := validate(req, "User ID, judul, address, description, and imageUrl are required."); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, storeError(err, "User")
	}

	report := &model.Pelaporan{
		Name:        req.Name,
		UserID:      req.UserID,
		Judul:       req.Judul,
		Address:     req.Address,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      model.ReportSent,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, storeError(err, "Pelaporan")
	}
	return report, nil
}

func (s *pelaporanService) GetAllPelaporan(userID *uuid.UUID) ([]model.Pelaporan, error) {
	reports, err := s.reportRepo.FindAll(userID)
	return reports, storeError(err, "Pelaporan")
}

func (s *pelaporanService) GetPelaporanByID(id uuid.UUID) (*model.Pelaporan, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		return nil, storeError(err, "Pelaporan")
	}
	return report, nil
}

func (s *pelaporanService) UpdatePelaporan(id uuid.UUID, req *UpdatePelaporanRequest) (*model.Pelaporan, error) {
	if err := validate(req, "Invalid pelaporan data"); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, &ValidationError{
			Message: "Invalid status value.",
			Details: fmt.Sprintf("status must be one of sent, reviewed, completed, rejected; got %q", *req.Status),
		}
	}

	fields := map[string]interface{}{}
	setString(fields, "name", req.Name)
	setString(fields, "judul", req.Judul)
	setString(fields, "address", req.Address)
	setString(fields, "description", req.Description)
	setString(fields, "image_url", req.ImageURL)
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	report, err := s.reportRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, "Pelaporan")
	}

	if req.Status != nil {
		s.log.WithFields(logrus.Fields{"pelaporan_id": id, "status": report.Status}).Info("pelaporan status updated")
		s.notifier.Notify(EventPelaporanStatus, report.UserID.String(), report)
	}
	return report, nil
}

func (s *pelaporanService) DeletePelaporan(id uuid.UUID) error {
	return storeError(s.reportRepo.Delete(id), "Pelaporan")
}
