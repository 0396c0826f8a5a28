package service

import (
	"time"

	"go-banksampah/internal/repository"
)

const maxMovementDays = 365

type DashboardService interface {
	GetPointMovement(days int) ([]repository.PointMovementData, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

func (s *dashboardService) GetPointMovement(days int) ([]repository.PointMovementData, error) {
	if days < 1 || days > maxMovementDays {
		return nil, &ValidationError{Message: "Invalid days", Details: "days must be between 1 and 365"}
	}

	// days are UTC calendar days, matching the buckets built by the stats query
	endDate := time.Now().UTC()
	first := endDate.AddDate(0, 0, -(days - 1))
	startDate := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)

	data, err := s.statsRepo.GetPointMovement(startDate, endDate)
	return data, storeError(err, "Dashboard")
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.statsRepo.GetDashboardStats()
	if err != nil {
		return nil, storeError(err, "Dashboard")
	}
	return stats, nil
}
