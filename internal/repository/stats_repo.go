package repository

import (
	"time"

	"go-banksampah/internal/model"

	"gorm.io/gorm"
)

type StatsRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetPointMovement(startDate, endDate time.Time) ([]PointMovementData, error)
}

// PointMovementData is one day of points earned (successful penukaran) vs spent (successful payment).
type PointMovementData struct {
	Date   string `json:"date"`
	Earned int64  `json:"earned"`
	Spent  int64  `json:"spent"`
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalPoints         int64 `json:"totalPoints"`
	PendingPenukaran    int64 `json:"pendingPenukaran"`
	SuccessfulPenukaran int64 `json:"successfulPenukaran"`
	PendingPayments     int64 `json:"pendingPayments"`
	TotalEarned         int64 `json:"totalEarned"`
	TotalSpent          int64 `json:"totalSpent"`
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db}
}

func (r *statsRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	steps := []func() error{
		func() error { return r.db.Model(&model.User{}).Count(&stats.TotalUsers).Error },
		func() error {
			return r.db.Model(&model.User{}).Select("COALESCE(SUM(point), 0)").Scan(&stats.TotalPoints).Error
		},
		func() error {
			return r.db.Model(&model.Penukaran{}).Where("status = ?", model.StatusPending).Count(&stats.PendingPenukaran).Error
		},
		func() error {
			return r.db.Model(&model.Penukaran{}).Where("status = ?", model.StatusSuccess).Count(&stats.SuccessfulPenukaran).Error
		},
		func() error {
			return r.db.Model(&model.Payment{}).Where("status = ?", model.StatusPending).Count(&stats.PendingPayments).Error
		},
		func() error {
			return r.db.Model(&model.Penukaran{}).Where("status = ?", model.StatusSuccess).
				Select("COALESCE(SUM(earned), 0)").Scan(&stats.TotalEarned).Error
		},
		func() error {
			return r.db.Model(&model.Payment{}).Where("status = ?", model.StatusSuccess).
				Select("COALESCE(SUM(total_price), 0)").Scan(&stats.TotalSpent).Error
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

func (r *statsRepo) GetPointMovement(startDate, endDate time.Time) ([]PointMovementData, error) {
	earned, err := r.sumPerDay(&model.Penukaran{}, "earned", startDate, endDate)
	if err != nil {
		return nil, err
	}
	spent, err := r.sumPerDay(&model.Payment{}, "total_price", startDate, endDate)
	if err != nil {
		return nil, err
	}

	return mergeDays(startDate, endDate, earned, spent), nil
}

// mergeDays lays out one row per UTC calendar day in [start, end] and fills in the sums.
func mergeDays(start, end time.Time, earned, spent map[string]int64) []PointMovementData {
	start, end = start.UTC(), end.UTC()
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	var results []PointMovementData
	for d := first; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		results = append(results, PointMovementData{Date: key, Earned: earned[key], Spent: spent[key]})
	}
	return results
}

// sumPerDay aggregates a points column of successful records per UTC calendar day.
func (r *statsRepo) sumPerDay(table interface{}, column string, startDate, endDate time.Time) (map[string]int64, error) {
	rows, err := r.db.Model(table).
		Select("TO_CHAR(updated_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') as date, COALESCE(SUM("+column+"), 0) as total").
		Where("status = ? AND updated_at BETWEEN ? AND ?", model.StatusSuccess, startDate, endDate).
		Group("TO_CHAR(updated_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var date string
		var total int64
		if err := rows.Scan(&date, &total); err != nil {
			return nil, err
		}
		out[date] = total
	}
	return out, rows.Err()
}
