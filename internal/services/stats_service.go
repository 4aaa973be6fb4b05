// internal/services/stats_service.go
package services

import (
	"fmt"

	"github.com/decibell/store-backend/internal/repository"
)

// StatsService aggregates the dashboard numbers: store totals plus the visit
// series for the selected period.
type StatsService struct {
	users    *repository.UserRepository
	products *repository.ProductRepository
	ledger   *repository.VisitLedger
}

type DashboardStats struct {
	TotalUsers     int                 `json:"total_users"`
	TotalProducts  int                 `json:"total_products"`
	TotalVisits    int                 `json:"total_visits"`
	VisitsByPeriod []repository.Bucket `json:"visits_by_period"`
}

// periodWindows maps each chart period onto the lookback window used for the
// "total visits" card next to it.
var periodWindows = map[string]string{
	"day":   "24h",
	"week":  "7d",
	"month": "30d",
	"year":  "12m",
}

func NewStatsService(users *repository.UserRepository, products *repository.ProductRepository, ledger *repository.VisitLedger) *StatsService {
	return &StatsService{
		users:    users,
		products: products,
		ledger:   ledger,
	}
}

func (s *StatsService) Dashboard(period string) (*DashboardStats, error) {
	window, ok := periodWindows[period]
	if !ok {
		return nil, fmt.Errorf("unknown stats period %q", period)
	}

	totalVisits, err := s.ledger.CountInWindow(window)
	if err != nil {
		return nil, err
	}

	buckets, err := s.ledger.BucketedCounts(period)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:     len(s.users.GetAll()),
		TotalProducts:  len(s.products.GetAll()),
		TotalVisits:    totalVisits,
		VisitsByPeriod: buckets,
	}, nil
}
