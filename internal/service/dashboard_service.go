package service

import (
	"go-sales-network/internal/model"
	"go-sales-network/internal/repository"

	"github.com/shopspring/decimal"
)

// NetworkStats summarizes the trade network: how many nodes sit at each tier
// and the total outstanding debt across the network.
type NetworkStats struct {
	Factories   int64           `json:"factories"`
	Retailers   int64           `json:"retailers"`
	Businessmen int64           `json:"businessmen"`
	TotalNodes  int64           `json:"total_nodes"`
	TotalDebt   decimal.Decimal `json:"total_debt"`
}

type DashboardService interface {
	GetNetworkStats() (*NetworkStats, error)
}

type dashboardService struct {
	saleRepo repository.SaleRepository
}

func NewDashboardService(saleRepo repository.SaleRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo}
}

func (s *dashboardService) GetNetworkStats() (*NetworkStats, error) {
	counts, err := s.saleRepo.CountByTier()
	if err != nil {
		return nil, err
	}
	totalDebt, err := s.saleRepo.TotalDebt()
	if err != nil {
		return nil, err
	}

	stats := &NetworkStats{
		Factories:   counts[model.TierFactory],
		Retailers:   counts[model.TierRetail],
		Businessmen: counts[model.TierBusinessman],
		TotalDebt:   totalDebt,
	}
	stats.TotalNodes = stats.Factories + stats.Retailers + stats.Businessmen
	return stats, nil
}
