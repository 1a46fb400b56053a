package service

import (
	"testing"

	"go-sales-network/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsNode(tier model.Tier, debt string) *model.Sale {
	sale := &model.Sale{Tier: tier, Debt: decimal.RequireFromString(debt)}
	sale.ID = uuid.New()
	return sale
}

func TestDashboardService_GetNetworkStats(t *testing.T) {
	sales := newFakeSaleRepo(
		statsNode(model.TierFactory, "0"),
		statsNode(model.TierRetail, "150.50"),
		statsNode(model.TierRetail, "99.50"),
		statsNode(model.TierBusinessman, "10"),
	)
	svc := NewDashboardService(sales)

	stats, err := svc.GetNetworkStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Factories)
	assert.Equal(t, int64(2), stats.Retailers)
	assert.Equal(t, int64(1), stats.Businessmen)
	assert.Equal(t, int64(4), stats.TotalNodes)
	assert.True(t, stats.TotalDebt.Equal(decimal.RequireFromString("260")))
}

func TestDashboardService_EmptyNetwork(t *testing.T) {
	svc := NewDashboardService(newFakeSaleRepo())

	stats, err := svc.GetNetworkStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalNodes)
	assert.True(t, stats.TotalDebt.IsZero())
}
