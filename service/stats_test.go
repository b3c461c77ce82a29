package service

import (
	"testing"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() models.AppSettings {
	return models.AppSettings{TargetRevenue: 250000, VatRate: 23, Currency: "PLN", ProfitSplit: 2}
}

func TestComputeMonthlyStatsFebruaryScenario(t *testing.T) {
	incomes := []models.Income{{ShopID: 1, Date: "2026-02-25", Amount: 1000}}
	costs := []models.Cost{{ShopID: 1, Date: "2026-02-25", Category: "tiktok", Amount: 200}}

	stats := ComputeMonthlyStats(1, 2026, 2, incomes, costs, nil, testSettings())

	require.Len(t, stats.Days, 28)
	day := stats.Days[24]
	assert.Equal(t, "2026-02-25", day.Date)
	assert.Equal(t, 1000.0, day.Income)
	assert.Equal(t, 200.0, day.TikTokAds)
	assert.Equal(t, 200.0, day.AdsTotal)
	assert.Equal(t, 770.0, day.Netto)
	assert.Equal(t, 570.0, day.Profit)
	assert.Equal(t, 285.0, day.ProfitPP)

	assert.Equal(t, 1000.0, stats.TotalIncome)
	assert.Equal(t, 570.0, stats.TotalProfit)
	assert.Equal(t, 285.0, stats.ProfitPerPerson)
	assert.Equal(t, 200.0, stats.TotalAllCosts)
	assert.Equal(t, 285.0, stats.ROI)
}

func TestComputeMonthlyStatsDaySumsMatchTotals(t *testing.T) {
	incomes := []models.Income{
		{ShopID: 1, Date: "2026-03-01", Amount: 120.10},
		{ShopID: 1, Date: "2026-03-01", Amount: 80.15},
		{ShopID: 1, Date: "2026-03-14", Amount: 999.99},
		{ShopID: 1, Date: "2026-03-31", Amount: 0.01},
	}
	costs := []models.Cost{
		{ShopID: 1, Date: "2026-03-14", Category: "meta", Amount: 50.55},
		{ShopID: 1, Date: "2026-03-20", Category: "zwroty", Amount: 33.33},
	}

	stats := ComputeMonthlyStats(1, 2026, 3, incomes, costs, nil, testSettings())

	var sum float64
	for _, day := range stats.Days {
		sum += day.Income
	}
	assert.InDelta(t, stats.TotalIncome, sum, 0.001)
	assert.Equal(t, 50.55, stats.TotalMeta)
	assert.Equal(t, 33.33, stats.TotalZwroty)
}

func TestComputeMonthlyStatsProfitSplitFloor(t *testing.T) {
	incomes := []models.Income{{ShopID: 1, Date: "2026-01-10", Amount: 100}}

	for _, split := range []int{0, 1, 2, 5} {
		settings := testSettings()
		settings.ProfitSplit = split
		stats := ComputeMonthlyStats(1, 2026, 1, incomes, nil, nil, settings)

		effective := split
		if effective < 1 {
			effective = 1
		}
		assert.InDelta(t, stats.TotalProfit/float64(effective), stats.ProfitPerPerson, 0.01, "split=%d", split)
	}
}

func TestComputeMonthlyStatsCustomColumnRouting(t *testing.T) {
	columns := []models.CustomColumn{
		{ID: "c1", Name: "kurier", ColumnType: "expense"},
		{ID: "c2", Name: "allegro", ColumnType: "income"},
	}
	incomes := []models.Income{{ShopID: 1, Date: "2026-04-05", Amount: 1000}}
	costs := []models.Cost{
		{ShopID: 1, Date: "2026-04-05", Category: "kurier", Amount: 40},
		{ShopID: 1, Date: "2026-04-05", Category: "allegro", Amount: 300},
		{ShopID: 1, Date: "2026-04-05", Category: "nieznana", Amount: 60},
	}

	stats := ComputeMonthlyStats(1, 2026, 4, incomes, costs, columns, testSettings())

	day := stats.Days[4]
	assert.Equal(t, 40.0, day.CustomCosts["kurier"])
	assert.Equal(t, 300.0, day.CustomCosts["allegro"])
	// tylko kolumna expense obniza zysk dnia
	assert.Equal(t, 730.0, day.Profit)
	// kubelek bez dopasowania wchodzi do kosztow calkowitych
	assert.Equal(t, 100.0, stats.TotalAllCosts)
	assert.Equal(t, 40.0, stats.TotalCustom["kurier"])
}

func TestComputeMonthlyStatsEmptyMonthAllZero(t *testing.T) {
	stats := ComputeMonthlyStats(99, 2026, 6, nil, nil, nil, testSettings())

	assert.Len(t, stats.Days, 30)
	assert.Zero(t, stats.TotalIncome)
	assert.Zero(t, stats.TotalProfit)
	assert.Zero(t, stats.ROI)
}

func TestComputeMonthlyStatsIdempotent(t *testing.T) {
	incomes := []models.Income{{ShopID: 1, Date: "2026-05-09", Amount: 432.10}}
	costs := []models.Cost{{ShopID: 1, Date: "2026-05-09", Category: "google", Amount: 55.5}}

	a := ComputeMonthlyStats(1, 2026, 5, incomes, costs, nil, testSettings())
	b := ComputeMonthlyStats(1, 2026, 5, incomes, costs, nil, testSettings())
	assert.Equal(t, a, b)
}

func TestCombinedStatsShopBreakdown(t *testing.T) {
	shops := []models.Shop{{ID: 1, Name: "ecom1"}, {ID: 2, Name: "ecom2"}}
	incomes := []models.Income{
		{ShopID: 1, Date: "2026-02-10", Amount: 600},
		{ShopID: 2, Date: "2026-02-10", Amount: 400},
	}
	costs := []models.Cost{{ShopID: 2, Date: "2026-02-10", Category: "tiktok", Amount: 100}}
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	stats := ComputeCombinedMonthlyStats(2026, 2, shops, incomes, costs, nil, testSettings(), now)

	day := stats.Days[9]
	assert.Equal(t, 1000.0, day.Income)
	require.Contains(t, day.Shops, 1)
	require.Contains(t, day.Shops, 2)
	assert.Equal(t, 600.0, day.Shops[1].Income)
	assert.Equal(t, 400.0, day.Shops[2].Income)
	assert.Equal(t, 100.0, day.Shops[2].TikTokAds)
	assert.Equal(t, 208.0, day.Shops[2].Profit)
	assert.Equal(t, 1000.0, stats.TotalIncome)
}

func TestCombinedStatsStreakBreaksOnFirstNonProfitDay(t *testing.T) {
	incomes := []models.Income{
		{ShopID: 1, Date: "2026-02-23", Amount: 100},
		{ShopID: 1, Date: "2026-02-24", Amount: 100},
		{ShopID: 1, Date: "2026-02-25", Amount: 100},
		// 2026-02-20 aktywny ale ze strata
		{ShopID: 1, Date: "2026-02-20", Amount: 100},
	}
	costs := []models.Cost{{ShopID: 1, Date: "2026-02-20", Category: "meta", Amount: 500}}
	now := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)

	stats := ComputeCombinedMonthlyStats(2026, 2, nil, incomes, costs, nil, testSettings(), now)

	// dni 22 i 21 bez aktywnosci urywaja serie mimo straty dopiero 20.
	assert.Equal(t, 3, stats.Streak)
}

func TestCombinedStatsStreakPastMonthStartsAtLastDay(t *testing.T) {
	incomes := []models.Income{
		{ShopID: 1, Date: "2026-01-30", Amount: 50},
		{ShopID: 1, Date: "2026-01-31", Amount: 50},
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeCombinedMonthlyStats(2026, 1, nil, incomes, nil, nil, testSettings(), now)
	assert.Equal(t, 2, stats.Streak)
}

func TestCombinedStatsBestDay(t *testing.T) {
	incomes := []models.Income{
		{ShopID: 1, Date: "2026-02-05", Amount: 100},
		{ShopID: 1, Date: "2026-02-06", Amount: 900},
	}
	costs := []models.Cost{{ShopID: 1, Date: "2026-02-06", Category: "tiktok", Amount: 800}}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeCombinedMonthlyStats(2026, 2, nil, incomes, costs, nil, testSettings(), now)

	// dzien 5: zysk 77, dzien 6: netto 693 - 800 < 77
	require.NotNil(t, stats.BestDay)
	assert.Equal(t, "2026-02-05", *stats.BestDay)
}

func TestCombinedStatsBestDayNilWithoutIncome(t *testing.T) {
	costs := []models.Cost{{ShopID: 1, Date: "2026-02-06", Category: "tiktok", Amount: 800}}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeCombinedMonthlyStats(2026, 2, nil, nil, costs, nil, testSettings(), now)
	assert.Nil(t, stats.BestDay)
}

func TestCombinedStatsForecastAndProgress(t *testing.T) {
	incomes := []models.Income{{ShopID: 1, Date: "2026-02-01", Amount: 1400}}
	now := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

	stats := ComputeCombinedMonthlyStats(2026, 2, nil, incomes, nil, nil, testSettings(), now)

	// 1400 / 14 dni * 28 dni
	assert.Equal(t, 2800.0, stats.Forecast)
	assert.Equal(t, 0.56, stats.Progress)

	settings := testSettings()
	settings.TargetRevenue = 1000
	capped := ComputeCombinedMonthlyStats(2026, 2, nil, incomes, nil, nil, settings, now)
	assert.Equal(t, 100.0, capped.Progress)
}
