package service

import (
	"strconv"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"
)

// Stala "netto = 77% przychodu". Ustawienie vat_rate istnieje w
// app_settings, ale rachunek zysku historycznie uzywa sztywnego 0.77
// i tak ma zostac.
const nettoFactor = 0.77

// NetRevenue stosuje ten sam przelicznik poza agregatorem miesiecznym.
func NetRevenue(income float64) float64 {
	return income * nettoFactor
}

// DayStats to kubelek jednego dnia kalendarzowego. Pole other zbiera
// koszty o kategorii niepasujacej ani do wbudowanych, ani do kolumn;
// nie pokazujemy go osobno, ale wlicza sie do kosztow calkowitych.
type DayStats struct {
	Date        string               `json:"date"`
	Income      float64              `json:"income"`
	Netto       float64              `json:"netto"`
	Profit      float64              `json:"profit"`
	ProfitPP    float64              `json:"profit_pp"`
	TikTokAds   float64              `json:"tiktok_ads"`
	MetaAds     float64              `json:"meta_ads"`
	GoogleAds   float64              `json:"google_ads"`
	AdsTotal    float64              `json:"ads_total"`
	Zwroty      float64              `json:"zwroty"`
	CustomCosts map[string]float64   `json:"custom_costs"`
	Shops       map[int]*DayStats    `json:"shops,omitempty"`

	other float64
}

type MonthlyStats struct {
	ShopID          int                   `json:"shop_id,omitempty"`
	Year            int                   `json:"year"`
	Month           int                   `json:"month"`
	TotalIncome     float64               `json:"total_income"`
	TotalNetto      float64               `json:"total_netto"`
	TotalProfit     float64               `json:"total_profit"`
	ProfitPerPerson float64               `json:"profit_per_person"`
	TotalTikTok     float64               `json:"total_tiktok"`
	TotalMeta       float64               `json:"total_meta"`
	TotalGoogle     float64               `json:"total_google"`
	TotalAds        float64               `json:"total_ads"`
	TotalZwroty     float64               `json:"total_zwroty"`
	TotalCustom     map[string]float64    `json:"total_custom"`
	TotalAllCosts   float64               `json:"total_all_costs"`
	ROI             float64               `json:"roi"`
	CustomColumns   []models.CustomColumn `json:"custom_columns"`
	Days            []*DayStats           `json:"days"`
}

// CombinedStats dodaje do statystyk miesiaca metryki przekrojowe
// liczone na juz zagregowanych dniach.
type CombinedStats struct {
	MonthlyStats
	Streak   int     `json:"streak"`
	BestDay  *string `json:"best_day"`
	Forecast float64 `json:"forecast"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
}

func newDayBuckets(year, month int, columns []models.CustomColumn) []*DayStats {
	n := utils.DaysInMonth(year, month)
	days := make([]*DayStats, n)
	for i := range days {
		days[i] = &DayStats{
			Date:        utils.DayString(year, month, i+1),
			CustomCosts: make(map[string]float64, len(columns)),
		}
		for _, col := range columns {
			days[i].CustomCosts[col.Name] = 0
		}
	}
	return days
}

// dayIndex wyciaga indeks kubelka z daty "YYYY-MM-DD". Rekordy z
// uszkodzona data sa pomijane.
func dayIndex(date string, max int) int {
	if len(date) != 10 {
		return -1
	}
	d, err := strconv.Atoi(date[8:10])
	if err != nil || d < 1 || d > max {
		return -1
	}
	return d - 1
}

func (d *DayStats) addCost(c models.Cost, columnNames map[string]string) {
	switch c.Category {
	case models.CostCategoryTikTok:
		d.TikTokAds += c.Amount
	case models.CostCategoryMeta:
		d.MetaAds += c.Amount
	case models.CostCategoryGoogle:
		d.GoogleAds += c.Amount
	case models.CostCategoryZwroty:
		d.Zwroty += c.Amount
	default:
		if _, ok := columnNames[c.Category]; ok {
			d.CustomCosts[c.Category] += c.Amount
		} else {
			// kategoria bez dopasowania, pieniadz nie moze zginac
			d.other += c.Amount
		}
	}
}

// finalize domyka kubelek: netto, koszt dnia, zysk. Kolumny typu
// income nie wchodza do kosztu dnia. Zwraca koszt calkowity dnia
// razem z kubelkiem "inne".
func (d *DayStats) finalize(profitSplit int, columnTypes map[string]string) float64 {
	d.AdsTotal = d.TikTokAds + d.MetaAds + d.GoogleAds
	expenseCustom := 0.0
	for name, v := range d.CustomCosts {
		if columnTypes[name] == "expense" {
			expenseCustom += v
		}
		d.CustomCosts[name] = utils.Round2(v)
	}
	dayCost := d.AdsTotal + d.Zwroty + expenseCustom

	d.Netto = utils.Round2(d.Income * nettoFactor)
	d.Profit = utils.Round2(d.Income*nettoFactor - dayCost)
	d.ProfitPP = utils.Round2(d.Profit / float64(profitSplit))

	d.Income = utils.Round2(d.Income)
	d.TikTokAds = utils.Round2(d.TikTokAds)
	d.MetaAds = utils.Round2(d.MetaAds)
	d.GoogleAds = utils.Round2(d.GoogleAds)
	d.AdsTotal = utils.Round2(d.AdsTotal)
	d.Zwroty = utils.Round2(d.Zwroty)

	return dayCost + d.other
}

func columnMaps(columns []models.CustomColumn) map[string]string {
	types := make(map[string]string, len(columns))
	for _, col := range columns {
		types[col.Name] = col.ColumnType
	}
	return types
}

// ComputeMonthlyStats agreguje miesiac dla jednego sklepu. Rekordy
// spoza miesiaca sa ignorowane, brak danych daje zera.
func ComputeMonthlyStats(shopID, year, month int, incomes []models.Income, costs []models.Cost, columns []models.CustomColumn, settings models.AppSettings) *MonthlyStats {
	stats := &MonthlyStats{
		ShopID:        shopID,
		Year:          year,
		Month:         month,
		TotalCustom:   make(map[string]float64, len(columns)),
		CustomColumns: columns,
		Days:          newDayBuckets(year, month, columns),
	}
	types := columnMaps(columns)

	for _, in := range incomes {
		if i := dayIndex(in.Date, len(stats.Days)); i >= 0 {
			stats.Days[i].Income += in.Amount
		}
	}
	for _, c := range costs {
		if i := dayIndex(c.Date, len(stats.Days)); i >= 0 {
			stats.Days[i].addCost(c, types)
		}
	}

	stats.sumDays(types, profitSplit(settings))
	return stats
}

// ComputeCombinedMonthlyStats agreguje miesiac bez filtra sklepu,
// z zagniezdzonym rozbiciem per sklep w kazdym dniu.
func ComputeCombinedMonthlyStats(year, month int, shops []models.Shop, incomes []models.Income, costs []models.Cost, columns []models.CustomColumn, settings models.AppSettings, now time.Time) *CombinedStats {
	stats := &CombinedStats{MonthlyStats: MonthlyStats{
		Year:          year,
		Month:         month,
		TotalCustom:   make(map[string]float64, len(columns)),
		CustomColumns: columns,
		Days:          newDayBuckets(year, month, columns),
	}}
	types := columnMaps(columns)

	for _, day := range stats.Days {
		day.Shops = make(map[int]*DayStats, len(shops))
		for _, s := range shops {
			day.Shops[s.ID] = &DayStats{
				Date:        day.Date,
				CustomCosts: make(map[string]float64, len(columns)),
			}
			for _, col := range columns {
				day.Shops[s.ID].CustomCosts[col.Name] = 0
			}
		}
	}

	for _, in := range incomes {
		if i := dayIndex(in.Date, len(stats.Days)); i >= 0 {
			day := stats.Days[i]
			day.Income += in.Amount
			if sd, ok := day.Shops[in.ShopID]; ok {
				sd.Income += in.Amount
			}
		}
	}
	for _, c := range costs {
		if i := dayIndex(c.Date, len(stats.Days)); i >= 0 {
			day := stats.Days[i]
			day.addCost(c, types)
			if sd, ok := day.Shops[c.ShopID]; ok {
				sd.addCost(c, types)
			}
		}
	}

	split := profitSplit(settings)
	for _, day := range stats.Days {
		for _, sd := range day.Shops {
			sd.finalize(split, types)
		}
	}
	stats.sumDays(types, split)

	stats.Streak = computeStreak(stats.Days, year, month, now)
	stats.BestDay = bestDay(stats.Days)
	stats.Forecast = forecast(stats.TotalIncome, year, month, now)
	stats.Target = settings.TargetRevenue
	stats.Progress = progress(stats.TotalIncome, settings.TargetRevenue)
	return stats
}

func (m *MonthlyStats) sumDays(types map[string]string, split int) {
	var allCosts float64
	for _, day := range m.Days {
		allCosts += day.finalize(split, types)
		m.TotalIncome += day.Income
		m.TotalNetto += day.Netto
		m.TotalProfit += day.Profit
		m.TotalTikTok += day.TikTokAds
		m.TotalMeta += day.MetaAds
		m.TotalGoogle += day.GoogleAds
		m.TotalAds += day.AdsTotal
		m.TotalZwroty += day.Zwroty
		for name, v := range day.CustomCosts {
			m.TotalCustom[name] += v
		}
	}
	m.TotalIncome = utils.Round2(m.TotalIncome)
	m.TotalNetto = utils.Round2(m.TotalNetto)
	m.TotalProfit = utils.Round2(m.TotalProfit)
	m.ProfitPerPerson = utils.Round2(m.TotalProfit / float64(split))
	m.TotalTikTok = utils.Round2(m.TotalTikTok)
	m.TotalMeta = utils.Round2(m.TotalMeta)
	m.TotalGoogle = utils.Round2(m.TotalGoogle)
	m.TotalAds = utils.Round2(m.TotalAds)
	m.TotalZwroty = utils.Round2(m.TotalZwroty)
	for name, v := range m.TotalCustom {
		m.TotalCustom[name] = utils.Round2(v)
	}
	m.TotalAllCosts = utils.Round2(allCosts)
	if m.TotalAllCosts > 0 {
		m.ROI = utils.Round2(m.TotalProfit / m.TotalAllCosts * 100)
	}
}

func profitSplit(settings models.AppSettings) int {
	if settings.ProfitSplit < 1 {
		return 1
	}
	return settings.ProfitSplit
}

// computeStreak idzie od dzisiaj (albo od konca miesiaca, gdy miesiac
// juz minal) wstecz i liczy kolejne dni z dodatnim zyskiem. Pierwszy
// dzien bez dodatniego zysku urywa serie, takze dzien bez zadnej
// aktywnosci. Celowo doslownie: weekend z zerowa sprzedaza tez urywa.
func computeStreak(days []*DayStats, year, month int, now time.Time) int {
	start := len(days) - 1
	if now.Year() == year && int(now.Month()) == month {
		start = now.Day() - 1
		if start >= len(days) {
			start = len(days) - 1
		}
	}
	streak := 0
	for i := start; i >= 0; i-- {
		if days[i].Profit > 0 {
			streak++
		} else {
			break
		}
	}
	return streak
}

func bestDay(days []*DayStats) *string {
	var best *DayStats
	for _, day := range days {
		if day.Income <= 0 {
			continue
		}
		if best == nil || day.Profit > best.Profit {
			best = day
		}
	}
	if best == nil {
		return nil
	}
	return &best.Date
}

func forecast(totalIncome float64, year, month int, now time.Time) float64 {
	if totalIncome == 0 {
		return 0
	}
	daysIn := utils.DaysInMonth(year, month)
	elapsed := daysIn
	if now.Year() == year && int(now.Month()) == month {
		elapsed = now.Day()
	}
	if elapsed < 1 {
		elapsed = 1
	}
	return utils.Round2(totalIncome / float64(elapsed) * float64(daysIn))
}

func progress(totalIncome, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := totalIncome / target * 100
	if p > 100 {
		p = 100
	}
	return utils.Round2(p)
}
