package integrations

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Jeden wspolny klient na oba integracje; wolny partner po prostu
// spowalnia dane zadanie, bez retry.
var httpClient = &http.Client{Timeout: 30 * time.Second}

type shopifyOrder struct {
	TotalPrice string `json:"total_price"`
	CreatedAt  string `json:"created_at"`
}

type shopifyOrdersResponse struct {
	Orders []shopifyOrder `json:"orders"`
}

// FetchShopifyDailyTotals pobiera oplacone zamowienia miesiaca i
// zwraca sume brutto na dzien oraz liczbe zamowien.
func FetchShopifyDailyTotals(storeDomain, accessToken string, year, month int) (map[string]float64, int, error) {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	url := fmt.Sprintf(
		"https://%s/admin/api/2024-01/orders.json?status=any&financial_status=paid&limit=250&created_at_min=%04d-%02d-01T00:00:00Z&created_at_max=%04d-%02d-%02dT23:59:59Z",
		storeDomain, year, month, year, month, lastDay,
	)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("shopify odpowiedzial statusem %d", resp.StatusCode)
	}

	var body shopifyOrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, fmt.Errorf("nieczytelna odpowiedz shopify: %w", err)
	}

	days := make(map[string]float64)
	for _, order := range body.Orders {
		if len(order.CreatedAt) < 10 {
			continue
		}
		amount, err := strconv.ParseFloat(order.TotalPrice, 64)
		if err != nil {
			continue
		}
		days[order.CreatedAt[:10]] += amount
	}
	return days, len(body.Orders), nil
}
