package integrations

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type tiktokReportRow struct {
	Dimensions struct {
		StatTimeDay string `json:"stat_time_day"`
	} `json:"dimensions"`
	Metrics struct {
		Spend string `json:"spend"`
	} `json:"metrics"`
}

type tiktokReportResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		List []tiktokReportRow `json:"list"`
	} `json:"data"`
}

// FetchTikTokDailySpend pobiera dzienny raport wydatkow konta
// reklamowego za dany miesiac.
func FetchTikTokDailySpend(advertiserID, accessToken string, year, month int) (map[string]float64, error) {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	params := url.Values{}
	params.Set("advertiser_id", advertiserID)
	params.Set("report_type", "BASIC")
	params.Set("data_level", "AUCTION_ADVERTISER")
	params.Set("dimensions", `["stat_time_day"]`)
	params.Set("metrics", `["spend"]`)
	params.Set("start_date", fmt.Sprintf("%04d-%02d-01", year, month))
	params.Set("end_date", fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay))
	params.Set("page_size", "200")

	req, err := http.NewRequest(http.MethodGet,
		"https://business-api.tiktok.com/open_api/v1.3/report/integrated/get/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Access-Token", accessToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tiktok odpowiedzial statusem %d", resp.StatusCode)
	}

	var body tiktokReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("nieczytelna odpowiedz tiktok: %w", err)
	}
	if body.Code != 0 {
		return nil, fmt.Errorf("tiktok: %s (kod %d)", body.Message, body.Code)
	}

	days := make(map[string]float64)
	for _, row := range body.Data.List {
		if row.Dimensions.StatTimeDay == "" {
			continue
		}
		spend, err := strconv.ParseFloat(row.Metrics.Spend, 64)
		if err != nil {
			continue
		}
		// stat_time_day przychodzi jako "2026-02-25 00:00:00"
		day := row.Dimensions.StatTimeDay
		if len(day) > 10 {
			day = day[:10]
		}
		days[day] += spend
	}
	return days, nil
}
