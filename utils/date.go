package utils

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// MonthPrefix buduje prefiks "YYYY-MM" do filtrowania dat po LIKE.
func MonthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func DayString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func DaysInMonth(year, month int) int {
	// dzien 0 nastepnego miesiaca = ostatni dzien tego
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SourceMonth wycina "YYYY-MM" z daty dziennej.
func SourceMonth(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

// PrevMonth zwraca etykiete poprzedniego miesiaca kalendarzowego.
func PrevMonth(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0).Format("2006-01")
}
