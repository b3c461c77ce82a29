package utils

import "fmt"

// Numer paragonu: sekwencja w obrebie miesiaca, format NNNN/MM/RRRR.
func FormatReceiptNumber(seq int64, month, year int) string {
	return fmt.Sprintf("%04d/%02d/%d", seq, month, year)
}
