package service

import (
	"bytes"
	"fmt"

	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// VatBreakdown rozbija kwote brutto na netto i VAT dla danej stawki.
func VatBreakdown(brutto, vatRate float64) (netto, vatAmount float64) {
	netto = utils.NetFromGross(brutto, vatRate)
	vatAmount = utils.Round2(brutto - netto)
	return netto, vatAmount
}

// LedgerRowsFromOrder buduje wpisy ewidencji z pozycji zamowienia,
// po jednym na pozycje. Zamowienie bez pozycji daje jeden wpis na
// cala kwote.
func LedgerRowsFromOrder(order models.Order, vatRate float64) []models.SalesRecord {
	orderID := order.ID
	if len(order.Items) == 0 {
		netto, vat := VatBreakdown(order.Total, vatRate)
		return []models.SalesRecord{{
			ID:          uuid.NewString(),
			ShopID:      order.ShopID,
			OrderID:     &orderID,
			OrderNumber: order.OrderNumber,
			Date:        order.Date,
			ProductName: "Zamowienie " + order.OrderNumber,
			Quantity:    1,
			Netto:       netto,
			VatRate:     vatRate,
			VatAmount:   vat,
			Brutto:      utils.Round2(order.Total),
			Source:      "auto",
		}}
	}

	rows := make([]models.SalesRecord, 0, len(order.Items))
	for _, item := range order.Items {
		brutto := utils.Round2(item.Price * float64(item.Quantity))
		netto, vat := VatBreakdown(brutto, vatRate)
		rows = append(rows, models.SalesRecord{
			ID:          uuid.NewString(),
			ShopID:      order.ShopID,
			OrderID:     &orderID,
			OrderNumber: order.OrderNumber,
			Date:        order.Date,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Netto:       netto,
			VatRate:     vatRate,
			VatAmount:   vat,
			Brutto:      brutto,
			Source:      "auto",
		})
	}
	return rows
}

// RenderLedgerPDF rysuje ewidencje sprzedazy bezrachunkowej z naglowkiem
// firmy. Title to np. "Ewidencja sprzedazy 02/2026".
func RenderLedgerPDF(title string, company models.CompanySettings, records []models.SalesRecord) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if company.Name != "" {
		pdf.CellFormat(0, 5, company.Name, "", 1, "C", false, 0, "")
	}
	if company.NIP != "" {
		pdf.CellFormat(0, 5, "NIP: "+company.NIP, "", 1, "C", false, 0, "")
	}
	if company.Address != "" {
		addr := company.Address
		if company.PostalCode != "" || company.City != "" {
			addr = addr + ", " + company.PostalCode + " " + company.City
		}
		pdf.CellFormat(0, 5, addr, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{12, 24, 30, 80, 14, 28, 18, 28, 28}
	headers := []string{"Lp.", "Data", "Nr zamowienia", "Produkt", "Ilosc", "Netto", "VAT %", "Kwota VAT", "Brutto"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var totalNetto, totalVat, totalBrutto float64
	for i, r := range records {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			r.Date,
			r.OrderNumber,
			r.ProductName,
			fmt.Sprintf("%d", r.Quantity),
			fmt.Sprintf("%.2f", r.Netto),
			fmt.Sprintf("%.0f", r.VatRate),
			fmt.Sprintf("%.2f", r.VatAmount),
			fmt.Sprintf("%.2f", r.Brutto),
		}
		for j, cell := range cells {
			align := "L"
			if j == 0 || j == 4 {
				align = "C"
			} else if j >= 5 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		totalNetto += r.Netto
		totalVat += r.VatAmount
		totalBrutto += r.Brutto
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 7, "Razem", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", utils.Round2(totalNetto)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 7, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[7], 7, fmt.Sprintf("%.2f", utils.Round2(totalVat)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 7, fmt.Sprintf("%.2f", utils.Round2(totalBrutto)), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderLedgerExcel buduje arkusz xlsx z tymi samymi kolumnami co PDF.
func RenderLedgerExcel(records []models.SalesRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Lp.", "Data", "Nr zamowienia", "Produkt", "Ilosc", "Netto", "VAT %", "Kwota VAT", "Brutto"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	var totalNetto, totalVat, totalBrutto float64
	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheet, "A"+fmt.Sprint(row), i+1)
		f.SetCellValue(sheet, "B"+fmt.Sprint(row), r.Date)
		f.SetCellValue(sheet, "C"+fmt.Sprint(row), r.OrderNumber)
		f.SetCellValue(sheet, "D"+fmt.Sprint(row), r.ProductName)
		f.SetCellValue(sheet, "E"+fmt.Sprint(row), r.Quantity)
		f.SetCellValue(sheet, "F"+fmt.Sprint(row), r.Netto)
		f.SetCellValue(sheet, "G"+fmt.Sprint(row), r.VatRate)
		f.SetCellValue(sheet, "H"+fmt.Sprint(row), r.VatAmount)
		f.SetCellValue(sheet, "I"+fmt.Sprint(row), r.Brutto)
		totalNetto += r.Netto
		totalVat += r.VatAmount
		totalBrutto += r.Brutto
	}

	sumRow := len(records) + 2
	f.SetCellValue(sheet, "E"+fmt.Sprint(sumRow), "Razem")
	f.SetCellValue(sheet, "F"+fmt.Sprint(sumRow), utils.Round2(totalNetto))
	f.SetCellValue(sheet, "H"+fmt.Sprint(sumRow), utils.Round2(totalVat))
	f.SetCellValue(sheet, "I"+fmt.Sprint(sumRow), utils.Round2(totalBrutto))
	return f, nil
}
