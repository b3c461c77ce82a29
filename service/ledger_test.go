package service

import (
	"testing"

	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVatBreakdown(t *testing.T) {
	netto, vat := VatBreakdown(123, 23)
	assert.Equal(t, 100.0, netto)
	assert.Equal(t, 23.0, vat)

	netto, vat = VatBreakdown(100, 23)
	assert.Equal(t, 81.30, netto)
	assert.Equal(t, 18.70, vat)
}

func TestLedgerRowsFromOrderPerItem(t *testing.T) {
	order := models.Order{
		ID:          "ord-1",
		OrderNumber: "1001",
		ShopID:      2,
		Date:        "2026-02-25",
		Total:       400,
		Items: []models.OrderItem{
			{Name: "Krem", Quantity: 2, Price: 100},
			{Name: "Serum", Quantity: 2, Price: 100},
		},
	}

	rows := LedgerRowsFromOrder(order, 23)

	require.Len(t, rows, 2)
	assert.Equal(t, "Krem", rows[0].ProductName)
	assert.Equal(t, 2, rows[0].Quantity)
	assert.Equal(t, 200.0, rows[0].Brutto)
	assert.Equal(t, 162.60, rows[0].Netto)
	assert.Equal(t, 37.40, rows[0].VatAmount)
	assert.Equal(t, "auto", rows[0].Source)
	require.NotNil(t, rows[0].OrderID)
	assert.Equal(t, "ord-1", *rows[0].OrderID)
}

func TestLedgerRowsFromOrderWithoutItems(t *testing.T) {
	order := models.Order{ID: "ord-2", OrderNumber: "1002", ShopID: 1, Date: "2026-02-25", Total: 246}

	rows := LedgerRowsFromOrder(order, 23)

	require.Len(t, rows, 1)
	assert.Equal(t, 246.0, rows[0].Brutto)
	assert.Equal(t, 200.0, rows[0].Netto)
	assert.Equal(t, 46.0, rows[0].VatAmount)
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestRenderLedgerPDF(t *testing.T) {
	company := models.CompanySettings{Name: "Ecommify Sp. z o.o.", NIP: "1234567890"}
	records := []models.SalesRecord{
		{Date: "2026-02-01", OrderNumber: "1001", ProductName: "Krem", Quantity: 1, Netto: 81.30, VatRate: 23, VatAmount: 18.70, Brutto: 100},
	}

	data, err := RenderLedgerPDF("Ewidencja sprzedazy 02/2026", company, records)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderLedgerExcel(t *testing.T) {
	records := []models.SalesRecord{
		{Date: "2026-02-01", OrderNumber: "1001", ProductName: "Krem", Quantity: 1, Netto: 81.30, VatRate: 23, VatAmount: 18.70, Brutto: 100},
	}

	f, err := RenderLedgerExcel(records)
	require.NoError(t, err)

	name, err := f.GetCellValue("Sheet1", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Krem", name)
}
