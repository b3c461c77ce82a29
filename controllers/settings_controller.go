package controllers

import (
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
)

// loadAppSettings czyta singleton, a gdy go brakuje, odtwarza domyslne
// wartosci.
func loadAppSettings() models.AppSettings {
	var settings models.AppSettings
	if err := config.DB.First(&settings, 1).Error; err != nil {
		settings = models.AppSettings{
			ID:            1,
			TargetRevenue: 250000,
			VatRate:       23,
			Currency:      "PLN",
			ProfitSplit:   2,
			AppName:       "Ecommify Campaign Calculator",
		}
		config.DB.Create(&settings)
	}
	return settings
}

func GetAppSettings(c *gin.Context) {
	c.JSON(http.StatusOK, loadAppSettings())
}

func UpdateAppSettings(c *gin.Context) {
	settings := loadAppSettings()

	var input struct {
		TargetRevenue *float64 `json:"target_revenue"`
		VatRate       *float64 `json:"vat_rate"`
		Currency      *string  `json:"currency"`
		ProfitSplit   *int     `json:"profit_split"`
		AppName       *string  `json:"app_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.TargetRevenue != nil {
		settings.TargetRevenue = *input.TargetRevenue
	}
	if input.VatRate != nil {
		settings.VatRate = *input.VatRate
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.ProfitSplit != nil {
		settings.ProfitSplit = *input.ProfitSplit
		if settings.ProfitSplit < 1 {
			settings.ProfitSplit = 1
		}
	}
	if input.AppName != nil {
		settings.AppName = *input.AppName
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func loadCompanySettings() models.CompanySettings {
	var company models.CompanySettings
	if err := config.DB.First(&company, 1).Error; err != nil {
		company = models.CompanySettings{ID: 1}
		config.DB.Create(&company)
	}
	return company
}

func GetCompanySettings(c *gin.Context) {
	c.JSON(http.StatusOK, loadCompanySettings())
}

func UpdateCompanySettings(c *gin.Context) {
	company := loadCompanySettings()

	var input struct {
		Name       *string `json:"name"`
		NIP        *string `json:"nip"`
		Address    *string `json:"address"`
		City       *string `json:"city"`
		PostalCode *string `json:"postal_code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.NIP != nil {
		company.NIP = *input.NIP
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.City != nil {
		company.City = *input.City
	}
	if input.PostalCode != nil {
		company.PostalCode = *input.PostalCode
	}

	if err := config.DB.Save(&company).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
