package config

import (
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/google/uuid"
)

func SeedDefaults() {
	seedShops()
	seedUsers()
	seedSettings()
}

func seedShops() {
	defaults := []models.Shop{
		{ID: 1, Name: "ecom1", Color: "#6366f1", IsActive: true},
		{ID: 2, Name: "ecom2", Color: "#10b981", IsActive: true},
		{ID: 3, Name: "ecom3", Color: "#f59e0b", IsActive: true},
		{ID: 4, Name: "ecom4", Color: "#ec4899", IsActive: true},
	}
	for _, s := range defaults {
		var cnt int64
		DB.Model(&models.Shop{}).Where("id = ?", s.ID).Count(&cnt)
		if cnt == 0 {
			DB.Create(&s)
		}
	}
}

func seedUsers() {
	defaults := []models.User{
		{PIN: "2409", Name: "Admin", Username: "admin", IsAdmin: true},
		{PIN: "2609", Name: "Kacper", Username: "kacper"},
		{PIN: "2509", Name: "Szymon", Username: "szymon"},
	}
	for _, u := range defaults {
		var cnt int64
		DB.Model(&models.User{}).Where("username = ?", u.Username).Count(&cnt)
		if cnt == 0 {
			u.ID = uuid.NewString()
			DB.Create(&u)
		}
	}
}

func seedSettings() {
	var cnt int64
	DB.Model(&models.AppSettings{}).Count(&cnt)
	if cnt == 0 {
		DB.Create(&models.AppSettings{
			ID:            1,
			TargetRevenue: 250000,
			VatRate:       23,
			Currency:      "PLN",
			ProfitSplit:   2,
			AppName:       "Ecommify Campaign Calculator",
		})
	}
	DB.Model(&models.CompanySettings{}).Count(&cnt)
	if cnt == 0 {
		DB.Create(&models.CompanySettings{ID: 1})
	}
}
