package controllers

import (
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
)

// Login weryfikuje 4-cyfrowy PIN i oddaje od razu komplet danych
// startowych dla frontendu: usera, sklepy i ustawienia.
func Login(c *gin.Context) {
	var input struct {
		PIN string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	var user models.User
	if err := config.DB.Where("pin = ?", input.PIN).First(&user).Error; err != nil {
		utils.Detail(c, http.StatusUnauthorized, "Nieprawidlowy PIN")
		return
	}

	var shops []models.Shop
	if err := config.DB.Order("id").Find(&shops).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	settings := loadAppSettings()

	token, err := utils.GenerateToken(user.ID, user.Name, user.Username)
	if err != nil {
		utils.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"shops":    shops,
		"settings": settings,
		"token":    token,
	})
}
