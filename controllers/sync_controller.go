package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/integrations"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	shopifyTag = "[Shopify] Auto-sync"
	tiktokTag  = "[TikTok:%s] Auto-sync"
)

func GetShopifyConfigs(c *gin.Context) {
	var configs []models.ShopifyConfig
	if err := config.DB.Order("shop_id").Find(&configs).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// UpsertShopifyConfig nadpisuje istniejaca konfiguracje sklepu.
func UpsertShopifyConfig(c *gin.Context) {
	var input struct {
		ShopID      int    `json:"shop_id"`
		StoreDomain string `json:"store_domain"`
		AccessToken string `json:"access_token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ShopID < 1 || input.StoreDomain == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	var cfg models.ShopifyConfig
	if err := config.DB.Where("shop_id = ?", input.ShopID).First(&cfg).Error; err != nil {
		cfg = models.ShopifyConfig{ID: uuid.NewString(), ShopID: input.ShopID}
	}
	cfg.StoreDomain = input.StoreDomain
	if input.AccessToken != "" {
		cfg.AccessToken = input.AccessToken
	}

	if err := config.DB.Save(&cfg).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func DeleteShopifyConfig(c *gin.Context) {
	var cfg models.ShopifyConfig
	if err := config.DB.Where("shop_id = ?", c.Param("shop_id")).First(&cfg).Error; err != nil {
		utils.NotFound(c, "Brak konfiguracji Shopify dla sklepu")
		return
	}
	if err := config.DB.Delete(&cfg).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func GetTikTokConfigs(c *gin.Context) {
	var configs []models.TikTokConfig
	if err := config.DB.Order("created_at").Find(&configs).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

func CreateTikTokConfig(c *gin.Context) {
	var input struct {
		Name          string `json:"name"`
		AdvertiserID  string `json:"advertiser_id"`
		AccessToken   string `json:"access_token"`
		LinkedShopIDs []int  `json:"linked_shop_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.AdvertiserID == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	cfg := models.TikTokConfig{
		ID:            uuid.NewString(),
		Name:          input.Name,
		AdvertiserID:  input.AdvertiserID,
		AccessToken:   input.AccessToken,
		LinkedShopIDs: input.LinkedShopIDs,
	}
	if err := config.DB.Create(&cfg).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func UpdateTikTokConfig(c *gin.Context) {
	var cfg models.TikTokConfig
	if err := config.DB.Where("id = ?", c.Param("id")).First(&cfg).Error; err != nil {
		utils.NotFound(c, "Brak konfiguracji TikTok")
		return
	}

	var input struct {
		Name          *string `json:"name"`
		AdvertiserID  *string `json:"advertiser_id"`
		AccessToken   *string `json:"access_token"`
		LinkedShopIDs *[]int  `json:"linked_shop_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Name != nil {
		cfg.Name = *input.Name
	}
	if input.AdvertiserID != nil {
		cfg.AdvertiserID = *input.AdvertiserID
	}
	if input.AccessToken != nil && *input.AccessToken != "" {
		cfg.AccessToken = *input.AccessToken
	}
	if input.LinkedShopIDs != nil {
		cfg.LinkedShopIDs = *input.LinkedShopIDs
	}

	if err := config.DB.Save(&cfg).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func DeleteTikTokConfig(c *gin.Context) {
	var cfg models.TikTokConfig
	if err := config.DB.Where("id = ?", c.Param("id")).First(&cfg).Error; err != nil {
		utils.NotFound(c, "Brak konfiguracji TikTok")
		return
	}
	if err := config.DB.Delete(&cfg).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// runShopifySync podmienia wpisy "[Shopify]" danego sklepu i miesiaca
// na swieze sumy dzienne. Blad partnera wraca jako payload, nie jako
// blad HTTP.
func runShopifySync(cfg *models.ShopifyConfig, year, month int) gin.H {
	days, orders, err := integrations.FetchShopifyDailyTotals(cfg.StoreDomain, cfg.AccessToken, year, month)
	if err != nil {
		config.LogError("sync", "runShopifySync", cfg.StoreDomain, err)
		return gin.H{"status": "error", "detail": err.Error()}
	}

	prefix := utils.MonthPrefix(year, month)
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shop_id = ? AND date LIKE ? AND description = ?",
			cfg.ShopID, prefix+"%", shopifyTag).Delete(&models.Income{}).Error; err != nil {
			return err
		}
		dates := make([]string, 0, len(days))
		for date := range days {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			income := models.Income{
				ID:          uuid.NewString(),
				ShopID:      cfg.ShopID,
				Date:        date,
				Amount:      utils.Round2(days[date]),
				Description: shopifyTag,
			}
			if err := tx.Create(&income).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return gin.H{"status": "error", "detail": err.Error()}
	}

	now := time.Now()
	cfg.LastSync = &now
	config.DB.Save(cfg)

	return gin.H{"status": "ok", "orders": orders, "days": len(days)}
}

// runTikTokSync dzieli dzienny spend konta po rowno miedzy podpiete
// sklepy i podmienia otagowane koszty kategorii tiktok.
func runTikTokSync(cfg *models.TikTokConfig, year, month int) gin.H {
	days, err := integrations.FetchTikTokDailySpend(cfg.AdvertiserID, cfg.AccessToken, year, month)
	if err != nil {
		config.LogError("sync", "runTikTokSync", cfg.Name, err)
		return gin.H{"status": "error", "detail": err.Error()}
	}
	if len(cfg.LinkedShopIDs) == 0 {
		return gin.H{"status": "error", "detail": "Konfiguracja nie ma podpietych sklepow"}
	}

	tag := fmt.Sprintf(tiktokTag, cfg.Name)
	prefix := utils.MonthPrefix(year, month)
	entries := 0
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ? AND date LIKE ? AND description = ?",
			models.CostCategoryTikTok, prefix+"%", tag).Delete(&models.Cost{}).Error; err != nil {
			return err
		}
		dates := make([]string, 0, len(days))
		for date := range days {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		share := float64(len(cfg.LinkedShopIDs))
		for _, date := range dates {
			for _, shopID := range cfg.LinkedShopIDs {
				cost := models.Cost{
					ID:          uuid.NewString(),
					ShopID:      shopID,
					Date:        date,
					Category:    models.CostCategoryTikTok,
					Amount:      utils.Round2(days[date] / share),
					Description: tag,
				}
				if err := tx.Create(&cost).Error; err != nil {
					return err
				}
				entries++
			}
		}
		return nil
	})
	if err != nil {
		return gin.H{"status": "error", "detail": err.Error()}
	}

	now := time.Now()
	cfg.LastSync = &now
	config.DB.Save(cfg)

	return gin.H{"status": "ok", "rows": len(days), "entries": entries}
}

func SyncShopify(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Param("shop_id"))
	if err != nil {
		utils.BadRequest(c, "Nieprawidlowe ID sklepu")
		return
	}
	year, month, ok := statsParams(c)
	if !ok {
		utils.BadRequest(c, "Nieprawidlowy rok lub miesiac")
		return
	}

	var cfg models.ShopifyConfig
	if err := config.DB.Where("shop_id = ?", shopID).First(&cfg).Error; err != nil {
		utils.NotFound(c, "Brak konfiguracji Shopify dla sklepu")
		return
	}
	c.JSON(http.StatusOK, runShopifySync(&cfg, year, month))
}

func SyncTikTok(c *gin.Context) {
	year, month, ok := statsParams(c)
	if !ok {
		utils.BadRequest(c, "Nieprawidlowy rok lub miesiac")
		return
	}

	var cfg models.TikTokConfig
	if err := config.DB.Where("id = ?", c.Param("config_id")).First(&cfg).Error; err != nil {
		utils.NotFound(c, "Brak konfiguracji TikTok")
		return
	}
	c.JSON(http.StatusOK, runTikTokSync(&cfg, year, month))
}

// SyncAll przelatuje wszystkie konfiguracje obu platform. Blad jednej
// nie przerywa reszty, wyniki wracaja per pozycja.
func SyncAll(c *gin.Context) {
	year, month, ok := statsParams(c)
	if !ok {
		utils.BadRequest(c, "Nieprawidlowy rok lub miesiac")
		return
	}

	var shopifyConfigs []models.ShopifyConfig
	if err := config.DB.Find(&shopifyConfigs).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	var tiktokConfigs []models.TikTokConfig
	if err := config.DB.Find(&tiktokConfigs).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	shopifyResults := make([]gin.H, 0, len(shopifyConfigs))
	for i := range shopifyConfigs {
		result := runShopifySync(&shopifyConfigs[i], year, month)
		result["shop_id"] = shopifyConfigs[i].ShopID
		shopifyResults = append(shopifyResults, result)
	}
	tiktokResults := make([]gin.H, 0, len(tiktokConfigs))
	for i := range tiktokConfigs {
		result := runTikTokSync(&tiktokConfigs[i], year, month)
		result["name"] = tiktokConfigs[i].Name
		tiktokResults = append(tiktokResults, result)
	}

	c.JSON(http.StatusOK, gin.H{"shopify": shopifyResults, "tiktok": tiktokResults})
}
