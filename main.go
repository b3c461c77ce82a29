package main

import (
	"os"
	"strings"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/routes"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		config.GetLogger().SetLevel(level)
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Income{},
		&models.Cost{},
		&models.CustomColumn{},
		&models.AppSettings{},
		&models.CompanySettings{},
		&models.Product{},
		&models.Order{},
		&models.Fulfillment{},
		&models.FulfillmentNote{},
		&models.Return{},
		&models.SalesRecord{},
		&models.Receipt{},
		&models.Task{},
		&models.CalendarNote{},
		&models.Reminder{},
		&models.ShopifyConfig{},
		&models.TikTokConfig{},
	)

	config.SeedDefaults()

	if s := os.Getenv("SESSION_JWT_SECRET"); s != "" {
		utils.SessionSecret = []byte(s)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r)

	r.GET("/api/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Ecommify API dziala"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
