package routes

import (
	"github.com/Zzzzzsaz/ecommifyy/controllers"
	"github.com/Zzzzzsaz/ecommifyy/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api", middlewares.Identity())
	{
		api.POST("/auth/login", controllers.Login)

		api.GET("/monthly-stats", controllers.GetMonthlyStats)
		api.GET("/combined-monthly-stats", controllers.GetCombinedMonthlyStats)
		api.GET("/weekly-stats", controllers.GetWeeklyStats)

		incomes := api.Group("/incomes")
		{
			incomes.POST("", controllers.CreateIncome)
			incomes.GET("", controllers.GetIncomes)
			incomes.DELETE("/:id", controllers.DeleteIncome)
		}

		costs := api.Group("/costs")
		{
			costs.POST("", controllers.CreateCost)
			costs.GET("", controllers.GetCosts)
			costs.PUT("/:id", controllers.UpdateCost)
			costs.DELETE("/:id", controllers.DeleteCost)
		}

		columns := api.Group("/custom-columns")
		{
			columns.POST("", controllers.CreateCustomColumn)
			columns.GET("", controllers.GetCustomColumns)
			columns.PUT("/:id", controllers.UpdateCustomColumn)
			columns.DELETE("/:id", controllers.DeleteCustomColumn)
		}

		shops := api.Group("/shops")
		{
			shops.GET("", controllers.GetShops)
			shops.POST("", controllers.CreateShop)
			shops.PUT("/:id", controllers.UpdateShop)
			shops.DELETE("/:id", controllers.DeleteShop)
		}

		api.GET("/app-settings", controllers.GetAppSettings)
		api.PUT("/app-settings", controllers.UpdateAppSettings)
		api.GET("/company-settings", controllers.GetCompanySettings)
		api.PUT("/company-settings", controllers.UpdateCompanySettings)

		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		fulfillment := api.Group("/fulfillment")
		{
			fulfillment.POST("", controllers.CreateFulfillment)
			fulfillment.GET("", controllers.GetFulfillment)
			fulfillment.GET("/reminder-check", controllers.GetReminderCheck)
			fulfillment.POST("/bulk-status", controllers.BulkFulfillmentStatus)
			fulfillment.PUT("/:id", controllers.UpdateFulfillment)
			fulfillment.DELETE("/:id", controllers.DeleteFulfillment)
		}

		fulfillmentNotes := api.Group("/fulfillment-notes")
		{
			fulfillmentNotes.POST("", controllers.CreateFulfillmentNote)
			fulfillmentNotes.GET("", controllers.GetFulfillmentNotes)
			fulfillmentNotes.DELETE("/:id", controllers.DeleteFulfillmentNote)
		}

		returns := api.Group("/returns")
		{
			returns.POST("", controllers.CreateReturn)
			returns.GET("", controllers.GetReturns)
			returns.DELETE("/:id", controllers.DeleteReturn)
		}

		salesRecords := api.Group("/sales-records")
		{
			salesRecords.POST("", controllers.CreateSalesRecord)
			salesRecords.GET("", controllers.GetSalesRecords)
			salesRecords.DELETE("/:id", controllers.DeleteSalesRecord)
			salesRecords.POST("/generate-from-orders", controllers.GenerateSalesRecords)
			salesRecords.GET("/pdf/daily", controllers.DailyLedgerPDF)
			salesRecords.GET("/pdf/monthly", controllers.MonthlyLedgerPDF)
			salesRecords.GET("/export/monthly", controllers.MonthlyLedgerExcel)
		}

		receipts := api.Group("/receipts")
		{
			receipts.POST("", controllers.CreateReceipt)
			receipts.GET("", controllers.GetReceipts)
			receipts.POST("/from-order/:order_id", controllers.CreateReceiptFromOrder)
			receipts.DELETE("/:id", controllers.DeleteReceipt)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", controllers.CreateTask)
			tasks.GET("", controllers.GetTasks)
			tasks.PUT("/:id", controllers.UpdateTask)
			tasks.DELETE("/:id", controllers.DeleteTask)
		}

		notes := api.Group("/notes")
		{
			notes.POST("", controllers.CreateNote)
			notes.GET("", controllers.GetNotes)
			notes.DELETE("/:id", controllers.DeleteNote)
		}

		reminders := api.Group("/reminders")
		{
			reminders.POST("", controllers.CreateReminder)
			reminders.GET("", controllers.GetReminders)
			reminders.PUT("/:id", controllers.UpdateReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
		}

		shopifyConfigs := api.Group("/shopify-configs")
		{
			shopifyConfigs.GET("", controllers.GetShopifyConfigs)
			shopifyConfigs.POST("", controllers.UpsertShopifyConfig)
			shopifyConfigs.DELETE("/:shop_id", controllers.DeleteShopifyConfig)
		}

		tiktokConfigs := api.Group("/tiktok-configs")
		{
			tiktokConfigs.GET("", controllers.GetTikTokConfigs)
			tiktokConfigs.POST("", controllers.CreateTikTokConfig)
			tiktokConfigs.PUT("/:id", controllers.UpdateTikTokConfig)
			tiktokConfigs.DELETE("/:id", controllers.DeleteTikTokConfig)
		}

		sync := api.Group("/sync")
		{
			sync.POST("/shopify/:shop_id", controllers.SyncShopify)
			sync.POST("/tiktok/:config_id", controllers.SyncTikTok)
			sync.POST("/all", controllers.SyncAll)
		}
	}
}
