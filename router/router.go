package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/controllers"
	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, sessions *floorplan.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	zoneCtrl := controllers.NewZoneController(db)
	orderCtrl := controllers.NewOrderController(db)
	qrCtrl := controllers.NewQRController(db)
	planCtrl := controllers.NewFloorPlanController(db, sessions)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login/register dengan rate limiter ketat
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- GUEST (tanpa auth) --
	// Scan QR lalu order; meja inactive ditolak di controller.
	r.GET("/tables/:table_id/scan", qrCtrl.ScanTable)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// TABLES
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PUT("/tables/:table_id", tableCtrl.UpdateTable)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	// Drag-end position save; batch interface, satu elemen per drag.
	auth.PATCH("/tables/positions", tableCtrl.UpdateTablePositions)
	auth.POST("/tables/:table_id/qr", qrCtrl.GenerateTableQR)

	// ZONES
	auth.GET("/zones", zoneCtrl.GetAllZones)
	auth.POST("/zones", zoneCtrl.CreateZone)
	auth.PUT("/zones/:zone_id", zoneCtrl.UpdateZone)
	auth.DELETE("/zones/:zone_id", zoneCtrl.DeleteZone)

	// ORDERS (collaborator surface untuk occupancy)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)

	// FLOOR PLAN sessions (selection, zone filter, viewport, scene)
	auth.POST("/floorplan/sessions", planCtrl.CreateSession)
	auth.DELETE("/floorplan/sessions/:session_id", planCtrl.CloseSession)
	auth.GET("/floorplan/sessions/:session_id/scene", planCtrl.GetScene)
	auth.POST("/floorplan/sessions/:session_id/select", planCtrl.SelectTable)
	auth.POST("/floorplan/sessions/:session_id/deselect", planCtrl.DeselectTable)
	auth.POST("/floorplan/sessions/:session_id/zone-filter", planCtrl.SetZoneFilter)
	auth.POST("/floorplan/sessions/:session_id/viewport/zoom-in", planCtrl.ZoomIn)
	auth.POST("/floorplan/sessions/:session_id/viewport/zoom-out", planCtrl.ZoomOut)
	auth.POST("/floorplan/sessions/:session_id/viewport/reset", planCtrl.ResetView)
	auth.POST("/floorplan/sessions/:session_id/viewport/pan", planCtrl.Pan)
	auth.POST("/floorplan/sessions/:session_id/viewport/resize", planCtrl.Resize)
	auth.GET("/floorplan/stats", planCtrl.GetStats)

	// WebSocket untuk live update floor plan
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/floorplan", controllers.LiveHandler)
	}

	return r
}
