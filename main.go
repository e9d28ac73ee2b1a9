package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/tablemap/floorplan-app/config"
	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/middlewares"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/router"
	"github.com/tablemap/floorplan-app/utils"
	"gorm.io/gorm"
)

const sessionMaxAge = time.Hour

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Editor sessions are in-memory only; sweep the ones staff abandoned.
	sessions := floorplan.NewManager()
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if removed := sessions.CleanupStale(sessionMaxAge); removed > 0 {
				utils.InfoLogger.Printf("Cleaned up %d stale floor plan session(s)", removed)
			}
		}
	}()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, sessions)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Zone{},
		&models.Table{},
		&models.Order{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
