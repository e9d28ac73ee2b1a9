package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tablemap/floorplan-app/controllers"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
)

func setupQRRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	qrCtrl := controllers.NewQRController(db)
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/tables/:table_id/qr", qrCtrl.GenerateTableQR)
	router.GET("/tables/:table_id/scan", qrCtrl.ScanTable)
	router.POST("/orders", orderCtrl.CreateOrder)
	return router
}

func generateToken(t *testing.T, router *gin.Engine, tableID uint) string {
	w := doJSON(router, "POST", "/tables/"+strconv.Itoa(int(tableID))+"/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestQRGenerateAndScanRoundTrip(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	table := models.Table{TableNumber: "Q1", Seats: 2, IsActive: true}
	db.Create(&table)

	router := setupQRRouter(db)
	token := generateToken(t, router, table.ID)

	w := doJSON(router, "GET", "/tables/"+strconv.Itoa(int(table.ID))+"/scan?token="+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	scanned := data["table"].(map[string]interface{})
	assert.Equal(t, "Q1", scanned["table_number"])
}

func TestScanRejectsWrongTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	first := models.Table{TableNumber: "Q1", Seats: 2, IsActive: true}
	second := models.Table{TableNumber: "Q2", Seats: 2, IsActive: true}
	db.Create(&first)
	db.Create(&second)

	router := setupQRRouter(db)
	token := generateToken(t, router, first.ID)

	// Token milik meja pertama tidak berlaku untuk meja kedua.
	w := doJSON(router, "GET", "/tables/"+strconv.Itoa(int(second.ID))+"/scan?token="+token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScanRejectsInactiveTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	table := models.Table{TableNumber: "Q3", Seats: 2, IsActive: true}
	db.Create(&table)

	router := setupQRRouter(db)
	token := generateToken(t, router, table.ID)

	// Meja dinonaktifkan setelah QR dicetak.
	db.Model(&table).Update("is_active", false)

	w := doJSON(router, "GET", "/tables/"+strconv.Itoa(int(table.ID))+"/scan?token="+token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQRGenerateRejectsInactiveTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	table := models.Table{TableNumber: "Q4", Seats: 2, IsActive: false}
	db.Create(&table)

	router := setupQRRouter(db)
	w := doJSON(router, "POST", "/tables/"+strconv.Itoa(int(table.ID))+"/qr", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGuestOrderWithQRToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	table := models.Table{TableNumber: "Q5", Seats: 4, IsActive: true}
	db.Create(&table)

	router := setupQRRouter(db)
	token := generateToken(t, router, table.ID)

	w := doJSON(router, "POST", "/orders", map[string]interface{}{
		"table_id": table.ID,
		"qr_token": token,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.Order{}).Where("table_id = ?", table.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGuestOrderWithoutTokenRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	table := models.Table{TableNumber: "Q6", Seats: 4, IsActive: true}
	db.Create(&table)

	router := setupQRRouter(db)
	w := doJSON(router, "POST", "/orders", map[string]interface{}{
		"table_id": table.ID,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
