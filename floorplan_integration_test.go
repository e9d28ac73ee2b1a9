package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/router"
	"github.com/tablemap/floorplan-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestFloorPlanEndToEnd menguji flow utama dashboard:
// 1. Login staff -> token
// 2. Buat zone "Patio" + meja 4 kursi di dalamnya
// 3. Buka floor plan session, filter ke Patio, pilih meja
// 4. Drag meja ke posisi baru -> tersimpan di DB
// 5. Generate QR, guest order -> meja menjadi occupied di scene
func TestFloorPlanEndToEnd(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db, floorplan.NewManager())

	token := loginIntegration(t, r)

	zoneID := createZoneIntegration(t, r, token, "Patio")
	tableID := createTableIntegration(t, r, token, zoneID)

	sessionID := openSessionIntegration(t, r, token)

	// Filter ke Patio lalu pilih meja.
	res := doAuthJSON(t, r, "POST", "/admin/floorplan/sessions/"+sessionID+"/zone-filter", token,
		map[string]interface{}{"zone_id": zoneID})
	assert.Equal(t, http.StatusOK, res.Code)

	res = doAuthJSON(t, r, "POST", "/admin/floorplan/sessions/"+sessionID+"/select", token,
		map[string]interface{}{"table_id": tableID})
	assert.Equal(t, http.StatusOK, res.Code)

	// Drag-end: simpan posisi baru (batch satu elemen).
	res = doAuthJSON(t, r, "PATCH", "/admin/tables/positions", token,
		[]map[string]interface{}{{"id": tableID, "x": 150, "y": 250}})
	assert.Equal(t, http.StatusOK, res.Code)

	var moved models.Table
	require.NoError(t, db.First(&moved, tableID).Error)
	assert.Equal(t, 150.0, moved.PosX)
	assert.Equal(t, 250.0, moved.PosY)

	// Generate QR dan guest order tanpa auth.
	res = doAuthJSON(t, r, "POST", "/admin/tables/"+strconv.Itoa(int(tableID))+"/qr", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	qrToken := dataField(t, res)["token"].(string)

	res = doAuthJSON(t, r, "POST", "/orders", "",
		map[string]interface{}{"table_id": tableID, "qr_token": qrToken})
	require.Equal(t, http.StatusCreated, res.Code)

	// Scene sekarang menampilkan meja sebagai occupied dan selected.
	res = doAuthJSON(t, r, "GET", "/admin/floorplan/sessions/"+sessionID+"/scene", token, nil)
	require.Equal(t, http.StatusOK, res.Code)

	scene := dataField(t, res)["scene"].(map[string]interface{})
	nodes := scene["nodes"].([]interface{})
	require.Len(t, nodes, 1)

	node := nodes[0].(map[string]interface{})
	assert.Equal(t, "occupied", node["status"])
	assert.Equal(t, true, node["selected"])
	assert.Equal(t, 150.0, node["x"])
	assert.Equal(t, 250.0, node["y"])
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Zone{}, &models.Table{}, &models.Order{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name:     "Integration Staff",
		Email:    "staff@example.com",
		Password: string(hashed),
		Role:     "staff",
	}).Error)

	return db
}

func doAuthJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	body := bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "response data missing: %s", w.Body.String())
	return data
}

func loginIntegration(t *testing.T, r *gin.Engine) string {
	res := doAuthJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "staff@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.Code)
	return dataField(t, res)["token"].(string)
}

func createZoneIntegration(t *testing.T, r *gin.Engine, token, name string) uint {
	res := doAuthJSON(t, r, "POST", "/admin/zones", token, map[string]interface{}{
		"name":  name,
		"color": "#34d399",
	})
	require.Equal(t, http.StatusCreated, res.Code)
	return uint(dataField(t, res)["id"].(float64))
}

func createTableIntegration(t *testing.T, r *gin.Engine, token string, zoneID uint) uint {
	res := doAuthJSON(t, r, "POST", "/admin/tables", token, map[string]interface{}{
		"table_number": "P1",
		"seats":        4,
		"zone_id":      zoneID,
		"pos_x":        100,
		"pos_y":        200,
	})
	require.Equal(t, http.StatusCreated, res.Code)
	return uint(dataField(t, res)["id"].(float64))
}

func openSessionIntegration(t *testing.T, r *gin.Engine, token string) string {
	res := doAuthJSON(t, r, "POST", "/admin/floorplan/sessions", token, nil)
	require.Equal(t, http.StatusCreated, res.Code)
	return dataField(t, res)["session_id"].(string)
}
