package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tablemap/floorplan-app/controllers"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func setupUserTestDB(t *testing.T) *gorm.DB {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupUserTestDB(t)
	router := setupUserRouter(db)

	w := doJSON(router, "POST", "/register", map[string]interface{}{
		"name":     "Ayu",
		"email":    "ayu@example.com",
		"password": "rahasia123",
		"role":     "staff",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/login", map[string]interface{}{
		"email":    "ayu@example.com",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "staff", data["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	utils.InitLogger()
	db := setupUserTestDB(t)
	router := setupUserRouter(db)

	doJSON(router, "POST", "/register", map[string]interface{}{
		"name":     "Budi",
		"email":    "budi@example.com",
		"password": "benar",
		"role":     "admin",
	})

	w := doJSON(router, "POST", "/login", map[string]interface{}{
		"email":    "budi@example.com",
		"password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
