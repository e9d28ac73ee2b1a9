package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
	"gorm.io/gorm"
)

type QRController struct {
	DB *gorm.DB
}

func NewQRController(db *gorm.DB) *QRController {
	return &QRController{DB: db}
}

// GenerateTableQR -> membuat token ordering time-limited untuk satu meja.
// Staff menampilkan token ini sebagai QR code di meja.
func (qc *QRController) GenerateTableQR(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := qc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !table.IsActive {
		utils.RespondError(c, http.StatusConflict, ErrTableInactive)
		return
	}

	token, expiresAt, err := utils.GenerateQRToken(table.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("QR token generated for table %d (expires %s)", table.ID, expiresAt.Format("15:04:05"))
	utils.RespondJSON(c, http.StatusOK, "QR token generated", gin.H{
		"table_id":   table.ID,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// ScanTable -> guest scan QR: validasi token, cek meja masih aktif, dan
// kembalikan context meja untuk halaman menu. Tanpa auth.
func (qc *QRController) ScanTable(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	claims, err := utils.ParseQRToken(c.Query("token"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	if claims.TableID != uint(tableID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("token does not match this table"))
		return
	}

	var table models.Table
	if err := qc.DB.Preload("Zone").First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	// Inactive tables stay visible for management but never accept
	// guest orders.
	if !table.IsActive {
		utils.RespondError(c, http.StatusConflict, ErrTableInactive)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table scan valid", gin.H{
		"table":      table,
		"expires_at": claims.ExpiresAt.Time,
	})
}
