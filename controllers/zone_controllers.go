package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/live"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
	"gorm.io/gorm"
)

type ZoneController struct {
	DB *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{DB: db}
}

// CreateZone -> menambahkan zone baru (mis. "Patio", "Bar")
func (zc *ZoneController) CreateZone(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	zone := models.Zone{
		Name:  req.Name,
		Color: req.Color,
	}

	if err := zc.DB.Create(&zone).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastZoneUpdate(zone)

	utils.InfoLogger.Printf("New zone created: %s", zone.Name)
	utils.RespondJSON(c, http.StatusCreated, "Zone created successfully", zone)
}

// GetAllZones -> seluruh zone
func (zc *ZoneController) GetAllZones(c *gin.Context) {
	var zones []models.Zone
	if err := zc.DB.Find(&zones).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of zones", zones)
}

// UpdateZone -> ubah nama/warna zone
func (zc *ZoneController) UpdateZone(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var zone models.Zone
	if err := zc.DB.First(&zone, zoneID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	zone.Name = req.Name
	zone.Color = req.Color
	if err := zc.DB.Save(&zone).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastZoneUpdate(zone)
	utils.RespondJSON(c, http.StatusOK, "Zone updated", zone)
}

// DeleteZone -> menghapus zone. Member tables tidak ikut terhapus;
// zone_id mereka di-set NULL (unassigned).
func (zc *ZoneController) DeleteZone(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var zone models.Zone
	if err := zc.DB.First(&zone, zoneID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := zc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Table{}).
			Where("zone_id = ?", zone.ID).
			Update("zone_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&zone).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastZoneDelete(zone.ID)

	utils.InfoLogger.Printf("Zone %d deleted, member tables unassigned", zone.ID)
	utils.RespondJSON(c, http.StatusOK, "Zone deleted", gin.H{
		"id": zone.ID,
	})
}
