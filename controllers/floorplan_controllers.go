package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
	"gorm.io/gorm"
)

// FloorPlanController menjembatani HTTP dan editor session: selection,
// zone filter, viewport, dan scene yang siap digambar client.
type FloorPlanController struct {
	DB       *gorm.DB
	Sessions *floorplan.Manager
}

func NewFloorPlanController(db *gorm.DB, sessions *floorplan.Manager) *FloorPlanController {
	return &FloorPlanController{DB: db, Sessions: sessions}
}

// CreateSession -> membuka editor session baru untuk satu staff dashboard
func (fc *FloorPlanController) CreateSession(c *gin.Context) {
	editor := fc.Sessions.Create()

	utils.InfoLogger.Printf("Floor plan session %s opened", editor.ID)
	utils.RespondJSON(c, http.StatusCreated, "Floor plan session created", gin.H{
		"session_id": editor.ID,
		"viewport":   editor.View(),
	})
}

// CloseSession -> menutup session (viewport state dibuang, tidak disimpan)
func (fc *FloorPlanController) CloseSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, ok := fc.Sessions.Get(sessionID); !ok {
		utils.RespondError(c, http.StatusNotFound, ErrSessionNotFound)
		return
	}

	fc.Sessions.Remove(sessionID)
	utils.RespondJSON(c, http.StatusOK, "Floor plan session closed", nil)
}

func (fc *FloorPlanController) editor(c *gin.Context) (*floorplan.Editor, bool) {
	editor, ok := fc.Sessions.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrSessionNotFound)
		return nil, false
	}
	return editor, true
}

// GetScene -> satu frame lengkap: node yang visible di bawah zone filter,
// statistik, totals, dan viewport session ini.
func (fc *FloorPlanController) GetScene(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}

	var tables []models.Table
	if err := fc.DB.Preload("Zone").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var orders []models.Order
	if err := fc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	scene := floorplan.BuildScene(tables, orders, editor.ZoneFilter(), editor.SelectedID())

	utils.RespondJSON(c, http.StatusOK, "Floor plan scene", gin.H{
		"scene":    scene,
		"viewport": editor.View(),
	})
}

// SelectTable -> klik pada node. Klik pertama memilih; klik ulang pada
// meja yang sama menjaga selection dan me-reload detail (active orders)
// untuk side panel.
func (fc *FloorPlanController) SelectTable(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}

	var req struct {
		TableID uint `json:"table_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := fc.DB.Preload("Zone").First(&table, req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	action := editor.Select(table.ID)

	response := gin.H{
		"action": action,
		"table":  table,
	}

	if action == floorplan.ActionRefresh {
		// Self-transition: reload the side-panel detail explicitly.
		tc := TableController{DB: fc.DB}
		activeOrders, err := tc.activeOrdersFor(table.ID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		response["active_orders"] = activeOrders
	}

	utils.RespondJSON(c, http.StatusOK, "Table selected", response)
}

// DeselectTable -> kosongkan selection, side panel ditutup
func (fc *FloorPlanController) DeselectTable(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}

	editor.Deselect()
	utils.RespondJSON(c, http.StatusOK, "Selection cleared", nil)
}

// SetZoneFilter -> ganti filter zone aktif. zone_id null berarti semua
// zone. Selection yang tersembunyi oleh filter baru otomatis dilepas.
func (fc *FloorPlanController) SetZoneFilter(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}

	var req struct {
		ZoneID *uint `json:"zone_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.ZoneID != nil {
		var zone models.Zone
		if err := fc.DB.First(&zone, *req.ZoneID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
	}

	editor.SetZoneFilter(req.ZoneID, func(tableID uint) bool {
		if req.ZoneID == nil {
			return true
		}
		var table models.Table
		if err := fc.DB.First(&table, tableID).Error; err != nil {
			return false
		}
		return table.ZoneID != nil && *table.ZoneID == *req.ZoneID
	})

	utils.RespondJSON(c, http.StatusOK, "Zone filter updated", gin.H{
		"zone_id":     editor.ZoneFilter(),
		"selected_id": editor.SelectedID(),
	})
}

// Viewport operations. Zoom menjaga titik di tengah surface tetap diam;
// batas scale di-clamp diam-diam, tidak pernah error.

func (fc *FloorPlanController) ZoomIn(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Zoomed in", editor.ZoomIn())
}

func (fc *FloorPlanController) ZoomOut(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Zoomed out", editor.ZoomOut())
}

func (fc *FloorPlanController) ResetView(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "View reset", editor.ResetView())
}

func (fc *FloorPlanController) Pan(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}

	var req struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "View panned", editor.Pan(req.DX, req.DY))
}

func (fc *FloorPlanController) Resize(c *gin.Context) {
	editor, ok := fc.editor(c)
	if !ok {
		return
	}

	var req struct {
		Width        float64 `json:"width" binding:"required"`
		WindowHeight float64 `json:"window_height" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Surface resized", editor.Resize(req.Width, req.WindowHeight))
}

// GetStats -> agregat lepas dari session: statistik untuk satu zone
// (query param) plus totals seluruh restoran.
func (fc *FloorPlanController) GetStats(c *gin.Context) {
	var zoneFilter *uint
	if raw := c.Query("zone_id"); raw != "" {
		var zone models.Zone
		if err := fc.DB.First(&zone, raw).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		zoneFilter = &zone.ID
	}

	var tables []models.Table
	if err := fc.DB.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var orders []models.Order
	if err := fc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	occupied := floorplan.OccupiedTables(orders)
	visible := floorplan.FilterByZone(tables, zoneFilter)

	utils.RespondJSON(c, http.StatusOK, "Floor plan stats", gin.H{
		"stats":  floorplan.ComputeStats(visible, occupied),
		"totals": floorplan.ComputeTotals(tables),
	})
}
