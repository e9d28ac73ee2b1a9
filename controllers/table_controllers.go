package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/live"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> menambahkan meja baru ke floor plan
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string  `json:"table_number" binding:"required"`
		Seats       int     `json:"seats"`
		ZoneID      *uint   `json:"zone_id"`
		PosX        float64 `json:"pos_x"`
		PosY        float64 `json:"pos_y"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Seats == 0 {
		req.Seats = 2
	}
	if req.Seats < 1 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidSeats)
		return
	}

	if req.ZoneID != nil {
		var zone models.Zone
		if err := tc.DB.First(&zone, *req.ZoneID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
	}

	table := models.Table{
		TableNumber: req.TableNumber,
		Seats:       req.Seats,
		ZoneID:      req.ZoneID,
		PosX:        req.PosX,
		PosY:        req.PosY,
		IsActive:    true,
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastTableCreate(table)
	tc.broadcastStats()

	utils.InfoLogger.Printf("New table created: %s (seats=%d)", table.TableNumber, table.Seats)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> seluruh meja, opsional difilter per zone
func (tc *TableController) GetAllTables(c *gin.Context) {
	query := tc.DB.Preload("Zone")

	if zoneID := c.Query("zone_id"); zoneID != "" {
		query = query.Where("zone_id = ?", zoneID)
	}

	var tables []models.Table
	if err := query.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja plus active orders untuk side panel
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.Preload("Zone").First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	activeOrders, err := tc.activeOrdersFor(table.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	occupied := map[uint]bool{}
	if len(activeOrders) > 0 {
		occupied[table.ID] = true
	}
	status := floorplan.DeriveStatus(table, occupied)

	utils.RespondJSON(c, http.StatusOK, "Table detail", gin.H{
		"table":         table,
		"status":        status,
		"active_orders": activeOrders,
	})
}

// UpdateTable -> full-record replace. Callers resend every field because
// the endpoint replaces rather than patches; this is how the side panel
// submits seat and zone edits.
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var req struct {
		TableNumber string  `json:"table_number" binding:"required"`
		Seats       int     `json:"seats" binding:"required"`
		ZoneID      *uint   `json:"zone_id"`
		PosX        float64 `json:"pos_x"`
		PosY        float64 `json:"pos_y"`
		IsActive    *bool   `json:"is_active" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Seats < 1 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidSeats)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.ZoneID != nil {
		var zone models.Zone
		if err := tc.DB.First(&zone, *req.ZoneID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
	}

	table.TableNumber = req.TableNumber
	table.Seats = req.Seats
	table.ZoneID = req.ZoneID
	table.PosX = req.PosX
	table.PosY = req.PosY
	table.IsActive = *req.IsActive

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastTableUpdate(table)
	tc.broadcastStats()

	utils.InfoLogger.Printf("Table %d updated (seats=%d, zone=%v)", table.ID, table.Seats, table.ZoneID)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// PositionUpdate is one entry of the drag-end save batch.
type PositionUpdate struct {
	ID uint    `json:"id" binding:"required"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// UpdateTablePositions -> menyimpan posisi meja hasil drag. Batch berisi
// satu elemen saat drag-end; bulk "save all" mengirim lebih banyak. Setiap
// baris di-update sendiri-sendiri, last write wins.
func (tc *TableController) UpdateTablePositions(c *gin.Context) {
	var batch []PositionUpdate
	if err := c.ShouldBindJSON(&batch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if len(batch) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrEmptyBatch)
		return
	}

	updated := make([]models.Table, 0, len(batch))
	for _, pos := range batch {
		var table models.Table
		if err := tc.DB.First(&table, pos.ID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}

		table.PosX = pos.X
		table.PosY = pos.Y
		if err := tc.DB.Save(&table).Error; err != nil {
			// Surface the failure; the client keeps its optimistic
			// position until the next refetch.
			utils.ErrorLogger.Printf("Position save failed for table %d: %v", pos.ID, err)
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		live.BroadcastTableMove(table.ID, table.PosX, table.PosY)
		updated = append(updated, table)
	}

	utils.InfoLogger.Printf("Saved positions for %d table(s)", len(updated))
	utils.RespondJSON(c, http.StatusOK, "Table positions saved", updated)
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastTableDelete(table.ID)
	tc.broadcastStats()

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}

func (tc *TableController) activeOrdersFor(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	err := tc.DB.
		Where("table_id = ?", tableID).
		Where("status IN ?", []string{
			models.OrderStatusPending,
			models.OrderStatusConfirmed,
			models.OrderStatusPreparing,
			models.OrderStatusReady,
		}).
		Find(&orders).Error
	return orders, err
}

// broadcastStats pushes recomputed aggregates to the live dashboards.
// Failures here only cost a stale stats strip, so errors are logged and
// swallowed.
func (tc *TableController) broadcastStats() {
	var tables []models.Table
	if err := tc.DB.Find(&tables).Error; err != nil {
		utils.ErrorLogger.Printf("Stats broadcast skipped: %v", err)
		return
	}
	var orders []models.Order
	if err := tc.DB.Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("Stats broadcast skipped: %v", err)
		return
	}

	occupied := floorplan.OccupiedTables(orders)
	live.BroadcastStats(floorplan.ComputeStats(tables, occupied), floorplan.ComputeTotals(tables))
}
