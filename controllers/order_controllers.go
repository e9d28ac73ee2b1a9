package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/live"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
	"gorm.io/gorm"
)

// OrderController adalah collaborator surface untuk floor plan: daftar
// order untuk derive status occupancy, plus create/status-update yang
// dipicu dari side panel atau guest scan.
type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> semua order; ?active=true hanya yang masih menempati meja
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Model(&models.Order{})

	if c.Query("active") == "true" {
		query = query.Where("status IN ?", []string{
			models.OrderStatusPending,
			models.OrderStatusConfirmed,
			models.OrderStatusPreparing,
			models.OrderStatusReady,
		})
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail satu order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("Table").First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder -> order baru pre-filled dengan meja. Dipanggil staff dari
// side panel, atau guest dengan QR token (tanpa auth).
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID uint   `json:"table_id" binding:"required"`
		Notes   string `json:"notes"`
		QRToken string `json:"qr_token"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := oc.DB.First(&table, req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	// Guest path: token wajib dan harus cocok dengan meja.
	if _, isStaff := c.Get("user_id"); !isStaff {
		claims, err := utils.ParseQRToken(req.QRToken)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		if claims.TableID != table.ID {
			utils.RespondError(c, http.StatusForbidden, errors.New("token does not match this table"))
			return
		}
		if !table.IsActive {
			utils.RespondError(c, http.StatusConflict, ErrTableInactive)
			return
		}
	}

	order := models.Order{
		TableID: table.ID,
		Status:  models.OrderStatusPending,
		Notes:   req.Notes,
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Occupancy changed, push fresh status to the dashboards.
	live.BroadcastTableUpdate(table)
	oc.broadcastStats()

	utils.InfoLogger.Printf("New order %d created for table %d", order.ID, table.ID)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrderStatus -> transisi status order. Status terminal
// (completed/cancelled) membebaskan meja di floor plan.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !validOrderStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown order status: "+req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Table").First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastTableUpdate(order.Table)
	oc.broadcastStats()

	if order.IsTerminal() {
		utils.InfoLogger.Printf("Order %d closed, table %d freed", order.ID, order.TableID)
	} else {
		utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, order.Status)
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

func validOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled:
		return true
	}
	return false
}

func (oc *OrderController) broadcastStats() {
	var tables []models.Table
	if err := oc.DB.Find(&tables).Error; err != nil {
		utils.ErrorLogger.Printf("Stats broadcast skipped: %v", err)
		return
	}
	var orders []models.Order
	if err := oc.DB.Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("Stats broadcast skipped: %v", err)
		return
	}

	occupied := floorplan.OccupiedTables(orders)
	live.BroadcastStats(floorplan.ComputeStats(tables, occupied), floorplan.ComputeTotals(tables))
}
