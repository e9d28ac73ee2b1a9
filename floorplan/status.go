package floorplan

import "github.com/tablemap/floorplan-app/models"

// Status is the derived table state shown on the floor plan. It is never
// stored: occupancy comes from live orders, availability from the table
// record itself.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
	StatusInactive  Status = "inactive"
)

// IsActiveOrder reports whether an order status still occupies a table.
func IsActiveOrder(status string) bool {
	switch status {
	case models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady:
		return true
	}
	return false
}

// OccupiedTables collects the table ids referenced by at least one active
// order.
func OccupiedTables(orders []models.Order) map[uint]bool {
	occupied := make(map[uint]bool)
	for _, order := range orders {
		if IsActiveOrder(order.Status) {
			occupied[order.TableID] = true
		}
	}
	return occupied
}

// DeriveStatus computes the floor-plan status for a table. An active order
// wins over everything else; without one the table is available when
// active and inactive otherwise.
func DeriveStatus(table models.Table, occupied map[uint]bool) Status {
	if occupied[table.ID] {
		return StatusOccupied
	}
	if table.IsActive {
		return StatusAvailable
	}
	return StatusInactive
}
