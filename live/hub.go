package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tablemap/floorplan-app/floorplan"
	"github.com/tablemap/floorplan-app/models"
	"github.com/tablemap/floorplan-app/utils"
)

// Event types pushed to connected floor-plan dashboards.
const (
	EventTableCreate = "table_create"
	EventTableUpdate = "table_update"
	EventTableDelete = "table_delete"
	EventTableMove   = "table_move"
	EventZoneUpdate  = "zone_update"
	EventZoneDelete  = "zone_delete"
	EventStatsUpdate = "stats_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client dashboard yang terhubung dan menyiarkan
// perubahan floor plan ke mereka.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its staff role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastTableCreate -> meja baru muncul di canvas
func BroadcastTableCreate(table models.Table) {
	broadcast(Message{Event: EventTableCreate, Data: table})
}

// BroadcastTableUpdate -> seat count, zone, atau active flag berubah
func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

// BroadcastTableDelete -> meja dihapus
func BroadcastTableDelete(tableID uint) {
	broadcast(Message{
		Event: EventTableDelete,
		Data:  map[string]interface{}{"table_id": tableID},
	})
}

// BroadcastTableMove pushes a drag-end reposition so every other open
// dashboard moves the node without a refetch.
func BroadcastTableMove(tableID uint, x, y float64) {
	broadcast(Message{
		Event: EventTableMove,
		Data: map[string]interface{}{
			"table_id": tableID,
			"x":        x,
			"y":        y,
		},
	})
}

// BroadcastZoneUpdate -> zone dibuat atau diubah
func BroadcastZoneUpdate(zone models.Zone) {
	broadcast(Message{Event: EventZoneUpdate, Data: zone})
}

// BroadcastZoneDelete -> zone dihapus, member tables menjadi unassigned
func BroadcastZoneDelete(zoneID uint) {
	broadcast(Message{
		Event: EventZoneDelete,
		Data:  map[string]interface{}{"zone_id": zoneID},
	})
}

// BroadcastStats pushes recomputed floor-plan aggregates.
func BroadcastStats(stats floorplan.Stats, totals floorplan.Totals) {
	broadcast(Message{
		Event: EventStatsUpdate,
		Data: map[string]interface{}{
			"stats":  stats,
			"totals": totals,
		},
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling live message: %v", err)
		return
	}

	for conn, role := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to %s client: %v", msg.Event, role, err)
			continue
		}
	}
}
