package floorplan

import (
	"fmt"

	"github.com/tablemap/floorplan-app/geometry"
	"github.com/tablemap/floorplan-app/models"
)

// Status palette. The selected highlight overrides the status stroke.
const (
	ColorAvailable    = "#22c55e"
	ColorOccupied     = "#f59e0b"
	ColorInactive     = "#ef4444"
	ColorSelected     = "#8b5cf6"
	ColorZoneFallback = "#9ca3af"

	fillOpacity         = 0.15
	strokeWidth         = 2.0
	strokeWidthSelected = 3.0
)

// LabelBox is the name-label background box, positioned relative to the
// node center so it straddles the footprint's bottom edge.
type LabelBox struct {
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is everything a client needs to draw one table: footprint, chairs,
// labels and colors. The server owns every coordinate; clients only paint.
type Node struct {
	TableID      uint               `json:"table_id"`
	TableNumber  string             `json:"table_number"`
	Seats        int                `json:"seats"`
	X            float64            `json:"x"`
	Y            float64            `json:"y"`
	Status       Status             `json:"status"`
	Selected     bool               `json:"selected"`
	Footprint    geometry.Footprint `json:"footprint"`
	Chairs       []geometry.Point   `json:"chairs"`
	SeatsCaption string             `json:"seats_caption"`
	Label        LabelBox           `json:"label"`
	ZoneName     string             `json:"zone_name,omitempty"`
	ZoneColor    string             `json:"zone_color,omitempty"`
	StrokeColor  string             `json:"stroke_color"`
	StrokeWidth  float64            `json:"stroke_width"`
	FillColor    string             `json:"fill_color"`
	FillOpacity  float64            `json:"fill_opacity"`
}

func statusColor(status Status) string {
	switch status {
	case StatusOccupied:
		return ColorOccupied
	case StatusInactive:
		return ColorInactive
	default:
		return ColorAvailable
	}
}

// BuildNode assembles the drawable node for a table. Seats below 1 are
// clamped here so the geometry package never sees an invalid count.
func BuildNode(table models.Table, status Status, selected bool) Node {
	seats := table.Seats
	if seats < 1 {
		seats = 1
	}

	fp := geometry.FootprintFor(seats)
	color := statusColor(status)

	stroke := color
	width := strokeWidth
	if selected {
		stroke = ColorSelected
		width = strokeWidthSelected
	}

	// Zone badge; a zone without a color gets the neutral gray.
	var zoneName, zoneColor string
	if table.Zone != nil {
		zoneName = table.Zone.Name
		zoneColor = table.Zone.Color
		if zoneColor == "" {
			zoneColor = ColorZoneFallback
		}
	}

	labelWidth := geometry.LabelWidth(table.TableNumber)
	return Node{
		TableID:      table.ID,
		TableNumber:  table.TableNumber,
		Seats:        seats,
		X:            table.PosX,
		Y:            table.PosY,
		Status:       status,
		Selected:     selected,
		Footprint:    fp,
		Chairs:       geometry.ChairLayout(seats),
		SeatsCaption: fmt.Sprintf("%d Seats", seats),
		Label: LabelBox{
			Text:   table.TableNumber,
			X:      -labelWidth / 2,
			Y:      fp.Height/2 - geometry.LabelHeight/2,
			Width:  labelWidth,
			Height: geometry.LabelHeight,
		},
		ZoneName:  zoneName,
		ZoneColor: zoneColor,
		// Fill tint follows the status color even when selected, so the
		// violet highlight stays readable on top of it.
		StrokeColor: stroke,
		StrokeWidth: width,
		FillColor:   color,
		FillOpacity: fillOpacity,
	}
}

// FilterByZone returns the tables visible under a zone filter. A nil
// filter shows everything.
func FilterByZone(tables []models.Table, zoneID *uint) []models.Table {
	if zoneID == nil {
		return tables
	}
	visible := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.ZoneID != nil && *t.ZoneID == *zoneID {
			visible = append(visible, t)
		}
	}
	return visible
}

// Stats aggregates the visible table set under the current zone filter.
type Stats struct {
	Tables    int `json:"tables"`
	Seats     int `json:"seats"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Inactive  int `json:"inactive"`
}

// Totals is the filter-independent aggregate over every table.
type Totals struct {
	Tables int `json:"tables"`
	Seats  int `json:"seats"`
}

// ComputeStats counts tables per derived status and sums their seats.
func ComputeStats(tables []models.Table, occupied map[uint]bool) Stats {
	var stats Stats
	for _, t := range tables {
		stats.Tables++
		stats.Seats += t.Seats
		switch DeriveStatus(t, occupied) {
		case StatusOccupied:
			stats.Occupied++
		case StatusInactive:
			stats.Inactive++
		default:
			stats.Available++
		}
	}
	return stats
}

// ComputeTotals sums every table regardless of the zone filter.
func ComputeTotals(tables []models.Table) Totals {
	var totals Totals
	for _, t := range tables {
		totals.Tables++
		totals.Seats += t.Seats
	}
	return totals
}

// Scene is one full floor-plan frame: the visible nodes plus the
// aggregates the dashboard shows next to the canvas.
type Scene struct {
	Nodes  []Node `json:"nodes"`
	Stats  Stats  `json:"stats"`
	Totals Totals `json:"totals"`
}

// BuildScene filters, derives status and assembles nodes in one pass.
// selectedID of zero means nothing is selected.
func BuildScene(tables []models.Table, orders []models.Order, zoneID *uint, selectedID uint) Scene {
	occupied := OccupiedTables(orders)
	visible := FilterByZone(tables, zoneID)

	nodes := make([]Node, 0, len(visible))
	for _, t := range visible {
		status := DeriveStatus(t, occupied)
		nodes = append(nodes, BuildNode(t, status, t.ID == selectedID))
	}

	return Scene{
		Nodes:  nodes,
		Stats:  ComputeStats(visible, occupied),
		Totals: ComputeTotals(tables),
	}
}
