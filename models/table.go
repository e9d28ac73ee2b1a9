package models

import "time"

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(50);not null" json:"table_number"`
	Seats       int       `gorm:"not null;default:2" json:"seats"`
	ZoneID      *uint     `gorm:"index" json:"zone_id"`
	Zone        *Zone     `gorm:"foreignKey:ZoneID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"zone,omitempty"`
	PosX        float64   `gorm:"not null;default:0" json:"pos_x"`
	PosY        float64   `gorm:"not null;default:0" json:"pos_y"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
