package models

import (
	"time"
)

type Motorcycle struct {
	ID                 string          `json:"id" gorm:"primaryKey;size:191"`
	UserID             string          `json:"user" gorm:"not null;index;size:191"`
	Make               string          `json:"make" gorm:"not null;size:100"`
	Model              string          `json:"model" gorm:"not null;size:100"`
	Year               int             `json:"year" gorm:"not null"`
	Price              float64         `json:"price" gorm:"not null"`
	Type               string          `json:"type" gorm:"not null;size:100"`
	EngineCapacity     string          `json:"engine_capacity" gorm:"size:50"`
	Mileage            float64         `json:"mileage,omitempty"`
	Color              string          `json:"color,omitempty" gorm:"size:50"`
	Status             string          `json:"status" gorm:"not null;size:50"`
	MaintenanceHistory MaintenanceList `json:"maintenance_history" gorm:"type:json"`
	Insurance          Insurance       `json:"insurance" gorm:"type:json"`
	Accessories        StringSlice     `json:"accessories" gorm:"type:json"`
	Social             SocialLinks     `json:"social" gorm:"type:json"`
	Loves              ReactionList    `json:"loves" gorm:"type:json"`
	Comments           CommentList     `json:"comments" gorm:"type:json"`
	CreatedAt          time.Time       `json:"date"`
	UpdatedAt          time.Time       `json:"-"`
}

// OwnerID returns the owning user reference, set once at creation.
func (m *Motorcycle) OwnerID() string { return m.UserID }
