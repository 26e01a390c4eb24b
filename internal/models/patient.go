package models

import (
	"time"
)

// Patient represents a person receiving care at the hospital
type Patient struct {
	BaseModel
	Name        string    `gorm:"size:255;index" json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Sick        bool      `gorm:"default:false" json:"sick"`
	Score       int       `json:"score"`
}
