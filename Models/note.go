package Models

import (
	"gorm.io/gorm"
)

type DashboardNote struct {
	gorm.Model
	NoteDate string `json:"note_date" gorm:"not null;index"` // YYYY-MM-DD
	Note     string `json:"note" gorm:"not null"`
}

type VehicleNote struct {
	gorm.Model
	VehicleNumber string `json:"vehicle_number" gorm:"not null;index"`
	NoteDate      string `json:"note_date" gorm:"not null"`
	Note          string `json:"note" gorm:"not null"`
}
