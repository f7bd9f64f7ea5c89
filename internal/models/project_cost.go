package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectCost is an expense booked against a project.
type ProjectCost struct {
	gorm.Model

	ProjectID   uint   `gorm:"not null;index"`
	Category    string `gorm:"not null"`
	Description string
	Amount      float64 `gorm:"not null"`
	IncurredAt  datatypes.Date
}
