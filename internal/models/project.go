package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	Budget      float64
	Progress    int `gorm:"not null;default:0"`
	StartDate   datatypes.Date
	EndDate     datatypes.Date
	IsArchived  bool `gorm:"not null;default:false"`

	// Relationships
	Assignments      []ProjectAssignment `gorm:"foreignKey:ProjectID"`
	Tasks            []Task              `gorm:"foreignKey:ProjectID"`
	WorkLogs         []WorkLog           `gorm:"foreignKey:ProjectID"`
	Costs            []ProjectCost       `gorm:"foreignKey:ProjectID"`
	FinancialReports []FinancialReport   `gorm:"foreignKey:ProjectID"`
}
