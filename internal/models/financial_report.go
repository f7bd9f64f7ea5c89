package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FinancialReport is a generated per-project summary: total booked cost and
// total logged hours within a reporting period.
type FinancialReport struct {
	gorm.Model

	ProjectID   uint `gorm:"not null;index"`
	PeriodStart datatypes.Date
	PeriodEnd   datatypes.Date
	TotalCost   float64
	TotalHours  float64
}
