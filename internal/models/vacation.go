package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Vacation type names seeded at migration time.
const (
	VacationTypeAnnual   = "Annual"
	VacationTypeSick     = "Sick"
	VacationTypeUnpaid   = "Unpaid"
	VacationTypeParental = "Parental"
)

// Vacation status names seeded at migration time.
const (
	VacationStatusPending  = "Pending"
	VacationStatusApproved = "Approved"
	VacationStatusRejected = "Rejected"
)

type VacationType struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`
}

type VacationStatus struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`
}

type Vacation struct {
	gorm.Model

	UserID    uint `gorm:"not null;index"`
	TypeID    uint `gorm:"not null"`
	StatusID  uint `gorm:"not null"`
	StartDate datatypes.Date
	EndDate   datatypes.Date

	// Relationships
	Type   VacationType   `gorm:"foreignKey:TypeID"`
	Status VacationStatus `gorm:"foreignKey:StatusID"`
}
