package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkLog struct {
	gorm.Model

	UserID      uint  `gorm:"not null;index"`
	TaskID      *uint `gorm:"index"`
	ProjectID   uint  `gorm:"not null;index"`
	Date        datatypes.Date
	HoursWorked float64 `gorm:"not null"`
	IsOvertime  bool    `gorm:"not null;default:false"`
	Note        string
}
