package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email  string `gorm:"uniqueIndex;not null"`
	RoleID uint   `gorm:"not null;index"`

	// Relationships. Dependent rows are removed explicitly in FK order by the
	// store layer; no ON DELETE CASCADE at the database level.
	Role        Role                `gorm:"foreignKey:RoleID"`
	Credential  *Credential         `gorm:"foreignKey:UserID"`
	Profile     *Profile            `gorm:"foreignKey:UserID"`
	Assignments []ProjectAssignment `gorm:"foreignKey:UserID"`
	WorkLogs    []WorkLog           `gorm:"foreignKey:UserID"`
	Vacations   []Vacation          `gorm:"foreignKey:UserID"`
}
