package models

import "gorm.io/gorm"

type Profile struct {
	gorm.Model

	UserID            uint   `gorm:"uniqueIndex;not null"`
	FirstName         string `gorm:"not null"`
	LastName          string `gorm:"not null"`
	Position          string
	EmploymentType    string
	SupervisorID      *uint `gorm:"index"`
	SalaryRate        float64
	VacationDaysTotal int

	// Supervisor must hold an administrative-tier role; enforced by the store.
	Supervisor *User `gorm:"foreignKey:SupervisorID"`
}
