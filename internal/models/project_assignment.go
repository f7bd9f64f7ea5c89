package models

import (
	"time"

	"gorm.io/gorm"
)

// AssignmentRoleManager is the distinguished assignment role: a project
// carries at most one Manager assignment at a time.
const AssignmentRoleManager = "Manager"

type ProjectAssignment struct {
	gorm.Model

	UserID        uint   `gorm:"not null;uniqueIndex:idx_user_project"`
	ProjectID     uint   `gorm:"not null;uniqueIndex:idx_user_project"`
	RoleOnProject string `gorm:"not null"`
	AssignedAt    time.Time

	// Relationships
	User    User    `gorm:"foreignKey:UserID"`
	Project Project `gorm:"foreignKey:ProjectID"`
}
