package models

import "gorm.io/gorm"

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

type Task struct {
	gorm.Model

	ProjectID      uint   `gorm:"not null;index"`
	Title          string `gorm:"not null"`
	AssignedToID   *uint  `gorm:"index"`
	Status         string `gorm:"not null;default:todo"`
	EstimatedHours float64

	// Relationships
	AssignedTo *User     `gorm:"foreignKey:AssignedToID"`
	WorkLogs   []WorkLog `gorm:"foreignKey:TaskID"`
}
