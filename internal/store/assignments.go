package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

func ListAssignments(db *gorm.DB, projectID uint) ([]models.ProjectAssignment, error) {
	var assignments []models.ProjectAssignment
	err := db.Preload("User").Preload("User.Profile").
		Where("project_id = ?", projectID).Order("id").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// CreateAssignment adds a user to a project. A user holds one assignment per
// project, so re-assigning replaces their existing row, and a project holds
// at most one Manager assignment, so assigning a new Manager removes the
// previous one. All statements run in the same transaction.
func CreateAssignment(db *gorm.DB, projectID, userID uint, roleOnProject string) (*models.ProjectAssignment, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}
	if _, err := GetUserByID(db, userID); err != nil {
		return nil, err
	}

	assignment := models.ProjectAssignment{
		UserID:        userID,
		ProjectID:     projectID,
		RoleOnProject: roleOnProject,
		AssignedAt:    time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).
			Unscoped().Delete(&models.ProjectAssignment{}).Error
		if err != nil {
			return err
		}
		if roleOnProject == models.AssignmentRoleManager {
			err := tx.Where("project_id = ? AND role_on_project = ?", projectID, models.AssignmentRoleManager).
				Unscoped().Delete(&models.ProjectAssignment{}).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&assignment).Error
	})
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}

func DeleteAssignment(db *gorm.DB, projectID, assignmentID uint) error {
	var assignment models.ProjectAssignment
	err := db.Where("id = ? AND project_id = ?", assignmentID, projectID).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return db.Unscoped().Delete(&assignment).Error
}
