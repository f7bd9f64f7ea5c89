package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

// DeleteUserResult confirms a cascading user deletion; Email identifies the
// removed account for audit logging.
type DeleteUserResult struct {
	Email string
}

// DeleteUser removes a user and every row that references it, in foreign-key
// order: Credential, Profile, ProjectAssignment, WorkLog, Vacation, then the
// User row itself. Nullable references that outlive the user — profiles
// supervised by them and tasks assigned to them — are cleared rather than
// deleted. The whole sequence runs in one transaction so callers see it as
// atomic. A missing user fails with ErrNotFound before anything is touched.
func DeleteUser(db *gorm.DB, userID uint) (*DeleteUserResult, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Profile{}).Where("supervisor_id = ?", userID).
			Update("supervisor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).Where("assigned_to_id = ?", userID).
			Update("assigned_to_id", nil).Error; err != nil {
			return err
		}

		dependents := []interface{}{
			&models.Credential{},
			&models.Profile{},
			&models.ProjectAssignment{},
			&models.WorkLog{},
			&models.Vacation{},
		}
		for _, table := range dependents {
			if err := tx.Where("user_id = ?", userID).Unscoped().Delete(table).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return nil, err
	}

	return &DeleteUserResult{Email: user.Email}, nil
}

// DeleteUsers removes users sequentially and fails fast: the first error
// stops the loop, and deletions already performed stay committed. Returns the
// emails of every user removed before the failure.
func DeleteUsers(db *gorm.DB, userIDs []uint) ([]string, error) {
	emails := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		result, err := DeleteUser(db, id)
		if err != nil {
			return emails, err
		}
		emails = append(emails, result.Email)
	}
	return emails, nil
}

// DeleteProject mirrors DeleteUser for projects: WorkLogs, Tasks,
// ProjectAssignments, ProjectCosts, FinancialReports, then the Project row,
// all in one transaction.
func DeleteProject(db *gorm.DB, projectID uint) error {
	var project models.Project
	if err := db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.WorkLog{},
			&models.Task{},
			&models.ProjectAssignment{},
			&models.ProjectCost{},
			&models.FinancialReport{},
		}
		for _, table := range dependents {
			if err := tx.Where("project_id = ?", projectID).Unscoped().Delete(table).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.Project{}, projectID).Error
	})
}

// RelatedCounts summarizes the rows a user deletion would remove; used by the
// interactive CLI to preview before confirming.
type RelatedCounts struct {
	HasProfile    bool
	HasCredential bool
	Assignments   int64
	WorkLogs      int64
	Vacations     int64
}

func CountUserRelations(db *gorm.DB, userID uint) (*RelatedCounts, error) {
	var counts RelatedCounts

	var profiles int64
	if err := db.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&profiles).Error; err != nil {
		return nil, err
	}
	counts.HasProfile = profiles > 0

	var credentials int64
	if err := db.Model(&models.Credential{}).Where("user_id = ?", userID).Count(&credentials).Error; err != nil {
		return nil, err
	}
	counts.HasCredential = credentials > 0

	if err := db.Model(&models.ProjectAssignment{}).Where("user_id = ?", userID).Count(&counts.Assignments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.WorkLog{}).Where("user_id = ?", userID).Count(&counts.WorkLogs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Vacation{}).Where("user_id = ?", userID).Count(&counts.Vacations).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}
