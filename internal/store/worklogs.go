package store

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

type WorkLogParams struct {
	UserID      uint
	TaskID      *uint
	ProjectID   uint
	Date        datatypes.Date
	HoursWorked float64
	IsOvertime  bool
	Note        string
}

func CreateWorkLog(db *gorm.DB, params WorkLogParams) (*models.WorkLog, error) {
	if _, err := GetUserByID(db, params.UserID); err != nil {
		return nil, err
	}
	if _, err := GetProject(db, params.ProjectID); err != nil {
		return nil, err
	}
	if params.TaskID != nil {
		if _, err := GetTask(db, *params.TaskID); err != nil {
			return nil, err
		}
	}

	log := models.WorkLog{
		UserID:      params.UserID,
		TaskID:      params.TaskID,
		ProjectID:   params.ProjectID,
		Date:        params.Date,
		HoursWorked: params.HoursWorked,
		IsOvertime:  params.IsOvertime,
		Note:        params.Note,
	}
	if err := db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func GetWorkLog(db *gorm.DB, id uint) (*models.WorkLog, error) {
	var log models.WorkLog
	if err := db.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// ListWorkLogs filters by user and/or project when the ids are non-zero.
func ListWorkLogs(db *gorm.DB, userID, projectID uint) ([]models.WorkLog, error) {
	query := db.Order("date, id")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var logs []models.WorkLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func UpdateWorkLog(db *gorm.DB, id uint, params WorkLogParams) (*models.WorkLog, error) {
	log, err := GetWorkLog(db, id)
	if err != nil {
		return nil, err
	}

	if params.TaskID != nil {
		if _, err := GetTask(db, *params.TaskID); err != nil {
			return nil, err
		}
	}

	log.TaskID = params.TaskID
	log.Date = params.Date
	log.HoursWorked = params.HoursWorked
	log.IsOvertime = params.IsOvertime
	log.Note = params.Note

	if err := db.Save(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func DeleteWorkLog(db *gorm.DB, id uint) error {
	log, err := GetWorkLog(db, id)
	if err != nil {
		return err
	}
	return db.Unscoped().Delete(log).Error
}
