package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

type TaskParams struct {
	ProjectID      uint
	Title          string
	AssignedToID   *uint
	Status         string
	EstimatedHours float64
}

func CreateTask(db *gorm.DB, params TaskParams) (*models.Task, error) {
	if _, err := GetProject(db, params.ProjectID); err != nil {
		return nil, err
	}
	if params.AssignedToID != nil {
		if _, err := GetUserByID(db, *params.AssignedToID); err != nil {
			return nil, err
		}
	}

	status := params.Status
	if status == "" {
		status = models.TaskStatusTodo
	}

	task := models.Task{
		ProjectID:      params.ProjectID,
		Title:          params.Title,
		AssignedToID:   params.AssignedToID,
		Status:         status,
		EstimatedHours: params.EstimatedHours,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func GetTask(db *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func ListTasks(db *gorm.DB, projectID uint) ([]models.Task, error) {
	query := db.Order("id")
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func UpdateTask(db *gorm.DB, id uint, params TaskParams) (*models.Task, error) {
	task, err := GetTask(db, id)
	if err != nil {
		return nil, err
	}

	if params.AssignedToID != nil {
		if _, err := GetUserByID(db, *params.AssignedToID); err != nil {
			return nil, err
		}
	}

	task.Title = params.Title
	task.AssignedToID = params.AssignedToID
	if params.Status != "" {
		task.Status = params.Status
	}
	task.EstimatedHours = params.EstimatedHours

	if err := db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task. Work logs that referenced it keep their user and
// project attribution; only the task link is cleared.
func DeleteTask(db *gorm.DB, id uint) error {
	task, err := GetTask(db, id)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.WorkLog{}).Where("task_id = ?", id).
			Update("task_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Unscoped().Delete(task).Error
	})
}
