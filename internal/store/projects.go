package store

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

type ProjectParams struct {
	Name        string
	Description string
	Budget      float64
	Progress    int
	StartDate   datatypes.Date
	EndDate     datatypes.Date
	IsArchived  bool
}

func CreateProject(db *gorm.DB, params ProjectParams) (*models.Project, error) {
	if params.Progress < 0 || params.Progress > 100 {
		return nil, ErrInvalidProgress
	}

	project := models.Project{
		Name:        params.Name,
		Description: params.Description,
		Budget:      params.Budget,
		Progress:    params.Progress,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		IsArchived:  params.IsArchived,
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func GetProject(db *gorm.DB, id uint) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListProjects returns projects ordered by id; archived rows are excluded
// unless includeArchived is set.
func ListProjects(db *gorm.DB, includeArchived bool) ([]models.Project, error) {
	query := db.Order("id")
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func UpdateProject(db *gorm.DB, id uint, params ProjectParams) (*models.Project, error) {
	if params.Progress < 0 || params.Progress > 100 {
		return nil, ErrInvalidProgress
	}

	project, err := GetProject(db, id)
	if err != nil {
		return nil, err
	}

	project.Name = params.Name
	project.Description = params.Description
	project.Budget = params.Budget
	project.Progress = params.Progress
	project.StartDate = params.StartDate
	project.EndDate = params.EndDate
	project.IsArchived = params.IsArchived

	if err := db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}
