package store

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

type ExpenseParams struct {
	ProjectID   uint
	Category    string
	Description string
	Amount      float64
	IncurredAt  datatypes.Date
}

func CreateExpense(db *gorm.DB, params ExpenseParams) (*models.ProjectCost, error) {
	if _, err := GetProject(db, params.ProjectID); err != nil {
		return nil, err
	}

	cost := models.ProjectCost{
		ProjectID:   params.ProjectID,
		Category:    params.Category,
		Description: params.Description,
		Amount:      params.Amount,
		IncurredAt:  params.IncurredAt,
	}
	if err := db.Create(&cost).Error; err != nil {
		return nil, err
	}
	return &cost, nil
}

func GetExpense(db *gorm.DB, id uint) (*models.ProjectCost, error) {
	var cost models.ProjectCost
	if err := db.First(&cost, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cost, nil
}

func ListExpenses(db *gorm.DB, projectID uint) ([]models.ProjectCost, error) {
	query := db.Order("incurred_at, id")
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}

	var costs []models.ProjectCost
	if err := query.Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

func UpdateExpense(db *gorm.DB, id uint, params ExpenseParams) (*models.ProjectCost, error) {
	cost, err := GetExpense(db, id)
	if err != nil {
		return nil, err
	}

	cost.Category = params.Category
	cost.Description = params.Description
	cost.Amount = params.Amount
	cost.IncurredAt = params.IncurredAt

	if err := db.Save(cost).Error; err != nil {
		return nil, err
	}
	return cost, nil
}

func DeleteExpense(db *gorm.DB, id uint) error {
	cost, err := GetExpense(db, id)
	if err != nil {
		return err
	}
	return db.Unscoped().Delete(cost).Error
}
