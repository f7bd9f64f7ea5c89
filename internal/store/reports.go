package store

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

// GenerateFinancialReport snapshots a project's booked costs and logged hours
// over a period into a FinancialReport row.
func GenerateFinancialReport(db *gorm.DB, projectID uint, periodStart, periodEnd datatypes.Date) (*models.FinancialReport, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}

	var totalCost float64
	err := db.Model(&models.ProjectCost{}).
		Where("project_id = ? AND incurred_at >= ? AND incurred_at <= ?", projectID, periodStart, periodEnd).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalCost).Error
	if err != nil {
		return nil, err
	}

	var totalHours float64
	err = db.Model(&models.WorkLog{}).
		Where("project_id = ? AND date >= ? AND date <= ?", projectID, periodStart, periodEnd).
		Select("COALESCE(SUM(hours_worked), 0)").Scan(&totalHours).Error
	if err != nil {
		return nil, err
	}

	report := models.FinancialReport{
		ProjectID:   projectID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		TotalCost:   totalCost,
		TotalHours:  totalHours,
	}
	if err := db.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func ListFinancialReports(db *gorm.DB, projectID uint) ([]models.FinancialReport, error) {
	var reports []models.FinancialReport
	err := db.Where("project_id = ?", projectID).Order("period_start, id").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
