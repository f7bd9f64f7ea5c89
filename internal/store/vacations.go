package store

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

type VacationParams struct {
	UserID    uint
	TypeID    uint
	StatusID  uint
	StartDate datatypes.Date
	EndDate   datatypes.Date
}

func CreateVacation(db *gorm.DB, params VacationParams) (*models.Vacation, error) {
	if _, err := GetUserByID(db, params.UserID); err != nil {
		return nil, err
	}

	vacation := models.Vacation{
		UserID:    params.UserID,
		TypeID:    params.TypeID,
		StatusID:  params.StatusID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if err := db.Create(&vacation).Error; err != nil {
		return nil, err
	}
	return &vacation, nil
}

func GetVacation(db *gorm.DB, id uint) (*models.Vacation, error) {
	var vacation models.Vacation
	if err := db.Preload("Type").Preload("Status").First(&vacation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vacation, nil
}

func ListVacations(db *gorm.DB, userID uint) ([]models.Vacation, error) {
	query := db.Preload("Type").Preload("Status").Order("start_date, id")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var vacations []models.Vacation
	if err := query.Find(&vacations).Error; err != nil {
		return nil, err
	}
	return vacations, nil
}

func UpdateVacation(db *gorm.DB, id uint, params VacationParams) (*models.Vacation, error) {
	vacation, err := GetVacation(db, id)
	if err != nil {
		return nil, err
	}

	vacation.TypeID = params.TypeID
	vacation.StatusID = params.StatusID
	vacation.StartDate = params.StartDate
	vacation.EndDate = params.EndDate

	if err := db.Save(vacation).Error; err != nil {
		return nil, err
	}
	return GetVacation(db, id)
}

func DeleteVacation(db *gorm.DB, id uint) error {
	vacation, err := GetVacation(db, id)
	if err != nil {
		return err
	}
	return db.Unscoped().Delete(vacation).Error
}

// VacationDays summarizes a user's allowance: Total from the profile, Used
// counted over approved vacations (inclusive day spans).
type VacationDays struct {
	UserID    uint `json:"user_id"`
	Total     int  `json:"total"`
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
}

func GetVacationDays(db *gorm.DB, userID uint) (*VacationDays, error) {
	user, err := GetUserByID(db, userID)
	if err != nil {
		return nil, err
	}

	days := VacationDays{UserID: userID}
	if user.Profile != nil {
		days.Total = user.Profile.VacationDaysTotal
	}

	var approved models.VacationStatus
	if err := db.Where("name = ?", models.VacationStatusApproved).First(&approved).Error; err != nil {
		return nil, err
	}

	var vacations []models.Vacation
	err = db.Where("user_id = ? AND status_id = ?", userID, approved.ID).Find(&vacations).Error
	if err != nil {
		return nil, err
	}

	for _, v := range vacations {
		days.Used += daySpan(v.StartDate, v.EndDate)
	}
	days.Remaining = days.Total - days.Used

	return &days, nil
}

// daySpan counts calendar days from start to end inclusive; malformed ranges
// count as zero.
func daySpan(start, end datatypes.Date) int {
	s, e := time.Time(start), time.Time(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
