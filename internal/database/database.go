package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.Role{},
		&models.User{},
		&models.Credential{},
		&models.Profile{},
		&models.Project{},
		&models.ProjectAssignment{},
		&models.Task{},
		&models.WorkLog{},
		&models.VacationType{},
		&models.VacationStatus{},
		&models.Vacation{},
		&models.ProjectCost{},
		&models.FinancialReport{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return seedLookups(db)
}

// seedLookups inserts the fixed role and vacation lookup rows when missing.
func seedLookups(db *gorm.DB) error {
	roles := []string{
		models.RoleAdministrator,
		models.RoleHR,
		models.RoleManager,
		models.RoleUser,
	}
	for _, name := range roles {
		if err := firstOrCreateByName(db, &models.Role{Name: name}, name); err != nil {
			return err
		}
	}

	types := []string{
		models.VacationTypeAnnual,
		models.VacationTypeSick,
		models.VacationTypeUnpaid,
		models.VacationTypeParental,
	}
	for _, name := range types {
		if err := firstOrCreateByName(db, &models.VacationType{Name: name}, name); err != nil {
			return err
		}
	}

	statuses := []string{
		models.VacationStatusPending,
		models.VacationStatusApproved,
		models.VacationStatusRejected,
	}
	for _, name := range statuses {
		if err := firstOrCreateByName(db, &models.VacationStatus{Name: name}, name); err != nil {
			return err
		}
	}

	return nil
}

func firstOrCreateByName(db *gorm.DB, row interface{}, name string) error {
	err := db.Where("name = ?", name).First(row).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(row).Error
}
