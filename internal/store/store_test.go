package store_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/flowmanager-dev/flowmanager/internal/database"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("BCRYPT_COST", "4")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := store.CreateUser(db, store.CreateUserParams{
		Email:    email,
		Password: "pw123456",
		Profile: &store.ProfileParams{
			FirstName:         "Test",
			LastName:          "User",
			VacationDaysTotal: 26,
		},
	})
	require.NoError(t, err)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()
	project, err := store.CreateProject(db, store.ProjectParams{
		Name:     name,
		Budget:   10000,
		Progress: 10,
	})
	require.NoError(t, err)
	return project
}

func date(t *testing.T, value string) datatypes.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return datatypes.Date(parsed)
}

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
