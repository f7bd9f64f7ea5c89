package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

func TestCreateTaskDefaultsStatus(t *testing.T) {
	db := newTestDB(t)

	project := createTestProject(t, db, "Tasked")

	task, err := store.CreateTask(db, store.TaskParams{
		ProjectID: project.ID,
		Title:     "Triage",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
}

func TestDeleteTaskDetachesWorkLogs(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "logger@example.com")
	project := createTestProject(t, db, "Detach")

	task, err := store.CreateTask(db, store.TaskParams{
		ProjectID: project.ID,
		Title:     "Temporary",
	})
	require.NoError(t, err)

	log, err := store.CreateWorkLog(db, store.WorkLogParams{
		UserID:      user.ID,
		TaskID:      &task.ID,
		ProjectID:   project.ID,
		Date:        date(t, "2026-05-05"),
		HoursWorked: 4,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteTask(db, task.ID))

	// The work log survives with its task link cleared.
	kept, err := store.GetWorkLog(db, log.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.TaskID)
	assert.Equal(t, user.ID, kept.UserID)
}

func TestCreateTaskUnknownAssignee(t *testing.T) {
	db := newTestDB(t)

	project := createTestProject(t, db, "Orphan")
	missing := uint(55555)

	_, err := store.CreateTask(db, store.TaskParams{
		ProjectID:    project.ID,
		Title:        "Nobody's job",
		AssignedToID: &missing,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
