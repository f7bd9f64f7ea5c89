package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmanager-dev/flowmanager/internal/store"
)

func TestProjectProgressBounds(t *testing.T) {
	db := newTestDB(t)

	_, err := store.CreateProject(db, store.ProjectParams{Name: "Over", Progress: 101})
	assert.ErrorIs(t, err, store.ErrInvalidProgress)

	_, err = store.CreateProject(db, store.ProjectParams{Name: "Under", Progress: -1})
	assert.ErrorIs(t, err, store.ErrInvalidProgress)

	project, err := store.CreateProject(db, store.ProjectParams{Name: "Edge", Progress: 100})
	require.NoError(t, err)

	_, err = store.UpdateProject(db, project.ID, store.ProjectParams{Name: "Edge", Progress: 200})
	assert.ErrorIs(t, err, store.ErrInvalidProgress)
}

func TestListProjectsExcludesArchived(t *testing.T) {
	db := newTestDB(t)

	createTestProject(t, db, "Active")

	_, err := store.CreateProject(db, store.ProjectParams{Name: "Old", IsArchived: true})
	require.NoError(t, err)

	visible, err := store.ListProjects(db, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Active", visible[0].Name)

	all, err := store.ListProjects(db, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateProjectNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := store.UpdateProject(db, 9876, store.ProjectParams{Name: "Ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
