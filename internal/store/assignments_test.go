package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

func TestCreateAssignmentManagerSwap(t *testing.T) {
	db := newTestDB(t)

	project := createTestProject(t, db, "Managed")
	oldManager := createTestUser(t, db, "old-manager@example.com")
	newManager := createTestUser(t, db, "new-manager@example.com")
	developer := createTestUser(t, db, "dev@example.com")

	_, err := store.CreateAssignment(db, project.ID, oldManager.ID, models.AssignmentRoleManager)
	require.NoError(t, err)

	_, err = store.CreateAssignment(db, project.ID, developer.ID, "Developer")
	require.NoError(t, err)

	// Assigning a second Manager replaces the first.
	_, err = store.CreateAssignment(db, project.ID, newManager.ID, models.AssignmentRoleManager)
	require.NoError(t, err)

	var managers []models.ProjectAssignment
	require.NoError(t, db.Where("project_id = ? AND role_on_project = ?",
		project.ID, models.AssignmentRoleManager).Find(&managers).Error)

	require.Len(t, managers, 1)
	assert.Equal(t, newManager.ID, managers[0].UserID)

	// Non-manager assignments are untouched by the swap.
	assert.EqualValues(t, 1, count(t, db, &models.ProjectAssignment{},
		"project_id = ? AND role_on_project = ?", project.ID, "Developer"))
}

func TestCreateAssignmentPromotesExistingMember(t *testing.T) {
	db := newTestDB(t)

	project := createTestProject(t, db, "Promotion")
	member := createTestUser(t, db, "member@example.com")

	_, err := store.CreateAssignment(db, project.ID, member.ID, "Developer")
	require.NoError(t, err)

	// Promoting an already-assigned member replaces their row instead of
	// tripping the one-assignment-per-project constraint.
	_, err = store.CreateAssignment(db, project.ID, member.ID, models.AssignmentRoleManager)
	require.NoError(t, err)

	var assignments []models.ProjectAssignment
	require.NoError(t, db.Where("project_id = ? AND user_id = ?",
		project.ID, member.ID).Find(&assignments).Error)

	require.Len(t, assignments, 1)
	assert.Equal(t, models.AssignmentRoleManager, assignments[0].RoleOnProject)
}

func TestCreateAssignmentUnknownProject(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "lost@example.com")

	_, err := store.CreateAssignment(db, 12345, user.ID, "Developer")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteAssignmentScopedToProject(t *testing.T) {
	db := newTestDB(t)

	projectA := createTestProject(t, db, "A")
	projectB := createTestProject(t, db, "B")
	user := createTestUser(t, db, "assigned@example.com")

	assignment, err := store.CreateAssignment(db, projectA.ID, user.ID, "Developer")
	require.NoError(t, err)

	// Wrong project id must not match the assignment.
	err = store.DeleteAssignment(db, projectB.ID, assignment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, store.DeleteAssignment(db, projectA.ID, assignment.ID))
	assert.Zero(t, count(t, db, &models.ProjectAssignment{}, "id = ?", assignment.ID))
}
