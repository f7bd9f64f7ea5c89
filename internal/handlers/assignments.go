package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type CreateAssignmentRequest struct {
	UserID        uint   `json:"user_id" binding:"required"`
	RoleOnProject string `json:"role_on_project" binding:"required"`
}

type AssignmentResponse struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	ProjectID     uint   `json:"project_id"`
	RoleOnProject string `json:"role_on_project"`
	AssignedAt    string `json:"assigned_at"`
}

func assignmentResponse(a *models.ProjectAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		ProjectID:     a.ProjectID,
		RoleOnProject: a.RoleOnProject,
		AssignedAt:    a.AssignedAt.Format(time.RFC3339),
	}
}

func ListAssignments(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		projectID, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		assignments, err := store.ListAssignments(appCtx.DB, projectID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]AssignmentResponse, 0, len(assignments))
		for i := range assignments {
			response = append(response, assignmentResponse(&assignments[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

// CreateAssignment applies the single-Manager rule: assigning a Manager
// replaces any existing Manager assignment on the project.
func CreateAssignment(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		projectID, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body CreateAssignmentRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		assignment, err := store.CreateAssignment(appCtx.DB, projectID, body.UserID, body.RoleOnProject)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, assignmentResponse(assignment))
	}
}

func DeleteAssignment(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		projectID, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		assignmentID, err := parseIDParam(ctx, "assignment_id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteAssignment(appCtx.DB, projectID, assignmentID); err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": assignmentID})
	}
}
