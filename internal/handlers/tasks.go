package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type TaskRequest struct {
	ProjectID      uint    `json:"project_id"`
	Title          string  `json:"title" binding:"required"`
	AssignedToID   *uint   `json:"assigned_to_id"`
	Status         string  `json:"status"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type TaskResponse struct {
	ID             uint    `json:"id"`
	ProjectID      uint    `json:"project_id"`
	Title          string  `json:"title"`
	AssignedToID   *uint   `json:"assigned_to_id"`
	Status         string  `json:"status"`
	EstimatedHours float64 `json:"estimated_hours"`
}

func taskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:             task.ID,
		ProjectID:      task.ProjectID,
		Title:          task.Title,
		AssignedToID:   task.AssignedToID,
		Status:         task.Status,
		EstimatedHours: task.EstimatedHours,
	}
}

func taskParams(body TaskRequest) store.TaskParams {
	return store.TaskParams{
		ProjectID:      body.ProjectID,
		Title:          body.Title,
		AssignedToID:   body.AssignedToID,
		Status:         body.Status,
		EstimatedHours: body.EstimatedHours,
	}
}

// ListTasks serves both /api/tasks?project_id=N and the nested
// /api/projects/:id/tasks route.
func ListTasks(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var projectID uint

		if param := ctx.Param("id"); param != "" {
			id, err := parseIDParam(ctx, "id")
			if err != nil {
				respondError(ctx, http.StatusBadRequest, err.Error())
				return
			}
			projectID = id
		} else if query := ctx.Query("project_id"); query != "" {
			id, err := strconv.ParseUint(query, 10, 32)
			if err != nil {
				respondError(ctx, http.StatusBadRequest, "invalid project_id")
				return
			}
			projectID = uint(id)
		}

		tasks, err := store.ListTasks(appCtx.DB, projectID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]TaskResponse, 0, len(tasks))
		for i := range tasks {
			response = append(response, taskResponse(&tasks[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

// CreateTask serves both the flat and the nested route; on the nested route
// the project id comes from the path.
func CreateTask(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body TaskRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		if param := ctx.Param("id"); param != "" {
			projectID, err := parseIDParam(ctx, "id")
			if err != nil {
				respondError(ctx, http.StatusBadRequest, err.Error())
				return
			}
			body.ProjectID = projectID
		}

		if body.ProjectID == 0 {
			respondError(ctx, http.StatusBadRequest, "project_id is required")
			return
		}

		task, err := store.CreateTask(appCtx.DB, taskParams(body))
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, taskResponse(task))
	}
}

func GetTask(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		task, err := store.GetTask(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, taskResponse(task))
	}
}

func UpdateTask(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body TaskRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		task, err := store.UpdateTask(appCtx.DB, id, taskParams(body))
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, taskResponse(task))
	}
}

func DeleteTask(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteTask(appCtx.DB, id); err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": id})
	}
}
