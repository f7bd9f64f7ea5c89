package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type ProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Progress    int     `json:"progress"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	IsArchived  bool    `json:"is_archived"`
}

type ProjectResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Progress    int     `json:"progress"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	IsArchived  bool    `json:"is_archived"`
}

func projectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Budget:      project.Budget,
		Progress:    project.Progress,
		StartDate:   formatDate(project.StartDate),
		EndDate:     formatDate(project.EndDate),
		IsArchived:  project.IsArchived,
	}
}

func projectParams(body ProjectRequest) (store.ProjectParams, error) {
	startDate, err := parseDate(body.StartDate)
	if err != nil {
		return store.ProjectParams{}, err
	}
	endDate, err := parseDate(body.EndDate)
	if err != nil {
		return store.ProjectParams{}, err
	}

	return store.ProjectParams{
		Name:        body.Name,
		Description: body.Description,
		Budget:      body.Budget,
		Progress:    body.Progress,
		StartDate:   startDate,
		EndDate:     endDate,
		IsArchived:  body.IsArchived,
	}, nil
}

func CreateProject(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body ProjectRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := projectParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		project, err := store.CreateProject(appCtx.DB, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, projectResponse(project))
	}
}

func ListProjects(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		includeArchived := ctx.Query("include_archived") == "true"

		projects, err := store.ListProjects(appCtx.DB, includeArchived)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]ProjectResponse, 0, len(projects))
		for i := range projects {
			response = append(response, projectResponse(&projects[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

func GetProject(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		project, err := store.GetProject(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, projectResponse(project))
	}
}

func UpdateProject(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body ProjectRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := projectParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		project, err := store.UpdateProject(appCtx.DB, id, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, projectResponse(project))
	}
}

// DeleteProject cascades over work logs, tasks, assignments, costs and
// reports before removing the project row.
func DeleteProject(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteProject(appCtx.DB, id); err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": id})
	}
}
