package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type WorkLogRequest struct {
	UserID      uint    `json:"user_id" binding:"required"`
	TaskID      *uint   `json:"task_id"`
	ProjectID   uint    `json:"project_id" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	HoursWorked float64 `json:"hours_worked" binding:"required"`
	IsOvertime  bool    `json:"is_overtime"`
	Note        string  `json:"note"`
}

type WorkLogResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	TaskID      *uint   `json:"task_id"`
	ProjectID   uint    `json:"project_id"`
	Date        string  `json:"date"`
	HoursWorked float64 `json:"hours_worked"`
	IsOvertime  bool    `json:"is_overtime"`
	Note        string  `json:"note"`
}

func workLogResponse(log *models.WorkLog) WorkLogResponse {
	return WorkLogResponse{
		ID:          log.ID,
		UserID:      log.UserID,
		TaskID:      log.TaskID,
		ProjectID:   log.ProjectID,
		Date:        formatDate(log.Date),
		HoursWorked: log.HoursWorked,
		IsOvertime:  log.IsOvertime,
		Note:        log.Note,
	}
}

func workLogParams(body WorkLogRequest) (store.WorkLogParams, error) {
	date, err := parseDate(body.Date)
	if err != nil {
		return store.WorkLogParams{}, err
	}

	return store.WorkLogParams{
		UserID:      body.UserID,
		TaskID:      body.TaskID,
		ProjectID:   body.ProjectID,
		Date:        date,
		HoursWorked: body.HoursWorked,
		IsOvertime:  body.IsOvertime,
		Note:        body.Note,
	}, nil
}

func ListWorkLogs(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var userID, projectID uint

		if query := ctx.Query("user_id"); query != "" {
			id, err := strconv.ParseUint(query, 10, 32)
			if err != nil {
				respondError(ctx, http.StatusBadRequest, "invalid user_id")
				return
			}
			userID = uint(id)
		}
		if query := ctx.Query("project_id"); query != "" {
			id, err := strconv.ParseUint(query, 10, 32)
			if err != nil {
				respondError(ctx, http.StatusBadRequest, "invalid project_id")
				return
			}
			projectID = uint(id)
		}

		logs, err := store.ListWorkLogs(appCtx.DB, userID, projectID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]WorkLogResponse, 0, len(logs))
		for i := range logs {
			response = append(response, workLogResponse(&logs[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

func CreateWorkLog(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body WorkLogRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := workLogParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		log, err := store.CreateWorkLog(appCtx.DB, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, workLogResponse(log))
	}
}

func GetWorkLog(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		log, err := store.GetWorkLog(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, workLogResponse(log))
	}
}

func UpdateWorkLog(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body WorkLogRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := workLogParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		log, err := store.UpdateWorkLog(appCtx.DB, id, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, workLogResponse(log))
	}
}

func DeleteWorkLog(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteWorkLog(appCtx.DB, id); err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": id})
	}
}
