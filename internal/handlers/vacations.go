package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type VacationRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	TypeID    uint   `json:"type_id" binding:"required"`
	StatusID  uint   `json:"status_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type VacationResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func vacationResponse(v *models.Vacation) VacationResponse {
	return VacationResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		Type:      v.Type.Name,
		Status:    v.Status.Name,
		StartDate: formatDate(v.StartDate),
		EndDate:   formatDate(v.EndDate),
	}
}

func vacationParams(body VacationRequest) (store.VacationParams, error) {
	startDate, err := parseDate(body.StartDate)
	if err != nil {
		return store.VacationParams{}, err
	}
	endDate, err := parseDate(body.EndDate)
	if err != nil {
		return store.VacationParams{}, err
	}

	return store.VacationParams{
		UserID:    body.UserID,
		TypeID:    body.TypeID,
		StatusID:  body.StatusID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func ListVacations(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var userID uint
		if query := ctx.Query("user_id"); query != "" {
			id, err := strconv.ParseUint(query, 10, 32)
			if err != nil {
				respondError(ctx, http.StatusBadRequest, "invalid user_id")
				return
			}
			userID = uint(id)
		}

		vacations, err := store.ListVacations(appCtx.DB, userID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]VacationResponse, 0, len(vacations))
		for i := range vacations {
			response = append(response, vacationResponse(&vacations[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

func CreateVacation(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body VacationRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := vacationParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		vacation, err := store.CreateVacation(appCtx.DB, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		created, err := store.GetVacation(appCtx.DB, vacation.ID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, vacationResponse(created))
	}
}

func GetVacation(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		vacation, err := store.GetVacation(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, vacationResponse(vacation))
	}
}

func UpdateVacation(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body VacationRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := vacationParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		vacation, err := store.UpdateVacation(appCtx.DB, id, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, vacationResponse(vacation))
	}
}

func DeleteVacation(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteVacation(appCtx.DB, id); err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": id})
	}
}

// GetVacationDays reports the per-user allowance: profile total, days used by
// approved vacations, and the remainder.
func GetVacationDays(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := parseIDParam(ctx, "user_id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		days, err := store.GetVacationDays(appCtx.DB, userID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, days)
	}
}
