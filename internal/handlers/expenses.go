package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type ExpenseRequest struct {
	ProjectID   uint    `json:"project_id" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	IncurredAt  string  `json:"incurred_at"`
}

type ExpenseResponse struct {
	ID          uint    `json:"id"`
	ProjectID   uint    `json:"project_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IncurredAt  string  `json:"incurred_at"`
}

func expenseResponse(cost *models.ProjectCost) ExpenseResponse {
	return ExpenseResponse{
		ID:          cost.ID,
		ProjectID:   cost.ProjectID,
		Category:    cost.Category,
		Description: cost.Description,
		Amount:      cost.Amount,
		IncurredAt:  formatDate(cost.IncurredAt),
	}
}

func expenseParams(body ExpenseRequest) (store.ExpenseParams, error) {
	incurredAt, err := parseDate(body.IncurredAt)
	if err != nil {
		return store.ExpenseParams{}, err
	}

	return store.ExpenseParams{
		ProjectID:   body.ProjectID,
		Category:    body.Category,
		Description: body.Description,
		Amount:      body.Amount,
		IncurredAt:  incurredAt,
	}, nil
}

func ListExpenses(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var projectID uint
		if query := ctx.Query("project_id"); query != "" {
			id, err := strconv.ParseUint(query, 10, 32)
			if err != nil {
				respondError(ctx, http.StatusBadRequest, "invalid project_id")
				return
			}
			projectID = uint(id)
		}

		costs, err := store.ListExpenses(appCtx.DB, projectID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]ExpenseResponse, 0, len(costs))
		for i := range costs {
			response = append(response, expenseResponse(&costs[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

func CreateExpense(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body ExpenseRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := expenseParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		cost, err := store.CreateExpense(appCtx.DB, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, expenseResponse(cost))
	}
}

func GetExpense(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		cost, err := store.GetExpense(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, expenseResponse(cost))
	}
}

func UpdateExpense(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body ExpenseRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params, err := expenseParams(body)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		cost, err := store.UpdateExpense(appCtx.DB, id, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, expenseResponse(cost))
	}
}

func DeleteExpense(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteExpense(appCtx.DB, id); err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": id})
	}
}
