package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type GenerateReportRequest struct {
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type ReportResponse struct {
	ID          uint    `json:"id"`
	ProjectID   uint    `json:"project_id"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	TotalCost   float64 `json:"total_cost"`
	TotalHours  float64 `json:"total_hours"`
}

func reportResponse(report *models.FinancialReport) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		ProjectID:   report.ProjectID,
		PeriodStart: formatDate(report.PeriodStart),
		PeriodEnd:   formatDate(report.PeriodEnd),
		TotalCost:   report.TotalCost,
		TotalHours:  report.TotalHours,
	}
}

// GenerateReport snapshots a project's costs and logged hours for a period.
func GenerateReport(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		projectID, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body GenerateReportRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		periodStart, err := parseDate(body.PeriodStart)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		periodEnd, err := parseDate(body.PeriodEnd)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		report, err := store.GenerateFinancialReport(appCtx.DB, projectID, periodStart, periodEnd)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, reportResponse(report))
	}
}

func ListReports(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		projectID, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		reports, err := store.ListFinancialReports(appCtx.DB, projectID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]ReportResponse, 0, len(reports))
		for i := range reports {
			response = append(response, reportResponse(&reports[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}
