package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

type ProfileBody struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Position          string  `json:"position"`
	EmploymentType    string  `json:"employment_type"`
	SupervisorID      *uint   `json:"supervisor_id"`
	SalaryRate        float64 `json:"salary_rate"`
	VacationDaysTotal int     `json:"vacation_days_total"`
}

type CreateUserRequest struct {
	Email    string       `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required,min=8"`
	RoleName string       `json:"role_name"`
	Profile  *ProfileBody `json:"profile"`
}

type UpdateUserRequest struct {
	Email   *string      `json:"email" binding:"omitempty,email"`
	RoleID  *uint        `json:"role_id"`
	Profile *ProfileBody `json:"profile"`
}

type ProfileResponse struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Position          string  `json:"position"`
	EmploymentType    string  `json:"employment_type"`
	SupervisorID      *uint   `json:"supervisor_id"`
	SalaryRate        float64 `json:"salary_rate"`
	VacationDaysTotal int     `json:"vacation_days_total"`
}

type UserResponse struct {
	ID      uint             `json:"id"`
	Email   string           `json:"email"`
	Role    string           `json:"role"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

func userResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role.Name,
	}
	if user.Profile != nil {
		resp.Profile = &ProfileResponse{
			FirstName:         user.Profile.FirstName,
			LastName:          user.Profile.LastName,
			Position:          user.Profile.Position,
			EmploymentType:    user.Profile.EmploymentType,
			SupervisorID:      user.Profile.SupervisorID,
			SalaryRate:        user.Profile.SalaryRate,
			VacationDaysTotal: user.Profile.VacationDaysTotal,
		}
	}
	return resp
}

func profileParams(body ProfileBody) *store.ProfileParams {
	return &store.ProfileParams{
		FirstName:         body.FirstName,
		LastName:          body.LastName,
		Position:          body.Position,
		EmploymentType:    body.EmploymentType,
		SupervisorID:      body.SupervisorID,
		SalaryRate:        body.SalaryRate,
		VacationDaysTotal: body.VacationDaysTotal,
	}
}

func ListUsers(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		users, err := store.ListUsers(appCtx.DB)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		response := make([]UserResponse, 0, len(users))
		for i := range users {
			response = append(response, userResponse(&users[i]))
		}
		respondData(ctx, http.StatusOK, response)
	}
}

func CreateUser(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body CreateUserRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params := store.CreateUserParams{
			Email:    body.Email,
			Password: body.Password,
			RoleName: body.RoleName,
		}
		if body.Profile != nil {
			params.Profile = profileParams(*body.Profile)
		}

		user, err := store.CreateUser(appCtx.DB, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusCreated, userResponse(user))
	}
}

func GetUser(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		user, err := store.GetUserByID(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, userResponse(user))
	}
}

func UpdateUser(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		var body UpdateUserRequest
		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params := store.UpdateUserParams{
			Email:  body.Email,
			RoleID: body.RoleID,
		}
		if body.Profile != nil {
			params.Profile = profileParams(*body.Profile)
		}

		user, err := store.UpdateUser(appCtx.DB, id, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, userResponse(user))
	}
}

// DeleteUser runs the cascading removal: credential, profile, assignments,
// work logs and vacations go before the user row.
func DeleteUser(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondError(ctx, http.StatusBadRequest, err.Error())
			return
		}

		result, err := store.DeleteUser(appCtx.DB, id)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		appCtx.Logger.Info("user deleted", zap.String("email", result.Email))
		respondData(ctx, http.StatusOK, gin.H{"deleted": result.Email})
	}
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BulkDeleteUsers deletes sequentially and fails fast; callers must treat the
// operation as non-atomic across the batch.
func BulkDeleteUsers(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body BulkDeleteRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		emails, err := store.DeleteUsers(appCtx.DB, body.IDs)
		if err != nil {
			appCtx.Logger.Warn("bulk delete stopped early",
				zap.Int("deleted", len(emails)), zap.Error(err))
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, gin.H{"deleted": emails})
	}
}
