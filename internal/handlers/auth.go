package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/store"
	"github.com/flowmanager-dev/flowmanager/internal/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// setSessionCookie takes the cookie domain as an argument so handler
// factories read DOMAIN after the .env file has been loaded, not at package
// init.
func setSessionCookie(ctx *gin.Context, token, domain string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Register is the self-service account creation endpoint: user, credential
// and optional profile are created as one set through the same store call the
// admin route uses.
func Register(appCtx *appcontext.Context) gin.HandlerFunc {
	domain := os.Getenv("DOMAIN")

	return func(ctx *gin.Context) {
		var body RegisterRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid request")
			return
		}

		params := store.CreateUserParams{
			Email:    body.Email,
			Password: body.Password,
		}
		if body.FirstName != "" || body.LastName != "" {
			params.Profile = &store.ProfileParams{
				FirstName: body.FirstName,
				LastName:  body.LastName,
			}
		}

		user, err := store.CreateUser(appCtx.DB, params)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		token, err := appCtx.JWT.Generate(user.ID, user.Email)
		if err != nil {
			appCtx.Logger.Error("failed to generate JWT", zap.Error(err))
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}

		setSessionCookie(ctx, token, domain, 60*60*24*7)
		respondData(ctx, http.StatusCreated, userResponse(user))
	}
}

// Login verifies credentials and issues the session cookie. All failure modes
// share one message so the response does not reveal whether the account
// exists.
func Login(appCtx *appcontext.Context) gin.HandlerFunc {
	domain := os.Getenv("DOMAIN")

	return func(ctx *gin.Context) {
		var body LoginRequest

		if err := ctx.BindJSON(&body); err != nil {
			respondError(ctx, http.StatusUnauthorized, store.ErrInvalidCredentials.Error())
			return
		}

		user, err := store.VerifyCredentials(appCtx.DB, body.Email, body.Password)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		token, err := appCtx.JWT.Generate(user.ID, user.Email)
		if err != nil {
			appCtx.Logger.Error("failed to generate JWT", zap.Error(err))
			respondError(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}

		setSessionCookie(ctx, token, domain, 60*60*24*7)
		respondData(ctx, http.StatusOK, gin.H{
			"id":    user.ID,
			"email": user.Email,
		})
	}
}

func Logout() gin.HandlerFunc {
	domain := os.Getenv("DOMAIN")

	return func(ctx *gin.Context) {
		setSessionCookie(ctx, "", domain, -1)
		respondData(ctx, http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

func Me(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		currentUser, err := utils.GetCurrentUser(ctx)
		if err != nil {
			respondError(ctx, http.StatusUnauthorized, "User not authenticated")
			return
		}

		user, err := store.GetUserByID(appCtx.DB, currentUser.ID)
		if err != nil {
			respondStoreError(appCtx, ctx, err)
			return
		}

		respondData(ctx, http.StatusOK, userResponse(user))
	}
}
